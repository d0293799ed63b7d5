package logger

import "nft_tracker/internal/app/port"

// slogAdapter implements port.Logger using the package-level logging
// functions, so components expecting the port interface can be handed the
// global slog logger.
type slogAdapter struct{}

// NewSlogAdapter creates a new slogAdapter instance.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, args...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, args...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, args...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, args...)
}
