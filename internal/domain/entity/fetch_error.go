package entity

import "fmt"

// FetchError is a provider failure: either a transport/non-2xx outcome or an
// application error embedded in an otherwise well-formed response. The page
// it occurred on aborts the whole wallet fetch; no partial results survive.
type FetchError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
}

// NewFetchError builds a FetchError for the given provider.
func NewFetchError(provider string, statusCode int, message string) *FetchError {
	return &FetchError{Provider: provider, StatusCode: statusCode, Message: message}
}
