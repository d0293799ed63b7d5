package entity

// Theme selects the display theme.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ViewMode selects how the gallery is laid out.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// SortMode selects how the gallery is ordered and sectioned.
type SortMode string

const (
	SortModeCollection SortMode = "collection"
	SortModeFarcaster  SortMode = "farcaster"
	SortModeValue      SortMode = "value"
	SortModeRecent     SortMode = "recent"
)

// IsValid reports whether m is one of the four supported sort modes.
func (m SortMode) IsValid() bool {
	switch m {
	case SortModeCollection, SortModeFarcaster, SortModeValue, SortModeRecent:
		return true
	}
	return false
}

// ImageQuality selects which image variant the client prefers.
type ImageQuality string

const (
	ImageQualityLow    ImageQuality = "low"
	ImageQualityMedium ImageQuality = "medium"
	ImageQualityHigh   ImageQuality = "high"
)

// Settings is the process-wide persisted configuration singleton.
type Settings struct {
	RefreshIntervalMinutes int          `json:"refreshIntervalMinutes"`
	Theme                  Theme        `json:"theme"`
	DefaultViewMode        ViewMode     `json:"defaultViewMode"`
	DefaultSortMode        SortMode     `json:"defaultSortMode"`
	ImageQuality           ImageQuality `json:"imageQuality"`
	NotificationsEnabled   bool         `json:"notificationsEnabled"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		RefreshIntervalMinutes: 15,
		Theme:                  ThemeSystem,
		DefaultViewMode:        ViewModeGrid,
		DefaultSortMode:        SortModeRecent,
		ImageQuality:           ImageQualityMedium,
		NotificationsEnabled:   true,
	}
}
