package settings

import "context"

// SettingsRepository defines the interface for the settings singleton row
type SettingsRepository interface {
	// Get returns the settings row, or shared.ErrNotFound if absent
	Get(ctx context.Context) (*Settings, error)

	// CreateIfAbsent inserts the row only when none exists yet
	CreateIfAbsent(ctx context.Context, s *Settings) error

	// Save persists changes to the settings row
	Save(ctx context.Context, s *Settings) error
}
