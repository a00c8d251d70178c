package settings

import "context"

// SettingsRepository stores the single business-wide settings row.
type SettingsRepository interface {
	// Get retrieves the settings, or ErrSettingsNotFound when none were
	// saved yet.
	Get(ctx context.Context) (Settings, error)

	// Upsert saves the settings, creating the row on first write.
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
