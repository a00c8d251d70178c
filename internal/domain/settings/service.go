package settings

import "context"

type SettingsService interface {
	// Get retrieves the shift configuration, falling back to defaults when
	// none was saved yet.
	Get(ctx context.Context) (SettingsResponse, error)

	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
