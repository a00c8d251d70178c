package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.ToResponse(settings.Defaults()), nil
		}
		return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings.ToResponse(current), nil
}

// Update implements settings.SettingsService. Partial updates merge onto the
// stored configuration, or onto defaults on first write.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
		}
		current = settings.Defaults()
	}

	if req.MorningShift != nil {
		current.MorningShift = settings.ShiftWindow(*req.MorningShift)
	}
	if req.EveningShift != nil {
		current.EveningShift = settings.ShiftWindow(*req.EveningShift)
	}

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings.ToResponse(saved), nil
}
