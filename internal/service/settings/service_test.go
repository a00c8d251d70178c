package settings

import (
	"context"
	"testing"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored *settings.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	if f.stored == nil {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s settings.Settings) (settings.Settings, error) {
	f.stored = &s
	return s, nil
}

func TestSettingsService_Get_DefaultsWhenUnset(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.MorningShift.Start)
	assert.Equal(t, "16:00", resp.MorningShift.End)
	assert.Equal(t, 8.0, resp.MorningShift.Duration)
	assert.Equal(t, "16:00", resp.EveningShift.Start)
	assert.Equal(t, "00:00", resp.EveningShift.End)
}

func TestSettingsService_Update_PartialMergesOntoDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	resp, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		MorningShift: &settings.ShiftWindowPayload{Start: "09:00", End: "17:00", Duration: 8},
	})

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.MorningShift.Start)
	// Untouched window keeps its default.
	assert.Equal(t, "16:00", resp.EveningShift.Start)
	require.NotNil(t, repo.stored)
}

func TestSettingsService_Update_RejectsBadClockTime(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		MorningShift: &settings.ShiftWindowPayload{Start: "25:00", End: "17:00", Duration: 8},
	})

	assert.Error(t, err)
}

func TestSettingsService_Update_AcceptsArabicIndicDigits(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	resp, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		MorningShift: &settings.ShiftWindowPayload{Start: "٠٨:٠٠", End: "16:00", Duration: 8},
	})

	require.NoError(t, err)
	assert.Equal(t, "٠٨:٠٠", resp.MorningShift.Start)
}
