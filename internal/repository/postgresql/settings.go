package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/settings"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/database"
)

// The business has exactly one settings row, keyed by a fixed id.
const settingsRowID = "default"

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, morning_start, morning_end, morning_duration,
			   evening_start, evening_end, evening_duration, updated_at
		FROM settings
		WHERE id = $1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.ID,
		&s.MorningShift.Start,
		&s.MorningShift.End,
		&s.MorningShift.Duration,
		&s.EveningShift.Start,
		&s.EveningShift.End,
		&s.EveningShift.Duration,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, err
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (
			id, morning_start, morning_end, morning_duration,
			evening_start, evening_end, evening_duration
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			morning_start = EXCLUDED.morning_start,
			morning_end = EXCLUDED.morning_end,
			morning_duration = EXCLUDED.morning_duration,
			evening_start = EXCLUDED.evening_start,
			evening_end = EXCLUDED.evening_end,
			evening_duration = EXCLUDED.evening_duration,
			updated_at = NOW()
		RETURNING id, morning_start, morning_end, morning_duration,
				  evening_start, evening_end, evening_duration, updated_at
	`

	var saved settings.Settings
	err := q.QueryRow(ctx, query,
		settingsRowID,
		s.MorningShift.Start,
		s.MorningShift.End,
		s.MorningShift.Duration,
		s.EveningShift.Start,
		s.EveningShift.End,
		s.EveningShift.Duration,
	).Scan(
		&saved.ID,
		&saved.MorningShift.Start,
		&saved.MorningShift.End,
		&saved.MorningShift.Duration,
		&saved.EveningShift.Start,
		&saved.EveningShift.End,
		&saved.EveningShift.Duration,
		&saved.UpdatedAt,
	)
	if err != nil {
		return settings.Settings{}, err
	}

	return saved, nil
}
