package postgresql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) attendance.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.date, s.time_in, s.time_out, s.status, s.auto_closed,
	s.created_at, s.updated_at, e.name
`

func scanShift(row pgx.Row) (attendance.Shift, error) {
	var s attendance.Shift
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.Date,
		&s.TimeIn,
		&s.TimeOut,
		&s.Status,
		&s.AutoClosed,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.EmployeeName,
	)
	return s, err
}

// Create implements attendance.ShiftRepository. The uq_shifts_open partial
// unique index on (employee_id, date) WHERE status = 'open' is the race
// guard: two concurrent clock-ins produce exactly one open shift, the loser
// gets ErrAlreadyClockedIn.
func (r *shiftRepositoryImpl) Create(ctx context.Context, shift attendance.Shift) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, employee_id, date, time_in, time_out, status, auto_closed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, date, time_in, time_out, status, auto_closed,
				  created_at, updated_at
	`

	var created attendance.Shift
	err := q.QueryRow(ctx, query,
		shift.ID,
		shift.EmployeeID,
		shift.Date,
		shift.TimeIn,
		shift.TimeOut,
		shift.Status,
		shift.AutoClosed,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Date,
		&created.TimeIn,
		&created.TimeOut,
		&created.Status,
		&created.AutoClosed,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Shift{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Shift{}, err
	}

	return created, nil
}

// GetByID implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, err
	}

	return s, nil
}

// GetOpenShift implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) GetOpenShift(ctx context.Context, employeeID string, date string) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.date = $2 AND s.status = 'open'
	`

	s, err := scanShift(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Shift{}, attendance.ErrNoOpenShift
		}
		return attendance.Shift{}, err
	}

	return s, nil
}

// CloseShift implements attendance.ShiftRepository. The status guard in the
// WHERE clause makes closing idempotent-safe: a second close finds no open
// row and reports ErrShiftClosed.
func (r *shiftRepositoryImpl) CloseShift(ctx context.Context, cmd attendance.CloseShiftCommand) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET time_out = $1, status = 'closed', auto_closed = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'open'
		RETURNING id, employee_id, date, time_in, time_out, status, auto_closed,
				  created_at, updated_at
	`

	var closed attendance.Shift
	err := q.QueryRow(ctx, query, cmd.TimeOut, cmd.AutoClosed, cmd.ShiftID).Scan(
		&closed.ID,
		&closed.EmployeeID,
		&closed.Date,
		&closed.TimeIn,
		&closed.TimeOut,
		&closed.Status,
		&closed.AutoClosed,
		&closed.CreatedAt,
		&closed.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the shift does not exist or it is already closed.
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shifts WHERE id = $1)`, cmd.ShiftID).Scan(&exists); checkErr != nil {
				return attendance.Shift{}, checkErr
			}
			if exists {
				return attendance.Shift{}, attendance.ErrShiftClosed
			}
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, err
	}

	return closed, nil
}

// List implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter attendance.ShiftFilter) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += ` AND s.employee_id = $` + strconv.Itoa(argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Date != nil {
		query += ` AND s.date = $` + strconv.Itoa(argPos)
		args = append(args, *filter.Date)
		argPos++
	}
	if filter.Status != nil {
		query += ` AND s.status = $` + strconv.Itoa(argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query += ` ORDER BY s.date DESC, s.time_in DESC`

	if filter.Limit > 0 {
		query += ` LIMIT $` + strconv.Itoa(argPos)
		args = append(args, filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListOpenBefore implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) ListOpenBefore(ctx context.Context, date string) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.status = 'open' AND s.date < $1
		ORDER BY s.date ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Snapshot implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) Snapshot(ctx context.Context) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		ORDER BY s.date ASC, s.time_in ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectShifts(rows)
}

// Delete implements attendance.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrShiftNotFound
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]attendance.Shift, error) {
	shifts := make([]attendance.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
