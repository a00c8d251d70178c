package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, name, phone, daily_rate, standard_hours, shift, is_active, joined_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, phone, daily_rate, standard_hours, shift, is_active, joined_date,
				  created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.Name,
		emp.Phone,
		emp.DailyRate,
		emp.StandardHours,
		emp.Shift,
		emp.IsActive,
		emp.JoinedDate,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Phone,
		&created.DailyRate,
		&created.StandardHours,
		&created.Shift,
		&created.IsActive,
		&created.JoinedDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, daily_rate, standard_hours, shift, is_active, joined_date,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Phone,
		&emp.DailyRate,
		&emp.StandardHours,
		&emp.Shift,
		&emp.IsActive,
		&emp.JoinedDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, phone, daily_rate, standard_hours, shift, is_active, joined_date,
			   created_at, updated_at
		FROM employees
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Phone,
			&emp.DailyRate,
			&emp.StandardHours,
			&emp.Shift,
			&emp.IsActive,
			&emp.JoinedDate,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, phone = $2, daily_rate = $3, standard_hours = $4, shift = $5,
			is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		emp.Name,
		emp.Phone,
		emp.DailyRate,
		emp.StandardHours,
		emp.Shift,
		emp.IsActive,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
