package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joined := time.Now()
	if req.JoinedDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinedDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse joined date: %w", err)
		}
		joined = parsed
	}

	standardHours := req.StandardHours
	if standardHours == 0 {
		standardHours = employee.DefaultStandardHours
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Phone:         req.Phone,
		DailyRate:     req.DailyRate,
		StandardHours: standardHours,
		Shift:         employee.Shift(req.Shift),
		IsActive:      true,
		JoinedDate:    joined,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.DailyRate != nil {
		emp.DailyRate = *req.DailyRate
	}
	if req.StandardHours != nil {
		emp.StandardHours = *req.StandardHours
	}
	if req.Shift != nil {
		emp.Shift = employee.Shift(*req.Shift)
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
