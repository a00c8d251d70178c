package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, id string) error
}
