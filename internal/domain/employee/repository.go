package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees; activeOnly restricts to active ones.
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id string) error
}
