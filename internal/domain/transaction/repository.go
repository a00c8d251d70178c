package transaction

import "context"

// TransactionRepository defines data access methods for pay adjustments.
// Transactions are immutable: created and deleted, never updated.
type TransactionRepository interface {
	Create(ctx context.Context, cmd CreateTransactionCommand) (Transaction, error)

	GetByID(ctx context.Context, id string) (Transaction, error)

	// ListByEmployee retrieves an employee's transactions, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Transaction, error)

	// Snapshot retrieves every transaction. The payroll engine aggregates
	// over this read-only snapshot.
	Snapshot(ctx context.Context) ([]Transaction, error)

	Delete(ctx context.Context, id string) error
}
