package transaction

import "context"

type TransactionService interface {
	Create(ctx context.Context, cmd CreateTransactionCommand) (TransactionResponse, error)

	ListByEmployee(ctx context.Context, employeeID string) ([]TransactionResponse, error)

	Delete(ctx context.Context, id string) error
}
