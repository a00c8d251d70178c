package transaction

import (
	"context"
	"fmt"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
)

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	employeeRepo    employee.EmployeeRepository
}

func NewTransactionService(
	transactionRepo transaction.TransactionRepository,
	employeeRepo employee.EmployeeRepository,
) transaction.TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		employeeRepo:    employeeRepo,
	}
}

// Create implements transaction.TransactionService.
func (s *TransactionServiceImpl) Create(ctx context.Context, cmd transaction.CreateTransactionCommand) (transaction.TransactionResponse, error) {
	if err := cmd.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, cmd.EmployeeID); err != nil {
		return transaction.TransactionResponse{}, err
	}

	created, err := s.transactionRepo.Create(ctx, cmd)
	if err != nil {
		return transaction.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction.ToResponse(created), nil
}

// ListByEmployee implements transaction.TransactionService.
func (s *TransactionServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]transaction.TransactionResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transaction.ToResponses(txs), nil
}

// Delete implements transaction.TransactionService.
func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.transactionRepo.Delete(ctx, id)
}
