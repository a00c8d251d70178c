package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/database"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) transaction.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

// Create implements transaction.TransactionRepository. The row is built
// from the command alone; transactions never get updated afterwards.
func (r *transactionRepositoryImpl) Create(ctx context.Context, cmd transaction.CreateTransactionCommand) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	date := cmd.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO transactions (id, employee_id, amount, type, date, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, amount, type, date, note, created_at
	`

	var created transaction.Transaction
	err := q.QueryRow(ctx, query,
		newID(),
		cmd.EmployeeID,
		cmd.Amount,
		cmd.Type,
		date,
		cmd.Note,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.Amount,
		&created.Type,
		&created.Date,
		&created.Note,
		&created.CreatedAt,
	)
	if err != nil {
		return transaction.Transaction{}, err
	}

	return created, nil
}

// GetByID implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) GetByID(ctx context.Context, id string) (transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, type, date, note, created_at
		FROM transactions
		WHERE id = $1
	`

	var t transaction.Transaction
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.EmployeeID,
		&t.Amount,
		&t.Type,
		&t.Date,
		&t.Note,
		&t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return transaction.Transaction{}, transaction.ErrTransactionNotFound
		}
		return transaction.Transaction{}, err
	}

	return t, nil
}

// ListByEmployee implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, type, date, note, created_at
		FROM transactions
		WHERE employee_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Snapshot implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Snapshot(ctx context.Context) ([]transaction.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, type, date, note, created_at
		FROM transactions
		ORDER BY date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Delete implements transaction.TransactionRepository.
func (r *transactionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func collectTransactions(rows pgx.Rows) ([]transaction.Transaction, error) {
	txs := make([]transaction.Transaction, 0)
	for rows.Next() {
		var t transaction.Transaction
		err := rows.Scan(
			&t.ID,
			&t.EmployeeID,
			&t.Amount,
			&t.Type,
			&t.Date,
			&t.Note,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
