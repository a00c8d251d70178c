package transaction

import "time"

type Type string

const (
	TypeBonus     Type = "bonus"
	TypeDeduction Type = "deduction"
	TypePenalty   Type = "penalty"
)

// Transaction is a one-off financial adjustment to an employee's pay.
// Amount is always a positive quantity; the type decides the sign in the
// payroll computation (deduction and penalty both reduce pay).
type Transaction struct {
	ID         string
	EmployeeID string
	Amount     float64
	Type       Type
	Date       string // YYYY-MM-DD
	Note       string
	CreatedAt  time.Time
}

// Debit reports whether the transaction reduces pay.
func (t Transaction) Debit() bool {
	return t.Type == TypeDeduction || t.Type == TypePenalty
}
