package transaction

import (
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

// CreateTransactionCommand is the only mutation that produces a transaction.
type CreateTransactionCommand struct {
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Date       string  `json:"date,omitempty"` // defaults to today
	Note       string  `json:"note"`
}

func (c *CreateTransactionCommand) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(c.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if c.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsInSlice(c.Type, []string{string(TypeBonus), string(TypeDeduction), string(TypePenalty)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'bonus', 'deduction' or 'penalty'"})
	}
	if c.Date != "" {
		if _, ok := validator.IsValidDate(c.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransactionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	Note       string  `json:"note,omitempty"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Amount:     t.Amount,
		Type:       string(t.Type),
		Date:       t.Date,
		Note:       t.Note,
	}
}

func ToResponses(txs []Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		result = append(result, ToResponse(t))
	}
	return result
}
