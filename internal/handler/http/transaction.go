package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/nizami-hq/nizami-backend-go/internal/handler/http/response"
)

type TransactionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TransactionHandlerImpl struct {
	transactionService transaction.TransactionService
}

func NewTransactionHandler(transactionService transaction.TransactionService) TransactionHandler {
	return &TransactionHandlerImpl{transactionService: transactionService}
}

// Create implements TransactionHandler.
func (h *TransactionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var cmd transaction.CreateTransactionCommand

	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		slog.Error("Create transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.transactionService.Create(r.Context(), cmd)
	if err != nil {
		slog.Error("Create transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction recorded successfully", created)
}

// ListByEmployee implements TransactionHandler.
func (h *TransactionHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	txs, err := h.transactionService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, txs)
}

// Delete implements TransactionHandler.
func (h *TransactionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.transactionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted successfully", nil)
}
