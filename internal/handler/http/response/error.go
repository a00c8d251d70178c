package response

import (
	"errors"
	"net/http"

	"github.com/nizami-hq/nizami-backend-go/internal/domain/attendance"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/auth"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/employee"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/settings"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/transaction"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/user"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, "No account registered for this Google email")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Employee already has an open shift for today")
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, attendance.ErrNoOpenShift):
		NotFound(w, "No open shift to close")
	case errors.Is(err, attendance.ErrShiftClosed):
		Conflict(w, "Shift already closed")

	// Transaction domain errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
