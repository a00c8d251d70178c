package auth

import "context"

type AuthService interface {
	// Register creates the owner account. Only valid while no owner exists.
	Register(ctx context.Context, req RegisterRequest) (LoginResponse, error)

	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GoogleRedirectURL starts the Google OAuth sign-in flow.
	GoogleRedirectURL(ctx context.Context, userAgent string) (url string, state string, err error)

	// GoogleCallback completes the flow and signs the owner in.
	GoogleCallback(ctx context.Context, code string) (LoginResponse, error)
}
