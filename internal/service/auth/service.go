package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/auth"
	"github.com/nizami-hq/nizami-backend-go/internal/domain/user"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/jwt"
	"github.com/nizami-hq/nizami-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo      user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) tokenPairFor(u user.User) (auth.TokenPair, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}

func loginResponseFor(u user.User, pair auth.TokenPair) auth.LoginResponse {
	return auth.LoginResponse{
		TokenPair: pair,
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}

// Register implements auth.AuthService. The first registered account becomes
// the owner; further registrations are rejected.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.CreateOwner(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashed,
		Role:         user.RoleOwner,
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	pair, err := a.tokenPairFor(created)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return loginResponseFor(created, pair), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if u.PasswordHash == nil {
		// OAuth-only account, no password set.
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	pair, err := a.tokenPairFor(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return loginResponseFor(u, pair), nil
}

// Refresh implements auth.AuthService. The old refresh token is revoked so
// each token can be exchanged once.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, err
	}

	a.jwtService.RevokeToken(refreshToken)

	pair, err := a.tokenPairFor(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return loginResponseFor(u, pair), nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleRedirectURL(_ context.Context, userAgent string) (string, string, error) {
	if a.googleService == nil {
		return "", "", auth.ErrInvalidCredentials
	}

	state := a.googleService.GenerateState(userAgent)
	if state == "" {
		return "", "", fmt.Errorf("failed to generate oauth state")
	}

	return a.googleService.RedirectURL(state), state, nil
}

// GoogleCallback implements auth.AuthService. Google sign-in only works for
// an already registered owner; it never creates accounts.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	if a.googleService == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}

	u, err := a.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrOAuthEmailUnknown
		}
		return auth.LoginResponse{}, err
	}

	if u.OAuthProviderID == nil {
		if err := a.userRepo.LinkOAuth(ctx, u.ID, "google", info.GoogleID); err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	pair, err := a.tokenPairFor(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return loginResponseFor(u, pair), nil
}
