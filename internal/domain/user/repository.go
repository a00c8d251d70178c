package user

import "context"

// UserRepository defines data access methods for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	// LinkOAuth attaches an OAuth identity to an existing account.
	LinkOAuth(ctx context.Context, id string, provider string, providerID string) error

	// CreateOwner inserts the first owner account. The owner-exists check and
	// the insert run atomically; ErrEmailExists is returned when an owner is
	// already registered.
	CreateOwner(ctx context.Context, u User) (User, error)
}
