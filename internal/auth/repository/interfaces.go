package repository

import (
	"context"
	"time"

	authdomain "caresync/internal/auth/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// TokenRevocationRepository tracks access tokens invalidated before their
// natural expiry (logout). Entries only need to live as long as the token
// itself, so implementations may expire them.
type TokenRevocationRepository interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
