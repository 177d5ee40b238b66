package user

import (
	"context"

	"github.com/google/uuid"
)

// User is a reader account. Email is the identity key: OAuth sign-ins
// from different providers converge on the same row by email.
type User struct {
	ID          uuid.UUID
	Email       string
	FirstName   string
	LoginMethod string // provider that last authenticated this user
}

// Store persists users. ByEmail returns (nil, nil) when no user exists
// for the email; the sign-in flow treats that as "create on first login".
type Store interface {
	ByID(ctx context.Context, id uuid.UUID) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, firstName string) (*User, error)
	SetLoginMethod(ctx context.Context, id uuid.UUID, method string) error
}
