package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for user repository operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)

	// DriverEmails returns email addresses keyed by user ID for the given
	// users, in one query.
	DriverEmails(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
