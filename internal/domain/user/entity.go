package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleDriver = "driver"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

// User is a driver or staff account. Drivers are the identity joined into
// per-driver summaries; the email is their display label.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	FullName       string
	PhoneNumber    *string
	Role           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
