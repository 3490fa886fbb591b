package user

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of account roles. Keeping it a dedicated type
// means an unknown role fails at parse time instead of leaking into
// authorization checks as a string compare.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// User is an account record. Email uniqueness relies on the store's
// secondary index lookup taking the first match; it is not enforced by
// application logic.
type User struct {
	ID           string    `bson:"_id" json:"user_id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	FirstName    string    `bson:"first_name" json:"first_name"`
	LastName     string    `bson:"last_name" json:"last_name"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

var ErrNotFound = errors.New("user not found")

// Repository is the data access contract for user records.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
