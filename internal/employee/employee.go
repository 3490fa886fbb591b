package employee

import (
	"context"
	"errors"
	"time"
)

// DefaultPassword is the fixed initial password for accounts created
// through the employee workflow. Surfaced to the admin on creation so
// it can be handed over and changed.
const DefaultPassword = "employee123"

// Employee shares its id with the User row created in the same workflow
// step. The pairing is only eventually consistent: the two writes are
// independent store calls.
type Employee struct {
	ID         string    `bson:"_id" json:"employee_id"`
	Email      string    `bson:"email" json:"email"`
	FirstName  string    `bson:"first_name" json:"first_name"`
	LastName   string    `bson:"last_name" json:"last_name"`
	Department string    `bson:"department" json:"department"`
	Position   string    `bson:"position" json:"position"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

var ErrNotFound = errors.New("employee not found")

// Repository is the data access contract for employee records.
type Repository interface {
	All(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
}
