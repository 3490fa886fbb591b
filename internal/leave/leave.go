package leave

import (
	"context"
	"errors"
	"time"
)

// Status is the leave approval state. PENDING moves to APPROVED or
// REJECTED and both are terminal; there is no transition back and no
// history of prior states.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Actions accepted by the approval workflow.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// StatusForAction maps a workflow action onto its terminal status.
// Anything outside {approve, reject} is rejected without mutating state.
func StatusForAction(action string) (Status, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionReject:
		return StatusRejected, true
	default:
		return "", false
	}
}

// Leave is a leave request record. EmployeeName is a snapshot taken at
// creation time; later name changes do not retroactively update it.
type Leave struct {
	ID           string    `bson:"_id" json:"leave_id"`
	EmployeeID   string    `bson:"employee_id" json:"employee_id"`
	EmployeeName string    `bson:"employee_name" json:"employee_name"`
	StartDate    string    `bson:"start_date" json:"start_date"`
	EndDate      string    `bson:"end_date" json:"end_date"`
	LeaveType    string    `bson:"leave_type" json:"leave_type"`
	Reason       string    `bson:"reason" json:"reason"`
	Status       Status    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CanTransition reports whether the approval workflow may still act on
// this record.
func (l *Leave) CanTransition() bool {
	return l.Status == StatusPending
}

var ErrNotFound = errors.New("leave request not found")

// Repository is the data access contract for leave records.
type Repository interface {
	All(ctx context.Context) ([]*Leave, error)
	ByEmployee(ctx context.Context, employeeID string) ([]*Leave, error)
	GetByID(ctx context.Context, id string) (*Leave, error)
	Create(ctx context.Context, l *Leave) error
	UpdateStatus(ctx context.Context, id string, status Status) error
}
