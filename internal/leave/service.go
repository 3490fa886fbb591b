package leave

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/auth"
)

// Service handles leave request business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListLeaves scopes the listing by role: ADMIN gets the full scan,
// EMPLOYEE gets only its own records via the employee secondary index.
func (s *Service) ListLeaves(ctx context.Context, session *auth.Session) ([]*Leave, error) {
	var (
		leaves []*Leave
		err    error
	)

	if session.IsAdmin() {
		leaves, err = s.repo.All(ctx)
	} else {
		leaves, err = s.repo.ByEmployee(ctx, session.UserID)
	}

	if err != nil {
		s.logger.Error("failed to list leaves", "error", err, "user_id", session.UserID)
		return nil, internal.NewStoreError("failed to fetch leave requests", internal.ErrCodeRecordStoreFailure, err)
	}

	return leaves, nil
}

// CreateLeave records a new request in PENDING state. The requester's
// name is denormalized into the record at creation time.
func (s *Service) CreateLeave(ctx context.Context, session *auth.Session, dto CreateLeaveDTO) (*Leave, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	record := &Leave{
		ID:           uuid.NewString(),
		EmployeeID:   session.UserID,
		EmployeeName: session.FullName(),
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		LeaveType:    dto.LeaveType,
		Reason:       dto.Reason,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create leave request", "error", err, "employee_id", session.UserID)
		return nil, internal.NewStoreError("failed to create leave request", internal.ErrCodeRecordStoreFailure, err)
	}

	s.logger.Info("leave request created",
		"leave_id", record.ID,
		"employee_id", record.EmployeeID,
		"leave_type", record.LeaveType)

	return record, nil
}

// UpdateStatus runs the approval workflow. The action must be exactly
// approve or reject, and only a PENDING record may transition; both
// checks fail without mutating state.
func (s *Service) UpdateStatus(ctx context.Context, id, action string) (*Leave, error) {
	status, ok := StatusForAction(action)
	if !ok {
		return nil, internal.ErrInvalidAction
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrLeaveNotFound
		}
		s.logger.Error("failed to load leave request", "error", err, "leave_id", id)
		return nil, internal.NewStoreError("failed to load leave request", internal.ErrCodeRecordStoreFailure, err)
	}

	if !record.CanTransition() {
		return nil, internal.ErrLeaveAlreadyProcessed
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("failed to update leave status", "error", err, "leave_id", id)
		return nil, internal.NewStoreError("failed to update leave status", internal.ErrCodeRecordStoreFailure, err)
	}

	record.Status = status

	s.logger.Info("leave status updated", "leave_id", id, "status", status)
	return record, nil
}
