package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/user"
)

// UserWriter is the slice of the user repository the employee workflow
// touches: the paired account writes and the compensating delete.
type UserWriter interface {
	Create(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id string) error
}

// PasswordHasher hashes the default password for new accounts.
// Satisfied by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Service handles employee record business logic.
type Service struct {
	repo   Repository
	users  UserWriter
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, users UserWriter, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// ListEmployees returns the full unfiltered scan of employee records.
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	employees, err := s.repo.All(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewStoreError("failed to fetch employees", internal.ErrCodeRecordStoreFailure, err)
	}
	return employees, nil
}

// CreateEmployee writes a User row with role EMPLOYEE and the default
// password, then a parallel Employee row under the same generated id.
// There is no multi-record transaction primitive; if the second write
// fails, the partially written User row is deleted as a compensating
// step to approximate atomicity.
func (s *Service) CreateEmployee(ctx context.Context, dto CreateEmployeeDTO) (*CreateEmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	passwordHash, err := s.hasher.HashPassword(DefaultPassword)
	if err != nil {
		s.logger.Error("failed to hash default password", "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	id := uuid.NewString()
	now := time.Now()

	account := &user.User{
		ID:           id,
		Email:        dto.Email,
		PasswordHash: passwordHash,
		Role:         user.RoleEmployee,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		CreatedAt:    now,
	}

	record := &Employee{
		ID:         id,
		Email:      dto.Email,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Department: dto.Department,
		Position:   dto.Position,
		CreatedAt:  now,
	}

	if err := s.users.Create(ctx, account); err != nil {
		s.logger.Error("failed to create user account", "error", err, "email", dto.Email)
		return nil, internal.NewStoreError("failed to create employee", internal.ErrCodeRecordStoreFailure, err)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to create employee record, compensating", "error", err, "employee_id", id)
		if delErr := s.users.Delete(ctx, id); delErr != nil {
			// Compensation failed: an orphan User row remains.
			s.logger.Error("compensating user delete failed, orphan user row left behind",
				"error", delErr, "user_id", id)
		}
		return nil, internal.NewStoreError("failed to create employee", internal.ErrCodeRecordStoreFailure, err)
	}

	s.logger.Info("employee created", "employee_id", id, "department", dto.Department)

	return &CreateEmployeeResponse{
		EmployeeID:      id,
		DefaultPassword: DefaultPassword,
	}, nil
}

// DeleteEmployee issues two independent deletes. A failure between them
// leaves a dangling row; the error is surfaced so the caller can retry
// manually.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete employee record", "error", err, "employee_id", id)
		return internal.NewStoreError("failed to delete employee", internal.ErrCodeRecordStoreFailure, err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user account, dangling user row left behind",
			"error", err, "user_id", id)
		return internal.NewStoreError("failed to delete employee account", internal.ErrCodeRecordStoreFailure, err)
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}
