package leave

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/auth"
	"github.com/naufalhakim/hr-management/internal/user"
)

func TestLeave(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Leave Module Suite")
}

// Mock leave repository for testing
type mockLeaveRepository struct {
	leaves map[string]*Leave
}

func newMockLeaveRepository() *mockLeaveRepository {
	return &mockLeaveRepository{leaves: make(map[string]*Leave)}
}

func (m *mockLeaveRepository) All(_ context.Context) ([]*Leave, error) {
	result := make([]*Leave, 0, len(m.leaves))
	for _, l := range m.leaves {
		result = append(result, l)
	}
	return result, nil
}

func (m *mockLeaveRepository) ByEmployee(_ context.Context, employeeID string) ([]*Leave, error) {
	var result []*Leave
	for _, l := range m.leaves {
		if l.EmployeeID == employeeID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepository) GetByID(_ context.Context, id string) (*Leave, error) {
	l, exists := m.leaves[id]
	if !exists {
		return nil, ErrNotFound
	}
	return l, nil
}

func (m *mockLeaveRepository) Create(_ context.Context, l *Leave) error {
	m.leaves[l.ID] = l
	return nil
}

func (m *mockLeaveRepository) UpdateStatus(_ context.Context, id string, status Status) error {
	l, exists := m.leaves[id]
	if !exists {
		return ErrNotFound
	}
	l.Status = status
	return nil
}

var _ = ginkgo.Describe("LeaveService", func() {
	var (
		service  *Service
		mockRepo *mockLeaveRepository

		adminSession = &auth.Session{
			UserID:    "admin-1",
			Email:     "admin@f13.com",
			Role:      user.RoleAdmin,
			FirstName: "Admin",
			LastName:  "User",
		}
		employeeSession = &auth.Session{
			UserID:    "emp-1",
			Email:     "jane@x.com",
			Role:      user.RoleEmployee,
			FirstName: "Jane",
			LastName:  "Doe",
		}
	)

	validDTO := CreateLeaveDTO{
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		LeaveType: "ANNUAL",
		Reason:    "family trip",
	}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockLeaveRepository()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, lg)
	})

	ginkgo.Describe("CreateLeave", func() {
		ginkgo.It("should record a pending request stamped with the requester's identity", func() {
			record, err := service.CreateLeave(context.Background(), employeeSession, validDTO)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(record.Status).To(gomega.Equal(StatusPending))
			gomega.Expect(record.EmployeeID).To(gomega.Equal("emp-1"))
			gomega.Expect(record.EmployeeName).To(gomega.Equal("Jane Doe"))
			gomega.Expect(record.LeaveType).To(gomega.Equal("ANNUAL"))
		})

		ginkgo.It("should reject incomplete input", func() {
			dto := validDTO
			dto.EndDate = ""

			_, err := service.CreateLeave(context.Background(), employeeSession, dto)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			gomega.Expect(mockRepo.leaves).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("ListLeaves", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.CreateLeave(context.Background(), employeeSession, validDTO)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			other := &auth.Session{UserID: "emp-2", Role: user.RoleEmployee, FirstName: "Bob", LastName: "Ray"}
			_, err = service.CreateLeave(context.Background(), other, validDTO)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should return everything for an admin", func() {
			leaves, err := service.ListLeaves(context.Background(), adminSession)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(leaves).To(gomega.HaveLen(2))
		})

		ginkgo.It("should scope an employee to its own requests", func() {
			leaves, err := service.ListLeaves(context.Background(), employeeSession)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(leaves).To(gomega.HaveLen(1))
			gomega.Expect(leaves[0].EmployeeID).To(gomega.Equal("emp-1"))
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		var pending *Leave

		ginkgo.BeforeEach(func() {
			var err error
			pending, err = service.CreateLeave(context.Background(), employeeSession, validDTO)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should approve a pending request", func() {
			record, err := service.UpdateStatus(context.Background(), pending.ID, ActionApprove)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(record.Status).To(gomega.Equal(StatusApproved))
			gomega.Expect(mockRepo.leaves[pending.ID].Status).To(gomega.Equal(StatusApproved))
		})

		ginkgo.It("should reject a pending request", func() {
			record, err := service.UpdateStatus(context.Background(), pending.ID, ActionReject)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(record.Status).To(gomega.Equal(StatusRejected))
		})

		ginkgo.It("should refuse an unknown action without touching the record", func() {
			_, err := service.UpdateStatus(context.Background(), pending.ID, "escalate")

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidAction))
			gomega.Expect(mockRepo.leaves[pending.ID].Status).To(gomega.Equal(StatusPending))
		})

		ginkgo.It("should treat approved and rejected as terminal", func() {
			_, err := service.UpdateStatus(context.Background(), pending.ID, ActionApprove)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.UpdateStatus(context.Background(), pending.ID, ActionReject)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrLeaveAlreadyProcessed))
			gomega.Expect(mockRepo.leaves[pending.ID].Status).To(gomega.Equal(StatusApproved))
		})

		ginkgo.It("should report a missing record", func() {
			_, err := service.UpdateStatus(context.Background(), "no-such-id", ActionApprove)

			gomega.Expect(err).To(gomega.MatchError(internal.ErrLeaveNotFound))
		})
	})
})
