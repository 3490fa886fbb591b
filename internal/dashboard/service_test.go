package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/naufalhakim/hr-management/internal/document"
	"github.com/naufalhakim/hr-management/internal/employee"
	"github.com/naufalhakim/hr-management/internal/leave"
)

func TestDashboard(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Dashboard Module Suite")
}

// Mock stores for testing
type mockEmployeeStore struct {
	employees map[string]*employee.Employee
	allError  error
	getError  error
}

func (m *mockEmployeeStore) All(_ context.Context) ([]*employee.Employee, error) {
	if m.allError != nil {
		return nil, m.allError
	}
	result := make([]*employee.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEmployeeStore) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	e, exists := m.employees[id]
	if !exists {
		return nil, employee.ErrNotFound
	}
	return e, nil
}

type mockLeaveLister struct {
	leaves   []*leave.Leave
	allError error
}

func (m *mockLeaveLister) All(_ context.Context) ([]*leave.Leave, error) {
	if m.allError != nil {
		return nil, m.allError
	}
	return m.leaves, nil
}

type mockDocumentLister struct {
	docs      []document.Descriptor
	listError error
}

func (m *mockDocumentLister) List(_ context.Context) ([]document.Descriptor, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.docs, nil
}

var _ = ginkgo.Describe("DashboardService", func() {
	var (
		service   *Service
		employees *mockEmployeeStore
		leaves    *mockLeaveLister
		documents *mockDocumentLister
	)

	newLeave := func(id, employeeID string, status leave.Status, age time.Duration) *leave.Leave {
		return &leave.Leave{
			ID:         id,
			EmployeeID: employeeID,
			Status:     status,
			CreatedAt:  time.Now().Add(-age),
		}
	}

	ginkgo.BeforeEach(func() {
		employees = &mockEmployeeStore{employees: map[string]*employee.Employee{
			"emp-1": {ID: "emp-1", FirstName: "Jane", LastName: "Doe"},
			"emp-2": {ID: "emp-2", FirstName: "Bob", LastName: "Ray"},
		}}
		leaves = &mockLeaveLister{leaves: []*leave.Leave{
			newLeave("l1", "emp-1", leave.StatusPending, time.Hour),
			newLeave("l2", "emp-1", leave.StatusApproved, 2*time.Hour),
			newLeave("l3", "emp-2", leave.StatusRejected, 3*time.Hour),
		}}
		documents = &mockDocumentLister{docs: []document.Descriptor{
			{Key: "a.pdf"}, {Key: "b.pdf"},
		}}
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(employees, leaves, documents, lg)
	})

	ginkgo.Describe("Overview", func() {
		ginkgo.It("should aggregate counts across all stores", func() {
			overview := service.Overview(context.Background())

			gomega.Expect(overview.Stats.TotalEmployees).To(gomega.Equal(2))
			gomega.Expect(overview.Stats.PendingLeaves).To(gomega.Equal(1))
			gomega.Expect(overview.Stats.ApprovedLeaves).To(gomega.Equal(1))
			gomega.Expect(overview.Stats.TotalDocuments).To(gomega.Equal(2))
		})

		ginkgo.It("should join recent leaves to employee names, newest first", func() {
			overview := service.Overview(context.Background())

			gomega.Expect(overview.RecentLeaves).To(gomega.HaveLen(3))
			gomega.Expect(overview.RecentLeaves[0].ID).To(gomega.Equal("l1"))
			gomega.Expect(overview.RecentLeaves[0].EmployeeName).To(gomega.Equal("Jane Doe"))
			gomega.Expect(overview.RecentLeaves[2].EmployeeName).To(gomega.Equal("Bob Ray"))
		})

		ginkgo.It("should cap the recent list at five", func() {
			for i := 0; i < 10; i++ {
				leaves.leaves = append(leaves.leaves,
					newLeave("extra", "emp-1", leave.StatusPending, time.Duration(i)*time.Minute))
			}

			overview := service.Overview(context.Background())

			gomega.Expect(overview.RecentLeaves).To(gomega.HaveLen(5))
		})

		ginkgo.It("should fall back to the raw employee id when the join fails", func() {
			leaves.leaves = []*leave.Leave{newLeave("l9", "ghost-id", leave.StatusPending, time.Minute)}

			overview := service.Overview(context.Background())

			gomega.Expect(overview.RecentLeaves[0].EmployeeName).To(gomega.Equal("ghost-id"))
		})

		ginkgo.It("should zero the employee count when that store is down", func() {
			employees.allError = errors.New("store down")

			overview := service.Overview(context.Background())

			gomega.Expect(overview.Stats.TotalEmployees).To(gomega.BeZero())
			gomega.Expect(overview.Stats.PendingLeaves).To(gomega.Equal(1))
			gomega.Expect(overview.Stats.TotalDocuments).To(gomega.Equal(2))
		})

		ginkgo.It("should zero the leave stats and empty the recent list when that store is down", func() {
			leaves.allError = errors.New("store down")

			overview := service.Overview(context.Background())

			gomega.Expect(overview.Stats.PendingLeaves).To(gomega.BeZero())
			gomega.Expect(overview.Stats.ApprovedLeaves).To(gomega.BeZero())
			gomega.Expect(overview.RecentLeaves).To(gomega.BeEmpty())
			gomega.Expect(overview.Stats.TotalEmployees).To(gomega.Equal(2))
		})

		ginkgo.It("should zero the document count when the object store is unreachable", func() {
			documents.listError = errors.New("connection refused")

			overview := service.Overview(context.Background())

			gomega.Expect(overview.Stats.TotalDocuments).To(gomega.BeZero())
			gomega.Expect(overview.Stats.TotalEmployees).To(gomega.Equal(2))
		})

		ginkgo.It("should not mutate the lister's records when joining names", func() {
			service.Overview(context.Background())

			gomega.Expect(leaves.leaves[0].EmployeeName).To(gomega.BeEmpty())
		})
	})
})
