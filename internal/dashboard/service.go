package dashboard

import (
	"context"
	"log/slog"
	"sort"

	"github.com/naufalhakim/hr-management/internal/document"
	"github.com/naufalhakim/hr-management/internal/employee"
	"github.com/naufalhakim/hr-management/internal/leave"
)

const recentLeaveLimit = 5

// Stats are the cross-cutting dashboard counts. Leave counts come from
// a full scan with client-side filtering; status is not indexed.
type Stats struct {
	TotalEmployees int `json:"total_employees"`
	PendingLeaves  int `json:"pending_leaves"`
	ApprovedLeaves int `json:"approved_leaves"`
	TotalDocuments int `json:"total_documents"`
}

// Overview is the aggregated dashboard payload.
type Overview struct {
	Stats        Stats          `json:"stats"`
	RecentLeaves []*leave.Leave `json:"recent_leaves"`
}

// EmployeeStore is the slice of the employee repository the dashboard
// reads: the count scan and the best-effort join.
type EmployeeStore interface {
	All(ctx context.Context) ([]*employee.Employee, error)
	GetByID(ctx context.Context, id string) (*employee.Employee, error)
}

type LeaveLister interface {
	All(ctx context.Context) ([]*leave.Leave, error)
}

type DocumentLister interface {
	List(ctx context.Context) ([]document.Descriptor, error)
}

// Service composes read-only aggregates over the other components'
// stores. Every store failure degrades its own slice of the result to
// zero/empty instead of surfacing an error: the page stays available
// at the cost of correctness visibility.
type Service struct {
	employees EmployeeStore
	leaves    LeaveLister
	documents DocumentLister
	logger    *slog.Logger
}

func NewService(employees EmployeeStore, leaves LeaveLister, documents DocumentLister, logger *slog.Logger) *Service {
	return &Service{
		employees: employees,
		leaves:    leaves,
		documents: documents,
		logger:    logger,
	}
}

func (s *Service) Overview(ctx context.Context) *Overview {
	overview := &Overview{RecentLeaves: []*leave.Leave{}}

	if employees, err := s.employees.All(ctx); err != nil {
		s.logger.Error("dashboard: employee count unavailable", "error", err)
	} else {
		overview.Stats.TotalEmployees = len(employees)
	}

	if leaves, err := s.leaves.All(ctx); err != nil {
		s.logger.Error("dashboard: leave stats unavailable", "error", err)
	} else {
		for _, l := range leaves {
			switch l.Status {
			case leave.StatusPending:
				overview.Stats.PendingLeaves++
			case leave.StatusApproved:
				overview.Stats.ApprovedLeaves++
			}
		}
		overview.RecentLeaves = s.recentLeaves(ctx, leaves)
	}

	if docs, err := s.documents.List(ctx); err != nil {
		s.logger.Error("dashboard: document count unavailable", "error", err)
	} else {
		overview.Stats.TotalDocuments = len(docs)
	}

	return overview
}

// recentLeaves returns the most recently created leaves joined
// best-effort against their employee record; a failed lookup falls back
// to the raw employee id as the display name.
func (s *Service) recentLeaves(ctx context.Context, leaves []*leave.Leave) []*leave.Leave {
	sorted := make([]*leave.Leave, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > recentLeaveLimit {
		sorted = sorted[:recentLeaveLimit]
	}

	recent := make([]*leave.Leave, 0, len(sorted))
	for _, l := range sorted {
		entry := *l
		if emp, err := s.employees.GetByID(ctx, l.EmployeeID); err != nil {
			entry.EmployeeName = l.EmployeeID
		} else {
			entry.EmployeeName = emp.FullName()
		}
		recent = append(recent, &entry)
	}
	return recent
}
