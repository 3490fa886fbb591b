package leave

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/auth"
	"github.com/naufalhakim/hr-management/internal/user"
)

// Mock service for handler testing
type mockLeaveService struct {
	leaves      []*Leave
	created     *Leave
	updated     *Leave
	returnError error
}

func (m *mockLeaveService) ListLeaves(_ context.Context, _ *auth.Session) ([]*Leave, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.leaves, nil
}

func (m *mockLeaveService) CreateLeave(_ context.Context, session *auth.Session, dto CreateLeaveDTO) (*Leave, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	m.created = &Leave{
		ID:           "leave-1",
		EmployeeID:   session.UserID,
		EmployeeName: session.FullName(),
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		LeaveType:    dto.LeaveType,
		Reason:       dto.Reason,
		Status:       StatusPending,
	}
	return m.created, nil
}

func (m *mockLeaveService) UpdateStatus(_ context.Context, id, action string) (*Leave, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	status, _ := StatusForAction(action)
	m.updated = &Leave{ID: id, Status: status}
	return m.updated, nil
}

var _ = ginkgo.Describe("LeaveHandler", func() {
	var (
		handler     *Handler
		mockService *mockLeaveService
		session     *auth.Session
	)

	withSession := func(r *http.Request) *http.Request {
		return r.WithContext(auth.ContextWithSession(r.Context(), session))
	}

	ginkgo.BeforeEach(func() {
		mockService = &mockLeaveService{}
		handler = NewHandler(mockService)
		session = &auth.Session{
			UserID:    "emp-1",
			Email:     "jane@x.com",
			Role:      user.RoleEmployee,
			FirstName: "Jane",
			LastName:  "Doe",
		}
	})

	ginkgo.Describe("ListLeaves", func() {
		ginkgo.It("should return the listing wrapped in a leaves envelope", func() {
			mockService.leaves = []*Leave{{ID: "l1"}, {ID: "l2"}}

			req := withSession(httptest.NewRequest("GET", "/leaves", nil))
			w := httptest.NewRecorder()
			handler.ListLeaves(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var body map[string][]*Leave
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["leaves"]).To(gomega.HaveLen(2))
		})

		ginkgo.It("should reject a request with no session", func() {
			req := httptest.NewRequest("GET", "/leaves", nil)
			w := httptest.NewRecorder()
			handler.ListLeaves(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("CreateLeave", func() {
		ginkgo.It("should create a request for the session's user", func() {
			payload := `{"start_date":"2026-09-10","end_date":"2026-09-12","leave_type":"ANNUAL","reason":"trip"}`

			req := withSession(httptest.NewRequest("POST", "/leaves/create", strings.NewReader(payload)))
			w := httptest.NewRecorder()
			handler.CreateLeave(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(mockService.created.EmployeeID).To(gomega.Equal("emp-1"))
			gomega.Expect(mockService.created.EmployeeName).To(gomega.Equal("Jane Doe"))
		})

		ginkgo.It("should reject a malformed body", func() {
			req := withSession(httptest.NewRequest("POST", "/leaves/create", strings.NewReader("{not json")))
			w := httptest.NewRecorder()
			handler.CreateLeave(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		newRouter := func() chi.Router {
			r := chi.NewRouter()
			r.Post("/leaves/update-status/{id}", handler.UpdateStatus)
			return r
		}

		ginkgo.It("should pass the id and action through to the service", func() {
			req := httptest.NewRequest("POST", "/leaves/update-status/l1", strings.NewReader(`{"action":"approve"}`))
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(mockService.updated.ID).To(gomega.Equal("l1"))
			gomega.Expect(mockService.updated.Status).To(gomega.Equal(StatusApproved))
		})

		ginkgo.It("should translate an already processed request to a 400", func() {
			mockService.returnError = internal.ErrLeaveAlreadyProcessed

			req := httptest.NewRequest("POST", "/leaves/update-status/l1", strings.NewReader(`{"action":"reject"}`))
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should translate a missing record to a 404", func() {
			mockService.returnError = internal.ErrLeaveNotFound

			req := httptest.NewRequest("POST", "/leaves/update-status/ghost", strings.NewReader(`{"action":"approve"}`))
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
