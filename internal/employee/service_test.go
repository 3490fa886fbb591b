package employee

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/naufalhakim/hr-management/internal"
	"github.com/naufalhakim/hr-management/internal/user"
)

func TestEmployee(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Employee Module Suite")
}

// Mock employee repository for testing
type mockEmployeeRepository struct {
	employees   map[string]*Employee
	createError error
	deleteError error
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{employees: make(map[string]*Employee)}
}

func (m *mockEmployeeRepository) All(_ context.Context) ([]*Employee, error) {
	result := make([]*Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEmployeeRepository) GetByID(_ context.Context, id string) (*Employee, error) {
	e, exists := m.employees[id]
	if !exists {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *mockEmployeeRepository) Create(_ context.Context, e *Employee) error {
	if m.createError != nil {
		return m.createError
	}
	m.employees[e.ID] = e
	return nil
}

func (m *mockEmployeeRepository) Delete(_ context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.employees, id)
	return nil
}

// Mock user writer for testing
type mockUserWriter struct {
	users       map[string]*user.User
	createError error
	deleteError error
}

func newMockUserWriter() *mockUserWriter {
	return &mockUserWriter{users: make(map[string]*user.User)}
}

func (m *mockUserWriter) Create(_ context.Context, u *user.User) error {
	if m.createError != nil {
		return m.createError
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserWriter) Delete(_ context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.users, id)
	return nil
}

type bcryptHasher struct{}

func (bcryptHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash), err
}

var _ = ginkgo.Describe("EmployeeService", func() {
	var (
		service   *Service
		mockRepo  *mockEmployeeRepository
		mockUsers *mockUserWriter
	)

	validDTO := CreateEmployeeDTO{
		Email:      "a@x.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "Eng",
		Position:   "SWE",
	}

	ginkgo.BeforeEach(func() {
		mockRepo = newMockEmployeeRepository()
		mockUsers = newMockUserWriter()
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = NewService(mockRepo, mockUsers, bcryptHasher{}, lg)
	})

	ginkgo.Describe("CreateEmployee", func() {
		ginkgo.It("should write paired user and employee rows under one shared id", func() {
			resp, err := service.CreateEmployee(context.Background(), validDTO)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resp.EmployeeID).ToNot(gomega.BeEmpty())
			gomega.Expect(resp.DefaultPassword).To(gomega.Equal(DefaultPassword))

			account, exists := mockUsers.users[resp.EmployeeID]
			gomega.Expect(exists).To(gomega.BeTrue())
			gomega.Expect(account.Role).To(gomega.Equal(user.RoleEmployee))
			gomega.Expect(account.Email).To(gomega.Equal("a@x.com"))
			gomega.Expect(bcrypt.CompareHashAndPassword(
				[]byte(account.PasswordHash), []byte("employee123"))).To(gomega.Succeed())

			record, exists := mockRepo.employees[resp.EmployeeID]
			gomega.Expect(exists).To(gomega.BeTrue())
			gomega.Expect(record.ID).To(gomega.Equal(account.ID))
			gomega.Expect(record.Department).To(gomega.Equal("Eng"))
			gomega.Expect(record.Position).To(gomega.Equal("SWE"))
		})

		ginkgo.It("should compensate by deleting the user row when the employee write fails", func() {
			mockRepo.createError = errors.New("write failed")

			_, err := service.CreateEmployee(context.Background(), validDTO)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(mockUsers.users).To(gomega.BeEmpty())
			gomega.Expect(mockRepo.employees).To(gomega.BeEmpty())
		})

		ginkgo.It("should surface a store error and leave the orphan when compensation also fails", func() {
			mockRepo.createError = errors.New("write failed")
			mockUsers.deleteError = errors.New("delete failed")

			_, err := service.CreateEmployee(context.Background(), validDTO)

			gomega.Expect(err).To(gomega.HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeRecordStoreFailure))
			// orphan user row remains
			gomega.Expect(mockUsers.users).To(gomega.HaveLen(1))
		})

		ginkgo.It("should reject incomplete input", func() {
			dto := validDTO
			dto.Department = ""

			_, err := service.CreateEmployee(context.Background(), dto)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
			gomega.Expect(mockUsers.users).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("DeleteEmployee", func() {
		ginkgo.It("should delete both rows", func() {
			resp, err := service.CreateEmployee(context.Background(), validDTO)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.DeleteEmployee(context.Background(), resp.EmployeeID)).To(gomega.Succeed())
			gomega.Expect(mockRepo.employees).To(gomega.BeEmpty())
			gomega.Expect(mockUsers.users).To(gomega.BeEmpty())
		})

		ginkgo.It("should surface the dangling user row when the second delete fails", func() {
			resp, err := service.CreateEmployee(context.Background(), validDTO)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockUsers.deleteError = errors.New("delete failed")

			err = service.DeleteEmployee(context.Background(), resp.EmployeeID)
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(mockRepo.employees).To(gomega.BeEmpty())
			gomega.Expect(mockUsers.users).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("ListEmployees", func() {
		ginkgo.It("should return every record", func() {
			for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
				dto := validDTO
				dto.Email = email
				_, err := service.CreateEmployee(context.Background(), dto)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			}

			employees, err := service.ListEmployees(context.Background())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(employees).To(gomega.HaveLen(3))
		})
	})
})
