package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/naufalhakim/hr-management/internal/employee"
	"github.com/naufalhakim/hr-management/internal/store"
)

// EmployeeRepository implements employee.Repository on the employees
// collection. Employees are only looked up by primary key and full
// scan, so no secondary index is provisioned.
type EmployeeRepository struct {
	employees *mongo.Collection
}

func NewEmployeeRepository(db *store.MongoDB) *EmployeeRepository {
	return &EmployeeRepository{employees: db.Collection("employees")}
}

// All is an unbounded full scan; result size is not paginated.
func (r *EmployeeRepository) All(ctx context.Context) ([]*employee.Employee, error) {
	cursor, err := r.employees.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	var results []*employee.Employee
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return results, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	var e employee.Employee
	err := r.employees.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, employee.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if _, err := r.employees.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.employees.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
