package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/naufalhakim/hr-management/internal/leave"
	"github.com/naufalhakim/hr-management/internal/store"
)

// LeaveRepository implements leave.Repository on the leaves collection.
type LeaveRepository struct {
	leaves *mongo.Collection
}

// NewLeaveRepository provisions the employee secondary index on first
// run; without it the employee-scoped listing degrades to a full scan.
func NewLeaveRepository(ctx context.Context, db *store.MongoDB) (*LeaveRepository, error) {
	leaves := db.Collection("leaves")

	if _, err := leaves.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}}},
	}); err != nil {
		return nil, fmt.Errorf("create leaves indexes: %w", err)
	}

	return &LeaveRepository{leaves: leaves}, nil
}

// All is the admin full scan.
func (r *LeaveRepository) All(ctx context.Context) ([]*leave.Leave, error) {
	cursor, err := r.leaves.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find leaves: %w", err)
	}
	var results []*leave.Leave
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}
	return results, nil
}

// ByEmployee is the indexed lookup used for employee-scoped listings.
func (r *LeaveRepository) ByEmployee(ctx context.Context, employeeID string) ([]*leave.Leave, error) {
	cursor, err := r.leaves.Find(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, fmt.Errorf("find leaves by employee: %w", err)
	}
	var results []*leave.Leave
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode leaves: %w", err)
	}
	return results, nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	var l leave.Leave
	err := r.leaves.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, leave.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find leave: %w", err)
	}
	return &l, nil
}

func (r *LeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if _, err := r.leaves.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}
	return nil
}

func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	res, err := r.leaves.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	if res.MatchedCount == 0 {
		return leave.ErrNotFound
	}
	return nil
}
