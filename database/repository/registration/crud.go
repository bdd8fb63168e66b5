package registrationRepo

import (
	"context"
	"time"

	"marassi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new driver registration and returns its ID.
func (r *mongoRegistrationRepo) Create(ctx context.Context, reg models.DriverRegistration) (string, error) {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	if reg.Status == "" {
		reg.Status = "new"
	}
	reg.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, reg)
	if err != nil {
		return "", err
	}
	return reg.ID, nil
}

// GetByID returns a driver registration by its ID.
func (r *mongoRegistrationRepo) GetByID(ctx context.Context, id string) (*models.DriverRegistration, error) {
	var reg models.DriverRegistration
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reg)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
