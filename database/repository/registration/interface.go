package registrationRepo

import (
	"context"

	"marassi/config"
	"marassi/database"
	"marassi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DriverRegistrationRepository persists driver-registration submissions.
type DriverRegistrationRepository interface {
	Create(ctx context.Context, reg models.DriverRegistration) (string, error)
	GetByID(ctx context.Context, id string) (*models.DriverRegistration, error)
}

type mongoRegistrationRepo struct {
	coll *mongo.Collection
}

// NewMongoRegistrationRepo returns a new DriverRegistrationRepository instance using MongoDB.
func NewMongoRegistrationRepo() DriverRegistrationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoRegistrationRepo{
		coll: db.Collection("driver_registrations"),
	}
}
