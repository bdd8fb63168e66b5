package contactRepo

import (
	"context"

	"marassi/config"
	"marassi/database"
	"marassi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactMessageRepository persists contact-form submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg models.ContactMessage) (string, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a new ContactMessageRepository instance using MongoDB.
func NewMongoContactRepo() ContactMessageRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoContactRepo{
		coll: db.Collection("contact_messages"),
	}
}
