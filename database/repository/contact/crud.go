package contactRepo

import (
	"context"
	"time"

	"marassi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new contact message and returns its ID.
func (r *mongoContactRepo) Create(ctx context.Context, msg models.ContactMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Status == "" {
		msg.Status = "new"
	}
	msg.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// GetByID returns a contact message by its ID.
func (r *mongoContactRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
