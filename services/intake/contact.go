package intake

import (
	"context"

	"marassi/models"
	"marassi/utils"

	"go.uber.org/zap"
)

// Submit validates a contact submission, persists it, then fires the admin
// notification. Validation failures never reach the database; a notification
// failure never changes the outcome.
func (s *DefaultContactService) Submit(ctx context.Context, req models.ContactRequest, meta models.RequestMeta) (*models.ContactMessage, error) {
	logger := utils.GetLogger()

	v, err := validateContact(req)
	if err != nil {
		return nil, err
	}

	msg := models.ContactMessage{
		Name:      v.name,
		Email:     v.email,
		Phone:     v.phone,
		Message:   v.message,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Status:    "new",
	}

	id, err := s.Repo.Create(ctx, msg)
	if err != nil {
		logger.Error("Submit: failed to save contact message", zap.Error(err))
		return nil, &PersistenceError{Message: "Failed to save message. Please try again.", Err: err}
	}
	msg.ID = id

	if s.Mailer != nil {
		if err := s.Mailer.SendContactNotification(ctx, &msg); err != nil {
			logger.Warn("Submit: contact notification email failed", zap.String("id", id), zap.Error(err))
		}
	}

	logger.Info("Submit: contact message saved",
		zap.String("id", id),
		zap.String("ip", meta.IPAddress),
		zap.String("client", meta.Client),
	)
	return &msg, nil
}
