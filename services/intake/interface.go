package intake

import (
	"context"

	contactRepo "marassi/database/repository/contact"
	registrationRepo "marassi/database/repository/registration"
	"marassi/models"
	"marassi/services/notification"
	"marassi/services/storage"
)

// ContactService handles one contact-form submission per call.
type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest, meta models.RequestMeta) (*models.ContactMessage, error)
}

// DriverService handles one driver-registration submission per call,
// including document uploads.
type DriverService interface {
	Register(ctx context.Context, req models.DriverRegistrationRequest, files []models.UploadedFile, meta models.RequestMeta) (*models.DriverRegistration, error)
}

// DefaultContactService is the production ContactService.
type DefaultContactService struct {
	Repo   contactRepo.ContactMessageRepository
	Mailer notification.Mailer
}

// DefaultDriverService is the production DriverService. Storage may be nil
// when object storage is not configured; uploads then degrade to null URLs.
type DefaultDriverService struct {
	Repo    registrationRepo.DriverRegistrationRepository
	Storage storage.StorageService
	Mailer  notification.Mailer
}
