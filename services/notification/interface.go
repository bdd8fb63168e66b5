package notification

import (
	"context"

	"marassi/models"
)

// Mailer sends the admin notification email for one submission. Sends are
// best-effort: callers log failures and never surface them to the submitter.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg *models.ContactMessage) error
	SendDriverNotification(ctx context.Context, reg *models.DriverRegistration) error
}
