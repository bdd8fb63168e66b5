package intake

import (
	"bytes"
	"context"
	"fmt"

	"marassi/models"
	"marassi/utils"

	"go.uber.org/zap"
)

const driverDocumentsFolder = "driver-documents"

// Register validates a driver registration, uploads its documents one at a
// time, persists the row with the E.164 phone as the phone of record, then
// fires the admin notification. A failed upload leaves that document URL
// null and is never fatal; a failed insert is.
func (s *DefaultDriverService) Register(ctx context.Context, req models.DriverRegistrationRequest, files []models.UploadedFile, meta models.RequestMeta) (*models.DriverRegistration, error) {
	logger := utils.GetLogger()

	v, err := validateDriver(req)
	if err != nil {
		return nil, err
	}

	reg := models.DriverRegistration{
		FullName:     v.name,
		Phone:        v.phone,
		Email:        v.email,
		Message:      v.message,
		SponsorPhone: v.sponsorPhone,
		City:         v.city,
		VehicleType:  v.vehicleType,
		IDNumber:     v.idNumber,
		Nationality:  v.nationality,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Status:       "new",
	}

	for _, f := range files {
		slot := documentURLSlot(&reg, f.Field)
		if slot == nil {
			logger.Warn("Register: ignoring unknown document field", zap.String("field", f.Field))
			continue
		}
		url, err := s.uploadDocument(ctx, f)
		if err != nil {
			logger.Warn("Register: document upload failed",
				zap.String("field", f.Field),
				zap.String("filename", f.Name),
				zap.Error(err),
			)
			continue
		}
		*slot = &url
	}

	id, err := s.Repo.Create(ctx, reg)
	if err != nil {
		logger.Error("Register: failed to save driver registration", zap.Error(err))
		return nil, &PersistenceError{Message: "Failed to save registration. Please try again.", Err: err}
	}
	reg.ID = id

	if s.Mailer != nil {
		if err := s.Mailer.SendDriverNotification(ctx, &reg); err != nil {
			logger.Warn("Register: driver notification email failed", zap.String("id", id), zap.Error(err))
		}
	}

	logger.Info("Register: driver registration saved",
		zap.String("id", id),
		zap.String("ip", meta.IPAddress),
		zap.String("client", meta.Client),
	)
	return &reg, nil
}

func (s *DefaultDriverService) uploadDocument(ctx context.Context, f models.UploadedFile) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("object storage not configured")
	}
	return s.Storage.UploadFile(ctx, bytes.NewReader(f.Content), f.Name, driverDocumentsFolder)
}

// documentURLSlot maps a multipart field name to its URL column.
func documentURLSlot(reg *models.DriverRegistration, field string) **string {
	switch field {
	case models.DocIDDocument:
		return &reg.IDDocumentURL
	case models.DocLicenseDocument:
		return &reg.LicenseDocumentURL
	case models.DocVehicleRegistration:
		return &reg.VehicleRegistrationURL
	case models.DocProfilePhoto:
		return &reg.ProfilePhotoURL
	}
	return nil
}
