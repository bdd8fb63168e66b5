// File: models/registration.go
package models

import "time"

// Document part names accepted by the driver registration endpoint.
const (
	DocIDDocument          = "id_document"
	DocLicenseDocument     = "license_document"
	DocVehicleRegistration = "vehicle_registration"
	DocProfilePhoto        = "profile_photo"
)

// DriverDocumentFields lists the accepted document parts in upload order.
var DriverDocumentFields = []string{
	DocIDDocument,
	DocLicenseDocument,
	DocVehicleRegistration,
	DocProfilePhoto,
}

// DriverRegistration is one persisted driver-registration submission.
// Phone is always the E.164 form (+966 plus the 9-digit local number).
// Document URLs are pointers so a missing or failed upload stores null.
type DriverRegistration struct {
	ID           string `bson:"id" json:"id"`
	FullName     string `bson:"full_name" json:"full_name"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
	Message      string `bson:"message" json:"message"`
	SponsorPhone string `bson:"sponsor_phone,omitempty" json:"sponsor_phone,omitempty"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	VehicleType  string `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
	IDNumber     string `bson:"id_number,omitempty" json:"id_number,omitempty"`
	Nationality  string `bson:"nationality,omitempty" json:"nationality,omitempty"`

	IDDocumentURL          *string `bson:"id_document_url" json:"id_document_url"`
	LicenseDocumentURL     *string `bson:"license_document_url" json:"license_document_url"`
	VehicleRegistrationURL *string `bson:"vehicle_registration_url" json:"vehicle_registration_url"`
	ProfilePhotoURL        *string `bson:"profile_photo_url" json:"profile_photo_url"`

	IPAddress string    `bson:"ip_address" json:"ip_address"`
	UserAgent string    `bson:"user_agent" json:"user_agent"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
