// File: models/intake.go
package models

import "strings"

// ContactRequest is the contact form wire shape. Older site revisions sent
// full_name/notes instead of name/message; both spellings are accepted and
// coalesced by the Canonical* accessors.
type ContactRequest struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Notes    string `json:"notes"`
}

func (r ContactRequest) CanonicalName() string {
	return firstNonEmpty(r.Name, r.FullName)
}

func (r ContactRequest) CanonicalMessage() string {
	return firstNonEmpty(r.Message, r.Notes)
}

// DriverRegistrationRequest is the driver registration wire shape, JSON or
// multipart. The phone aliases cover every key the site's form handlers have
// ever posted.
type DriverRegistrationRequest struct {
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	PhoneLocal string `json:"phone_local"`
	PhoneE164  string `json:"phone_e164"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	Notes      string `json:"notes"`
	AgreeTerms bool   `json:"agree_terms"`

	SponsorPhone string `json:"sponsor_phone"`
	City         string `json:"city"`
	VehicleType  string `json:"vehicle_type"`
	IDNumber     string `json:"id_number"`
	Nationality  string `json:"nationality"`
}

func (r DriverRegistrationRequest) CanonicalName() string {
	return firstNonEmpty(r.Name, r.FullName)
}

func (r DriverRegistrationRequest) CanonicalPhone() string {
	return firstNonEmpty(r.Phone, r.PhoneLocal, r.PhoneE164)
}

func (r DriverRegistrationRequest) CanonicalMessage() string {
	return firstNonEmpty(r.Message, r.Notes)
}

// UploadedFile is one multipart file part buffered fully in memory, keyed by
// its field name.
type UploadedFile struct {
	Field   string
	Name    string
	Content []byte
}

// RequestMeta carries the request attributes persisted alongside a
// submission. Client is a parsed browser/OS summary used only for logging.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Client    string
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
