package intake

import (
	"regexp"
	"strings"

	"marassi/forms"
	"marassi/models"
)

// Server-side validation re-applies the client rules but short-circuits on
// the first violation: one descriptive message per failed request.

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	idNumberRe = regexp.MustCompile(`^\d{10}$`)
)

// Error messages returned to the caller on a 400.
const (
	errMissingContactFields = "Missing required fields: name, email, message"
	errMissingDriverFields  = "Missing required fields: name, phone, email, message"
	errInvalidEmail         = "Invalid email format"
	errInvalidPhone         = "Invalid Saudi phone number format"
	errInvalidSponsorPhone  = "Invalid sponsor phone number format"
	errInvalidIDNumber      = "Invalid ID number format"
	errNameTooShort         = "Name must be at least 3 characters"
	errMessageTooShort      = "Message must be at least 10 characters"
	errFieldTooLong         = "Field length exceeded maximum allowed"
	errTermsNotAccepted     = "You must agree to the terms and conditions"
)

// validContact holds the canonical contact fields after validation.
type validContact struct {
	name    string
	email   string
	phone   string // E.164, empty when not provided
	message string
}

// validDriver holds the canonical driver fields after validation.
type validDriver struct {
	name         string
	phone        string // E.164
	email        string
	message      string
	sponsorPhone string // E.164, empty when not provided
	city         string
	vehicleType  string
	idNumber     string
	nationality  string
}

func validateContact(req models.ContactRequest) (*validContact, error) {
	v := &validContact{
		name:    strings.TrimSpace(req.CanonicalName()),
		email:   strings.TrimSpace(req.Email),
		message: strings.TrimSpace(req.CanonicalMessage()),
	}

	if v.name == "" || v.email == "" || v.message == "" {
		return nil, NewValidationError(errMissingContactFields)
	}
	if !emailRe.MatchString(v.email) {
		return nil, NewValidationError(errInvalidEmail)
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		local := forms.NormalizeSaudiPhone(phone)
		if !forms.IsValidSaudiMobile(local) {
			return nil, NewValidationError(errInvalidPhone)
		}
		v.phone = forms.FormatE164(local)
	}
	if err := checkLengths(v.name, v.email, v.message); err != nil {
		return nil, err
	}

	v.email = strings.ToLower(v.email)
	return v, nil
}

func validateDriver(req models.DriverRegistrationRequest) (*validDriver, error) {
	v := &validDriver{
		name:         strings.TrimSpace(req.CanonicalName()),
		email:        strings.TrimSpace(req.Email),
		message:      strings.TrimSpace(req.CanonicalMessage()),
		sponsorPhone: strings.TrimSpace(req.SponsorPhone),
		city:         strings.TrimSpace(req.City),
		vehicleType:  strings.TrimSpace(req.VehicleType),
		idNumber:     strings.TrimSpace(req.IDNumber),
		nationality:  strings.TrimSpace(req.Nationality),
	}

	rawPhone := strings.TrimSpace(req.CanonicalPhone())
	if v.name == "" || rawPhone == "" || v.email == "" || v.message == "" {
		return nil, NewValidationError(errMissingDriverFields)
	}
	if !emailRe.MatchString(v.email) {
		return nil, NewValidationError(errInvalidEmail)
	}

	local := forms.NormalizeSaudiPhone(rawPhone)
	if !forms.IsValidSaudiMobile(local) {
		return nil, NewValidationError(errInvalidPhone)
	}
	v.phone = forms.FormatE164(local)

	if err := checkLengths(v.name, v.email, v.message); err != nil {
		return nil, err
	}
	if !req.AgreeTerms {
		return nil, NewValidationError(errTermsNotAccepted)
	}

	if v.sponsorPhone != "" {
		sponsorLocal := forms.NormalizeSaudiPhone(v.sponsorPhone)
		if !forms.IsValidSaudiMobile(sponsorLocal) {
			return nil, NewValidationError(errInvalidSponsorPhone)
		}
		v.sponsorPhone = forms.FormatE164(sponsorLocal)
	}
	if v.idNumber != "" && !idNumberRe.MatchString(v.idNumber) {
		return nil, NewValidationError(errInvalidIDNumber)
	}
	if len([]rune(v.nationality)) > 100 {
		return nil, NewValidationError(errFieldTooLong)
	}

	v.email = strings.ToLower(v.email)
	return v, nil
}

func checkLengths(name, email, message string) error {
	nameLen := len([]rune(name))
	messageLen := len([]rune(message))

	if nameLen < 3 {
		return NewValidationError(errNameTooShort)
	}
	if messageLen < 10 {
		return NewValidationError(errMessageTooShort)
	}
	if nameLen > 100 || len(email) > 100 || messageLen > 5000 {
		return NewValidationError(errFieldTooLong)
	}
	return nil
}
