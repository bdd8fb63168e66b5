package intake

import (
	"context"
	"errors"
	"io"
	"testing"

	"marassi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	created []models.ContactMessage
	err     error
}

func (f *fakeContactRepo) Create(_ context.Context, msg models.ContactMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, msg)
	return "contact-1", nil
}

func (f *fakeContactRepo) GetByID(context.Context, string) (*models.ContactMessage, error) {
	return nil, errors.New("not implemented")
}

type fakeRegistrationRepo struct {
	created []models.DriverRegistration
	err     error
}

func (f *fakeRegistrationRepo) Create(_ context.Context, reg models.DriverRegistration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, reg)
	return "reg-1", nil
}

func (f *fakeRegistrationRepo) GetByID(context.Context, string) (*models.DriverRegistration, error) {
	return nil, errors.New("not implemented")
}

type fakeStorage struct {
	failOn map[string]bool // keyed by filename
	calls  []string
}

func (f *fakeStorage) UploadFile(_ context.Context, r io.Reader, filename, destFolder string) (string, error) {
	f.calls = append(f.calls, filename)
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	if f.failOn[filename] {
		return "", errors.New("upstream rejected the file")
	}
	return "https://cdn.example.com/" + destFolder + "/" + filename, nil
}

type fakeMailer struct {
	contactCalls int
	driverCalls  int
	err          error
	lastDriver   *models.DriverRegistration
}

func (f *fakeMailer) SendContactNotification(_ context.Context, _ *models.ContactMessage) error {
	f.contactCalls++
	return f.err
}

func (f *fakeMailer) SendDriverNotification(_ context.Context, reg *models.DriverRegistration) error {
	f.driverCalls++
	f.lastDriver = reg
	return f.err
}

func validDriverRequest() models.DriverRegistrationRequest {
	return models.DriverRegistrationRequest{
		Name:       "Ahmed Ali",
		Phone:      "0512345678",
		Email:      "Ahmed@Example.com",
		Message:    "I want to join as a driver",
		AgreeTerms: true,
	}
}

func testMeta() models.RequestMeta {
	return models.RequestMeta{IPAddress: "203.0.113.7", UserAgent: "test-agent", Client: "Firefox on Linux"}
}

func TestRegister_PersistsNormalizedSubmission(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	mailer := &fakeMailer{}
	svc := &DefaultDriverService{Repo: repo, Mailer: mailer}

	reg, err := svc.Register(context.Background(), validDriverRequest(), nil, testMeta())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, "+966512345678", saved.Phone)
	assert.Equal(t, "ahmed@example.com", saved.Email)
	assert.Equal(t, "Ahmed Ali", saved.FullName)
	assert.Equal(t, "new", saved.Status)
	assert.Equal(t, "203.0.113.7", saved.IPAddress)
	assert.Equal(t, "test-agent", saved.UserAgent)

	assert.Equal(t, "reg-1", reg.ID)
	assert.Equal(t, 1, mailer.driverCalls)
	assert.Same(t, reg, mailer.lastDriver)
}

func TestRegister_PhoneAliasesCoalesce(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := &DefaultDriverService{Repo: repo}

	req := validDriverRequest()
	req.Phone = ""
	req.PhoneLocal = "512345678"

	_, err := svc.Register(context.Background(), req, nil, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "+966512345678", repo.created[0].Phone)
}

func TestRegister_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.DriverRegistrationRequest)
		wantMsg string
	}{
		{
			"missing phone",
			func(r *models.DriverRegistrationRequest) { r.Phone = "" },
			"Missing required fields: name, phone, email, message",
		},
		{
			"invalid email",
			func(r *models.DriverRegistrationRequest) { r.Email = "not-an-email" },
			"Invalid email format",
		},
		{
			"phone not a Saudi mobile",
			func(r *models.DriverRegistrationRequest) { r.Phone = "212345678" },
			"Invalid Saudi phone number format",
		},
		{
			"terms not accepted",
			func(r *models.DriverRegistrationRequest) { r.AgreeTerms = false },
			"You must agree to the terms and conditions",
		},
		{
			"name too short",
			func(r *models.DriverRegistrationRequest) { r.Name = "ab" },
			"Name must be at least 3 characters",
		},
		{
			"message too short",
			func(r *models.DriverRegistrationRequest) { r.Message = "short" },
			"Message must be at least 10 characters",
		},
		{
			"bad sponsor phone",
			func(r *models.DriverRegistrationRequest) { r.SponsorPhone = "12345" },
			"Invalid sponsor phone number format",
		},
		{
			"bad id number",
			func(r *models.DriverRegistrationRequest) { r.IDNumber = "12345" },
			"Invalid ID number format",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRegistrationRepo{}
			mailer := &fakeMailer{}
			svc := &DefaultDriverService{Repo: repo, Mailer: mailer}

			req := validDriverRequest()
			tc.mutate(&req)

			_, err := svc.Register(context.Background(), req, nil, testMeta())
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantMsg, vErr.Message)

			assert.Empty(t, repo.created, "validation failures never reach the database")
			assert.Zero(t, mailer.driverCalls)
		})
	}
}

func TestRegister_NoFilesLeavesAllURLsNull(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := &DefaultDriverService{Repo: repo, Storage: &fakeStorage{}}

	_, err := svc.Register(context.Background(), validDriverRequest(), nil, testMeta())
	require.NoError(t, err)

	saved := repo.created[0]
	assert.Nil(t, saved.IDDocumentURL)
	assert.Nil(t, saved.LicenseDocumentURL)
	assert.Nil(t, saved.VehicleRegistrationURL)
	assert.Nil(t, saved.ProfilePhotoURL)
}

func TestRegister_OneFailedUploadOfFour(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	store := &fakeStorage{failOn: map[string]bool{"license.pdf": true}}
	svc := &DefaultDriverService{Repo: repo, Storage: store}

	files := []models.UploadedFile{
		{Field: models.DocIDDocument, Name: "id.png", Content: []byte("a")},
		{Field: models.DocLicenseDocument, Name: "license.pdf", Content: []byte("b")},
		{Field: models.DocVehicleRegistration, Name: "vehicle.jpg", Content: []byte("c")},
		{Field: models.DocProfilePhoto, Name: "photo.jpg", Content: []byte("d")},
	}

	reg, err := svc.Register(context.Background(), validDriverRequest(), files, testMeta())
	require.NoError(t, err, "a failed upload is never fatal")

	// Uploads run sequentially in part order, failure included.
	assert.Equal(t, []string{"id.png", "license.pdf", "vehicle.jpg", "photo.jpg"}, store.calls)

	require.NotNil(t, reg.IDDocumentURL)
	assert.Equal(t, "https://cdn.example.com/driver-documents/id.png", *reg.IDDocumentURL)
	assert.Nil(t, reg.LicenseDocumentURL, "failed upload stores null")
	assert.NotNil(t, reg.VehicleRegistrationURL)
	assert.NotNil(t, reg.ProfilePhotoURL)
}

func TestRegister_NilStorageDegradesToNullURLs(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	svc := &DefaultDriverService{Repo: repo}

	files := []models.UploadedFile{
		{Field: models.DocIDDocument, Name: "id.png", Content: []byte("a")},
	}
	reg, err := svc.Register(context.Background(), validDriverRequest(), files, testMeta())
	require.NoError(t, err)
	assert.Nil(t, reg.IDDocumentURL)
}

func TestRegister_UnknownDocumentFieldIgnored(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	store := &fakeStorage{}
	svc := &DefaultDriverService{Repo: repo, Storage: store}

	files := []models.UploadedFile{
		{Field: "resume", Name: "cv.pdf", Content: []byte("x")},
	}
	_, err := svc.Register(context.Background(), validDriverRequest(), files, testMeta())
	require.NoError(t, err)
	assert.Empty(t, store.calls)
}

func TestRegister_InsertFailure(t *testing.T) {
	repo := &fakeRegistrationRepo{err: errors.New("write concern timeout")}
	mailer := &fakeMailer{}
	svc := &DefaultDriverService{Repo: repo, Mailer: mailer}

	_, err := svc.Register(context.Background(), validDriverRequest(), nil, testMeta())
	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "Failed to save registration. Please try again.", pErr.Message)
	assert.Zero(t, mailer.driverCalls, "no notification when the insert fails")
}

func TestRegister_MailerFailureIsNotFatal(t *testing.T) {
	repo := &fakeRegistrationRepo{}
	mailer := &fakeMailer{err: errors.New("resend unavailable")}
	svc := &DefaultDriverService{Repo: repo, Mailer: mailer}

	reg, err := svc.Register(context.Background(), validDriverRequest(), nil, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "reg-1", reg.ID)
	assert.Equal(t, 1, mailer.driverCalls)
}

func TestSubmit_PersistsContactMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeMailer{}
	svc := &DefaultContactService{Repo: repo, Mailer: mailer}

	req := models.ContactRequest{
		Name:    "Sara Omar",
		Email:   "Sara@Example.com",
		Phone:   "00966512345678",
		Message: "Please call me about shipping rates",
	}
	msg, err := svc.Submit(context.Background(), req, testMeta())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, "sara@example.com", saved.Email)
	assert.Equal(t, "+966512345678", saved.Phone)
	assert.Equal(t, "new", saved.Status)

	assert.Equal(t, "contact-1", msg.ID)
	assert.Equal(t, 1, mailer.contactCalls)
}

func TestSubmit_PhoneIsOptionalButMustBeValid(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := &DefaultContactService{Repo: repo}

	req := models.ContactRequest{
		Name:    "Sara Omar",
		Email:   "sara@example.com",
		Message: "Please call me about shipping rates",
	}
	_, err := svc.Submit(context.Background(), req, testMeta())
	require.NoError(t, err)
	assert.Empty(t, repo.created[0].Phone)

	req.Phone = "12345"
	_, err = svc.Submit(context.Background(), req, testMeta())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid Saudi phone number format", vErr.Message)
}

func TestSubmit_MissingFields(t *testing.T) {
	svc := &DefaultContactService{Repo: &fakeContactRepo{}}

	_, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Sara"}, testMeta())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Missing required fields: name, email, message", vErr.Message)
}

func TestSubmit_AliasFieldsCoalesce(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := &DefaultContactService{Repo: repo}

	req := models.ContactRequest{
		FullName: "Sara Omar",
		Email:    "sara@example.com",
		Notes:    "Please call me about shipping rates",
	}
	_, err := svc.Submit(context.Background(), req, testMeta())
	require.NoError(t, err)
	assert.Equal(t, "Sara Omar", repo.created[0].Name)
	assert.Equal(t, "Please call me about shipping rates", repo.created[0].Message)
}

func TestSubmit_InsertFailure(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("connection reset")}
	mailer := &fakeMailer{}
	svc := &DefaultContactService{Repo: repo, Mailer: mailer}

	_, err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Sara Omar",
		Email:   "sara@example.com",
		Message: "Please call me about shipping rates",
	}, testMeta())

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "Failed to save message. Please try again.", pErr.Message)
	assert.Zero(t, mailer.contactCalls)
}
