package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"marassi/forms"
	"marassi/middleware"
	"marassi/models"
	"marassi/services/intake"
	"marassi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeHandler serves the public form-intake endpoints. The translator is
// passed in explicitly; success messages are resolved through it rather than
// through any ambient lookup.
type IntakeHandler struct {
	Contact    intake.ContactService
	Driver     intake.DriverService
	Translator *forms.Translator
}

// NewIntakeHandler creates a new IntakeHandler instance.
func NewIntakeHandler(contact intake.ContactService, driver intake.DriverService, tr *forms.Translator) *IntakeHandler {
	if tr == nil {
		tr = forms.NewTranslator(nil)
	}
	return &IntakeHandler{Contact: contact, Driver: driver, Translator: tr}
}

// SubmitContactHandler handles POST /api/contact.
func (h *IntakeHandler) SubmitContactHandler(c *gin.Context) {
	meta := middleware.ClientMeta(c)

	var req models.ContactRequest
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid form data")
			return
		}
		req = contactRequestFromForm(form)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	msg, err := h.Contact.Submit(c.Request.Context(), req, meta)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.Translator.T(forms.MsgContactSuccess),
		"id":      msg.ID,
	})
}

// RegisterDriverHandler handles POST /api/drivers/register, accepting either
// JSON or multipart form data with up to four document parts.
func (h *IntakeHandler) RegisterDriverHandler(c *gin.Context) {
	logger := getLogger(c)
	meta := middleware.ClientMeta(c)

	var req models.DriverRegistrationRequest
	var files []models.UploadedFile

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid form data")
			return
		}
		req = driverRequestFromForm(form)
		files = bufferDocumentFiles(form, logger)
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	reg, err := h.Driver.Register(c.Request.Context(), req, files, meta)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.Translator.T(forms.MsgDriverSuccess),
		"id":      reg.ID,
	})
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == "multipart/form-data"
}

func contactRequestFromForm(form *multipart.Form) models.ContactRequest {
	return models.ContactRequest{
		Name:     formValue(form, "name"),
		FullName: formValue(form, "full_name"),
		Email:    formValue(form, "email"),
		Phone:    formValue(form, "phone"),
		Message:  formValue(form, "message"),
		Notes:    formValue(form, "notes"),
	}
}

func driverRequestFromForm(form *multipart.Form) models.DriverRegistrationRequest {
	return models.DriverRegistrationRequest{
		Name:         formValue(form, "name"),
		FullName:     formValue(form, "full_name"),
		Phone:        formValue(form, "phone"),
		PhoneLocal:   formValue(form, "phone_local"),
		PhoneE164:    formValue(form, "phone_e164"),
		Email:        formValue(form, "email"),
		Message:      formValue(form, "message"),
		Notes:        formValue(form, "notes"),
		AgreeTerms:   parseFormBool(formValue(form, "agree_terms")),
		SponsorPhone: formValue(form, "sponsor_phone"),
		City:         formValue(form, "city"),
		VehicleType:  formValue(form, "vehicle_type"),
		IDNumber:     formValue(form, "id_number"),
		Nationality:  formValue(form, "nationality"),
	}
}

// bufferDocumentFiles reads each recognized document part fully into memory,
// keyed by field name. A part that cannot be read is logged and skipped; its
// URL column stays null.
func bufferDocumentFiles(form *multipart.Form, logger *zap.Logger) []models.UploadedFile {
	var files []models.UploadedFile
	for _, field := range models.DriverDocumentFields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]

		f, err := fh.Open()
		if err != nil {
			logger.Warn("failed to open uploaded document", zap.String("field", field), zap.Error(err))
			continue
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			logger.Warn("failed to read uploaded document", zap.String("field", field), zap.Error(err))
			continue
		}

		files = append(files, models.UploadedFile{
			Field:   field,
			Name:    fh.Filename,
			Content: content,
		})
	}
	return files
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func parseFormBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// respondServiceError maps intake service errors to HTTP statuses:
// validation → 400, persistence → 500, anything else → generic 500.
func respondServiceError(c *gin.Context, err error) {
	var vErr *intake.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, vErr.Message)
		return
	}
	var pErr *intake.PersistenceError
	if errors.As(err, &pErr) {
		utils.JSONError(c, http.StatusInternalServerError, pErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
}
