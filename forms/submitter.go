package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// State is the submitter lifecycle: idle, then submitting while a request is
// in flight, then back to idle once the outcome has been rendered.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not settled yet.
var ErrSubmitInFlight = errors.New("forms: submission already in flight")

// BannerKind distinguishes success and error banners.
type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerError
)

// Banner is the transient outcome message shown after a submission settles.
type Banner struct {
	Kind    BannerKind
	Message string
}

// BannerSink renders banners. At most one banner is visible at a time: the
// submitter always calls Clear before Show, and again when the banner
// expires.
type BannerSink interface {
	Show(Banner)
	Clear()
}

// SubmitControl is the submit button: disabled while a request is in flight.
type SubmitControl interface {
	SetEnabled(enabled bool)
}

// Attachment is one file part sent with a multipart submission.
type Attachment struct {
	Field    string
	FileName string
	Content  []byte
}

// SubmitResult mirrors the intake endpoint response body.
type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// SubmitterConfig wires one form to one intake endpoint. Each form is
// registered explicitly with its own rule set; nothing is discovered from
// ambient state.
type SubmitterConfig struct {
	Endpoint   string
	Rules      RuleSet
	Translator *Translator
	Client     *http.Client
	Sink       BannerSink
	Control    SubmitControl
	// OnReset is invoked after a successful submission, before the success
	// banner is shown.
	OnReset func()
	// Banner lifetimes. Zero values get the defaults (7s success, 8s error).
	SuccessTTL time.Duration
	ErrorTTL   time.Duration
}

// Submitter validates and submits one form. Submit transitions
// idle → submitting → idle; the control is re-enabled on every path,
// including transport failure.
type Submitter struct {
	cfg SubmitterConfig

	mu    sync.Mutex
	state State
	timer *time.Timer
}

// NewSubmitter builds a Submitter, applying defaults for the optional
// pieces of the config.
func NewSubmitter(cfg SubmitterConfig) *Submitter {
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Translator == nil {
		cfg.Translator = NewTranslator(nil)
	}
	if cfg.SuccessTTL == 0 {
		cfg.SuccessTTL = 7 * time.Second
	}
	if cfg.ErrorTTL == 0 {
		cfg.ErrorTTL = 8 * time.Second
	}
	return &Submitter{cfg: cfg}
}

// State returns the current lifecycle state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit validates values and, if every rule passes, posts the form to the
// endpoint. Validation failures are returned without any state change and
// without contacting the server. A non-nil error is returned only for
// transport failures; HTTP-level rejections are rendered as error banners.
func (s *Submitter) Submit(ctx context.Context, values map[string]FieldValue, attachments []Attachment) ([]FieldError, error) {
	if errs := s.cfg.Rules.Validate(values, s.cfg.Translator); len(errs) > 0 {
		return errs, nil
	}

	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	if s.cfg.Control != nil {
		s.cfg.Control.SetEnabled(false)
	}
	defer func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		if s.cfg.Control != nil {
			s.cfg.Control.SetEnabled(true)
		}
	}()

	result, err := s.post(ctx, values, attachments)
	if err != nil {
		s.showBanner(Banner{Kind: BannerError, Message: s.cfg.Translator.T(MsgNetworkError)})
		return nil, err
	}

	if result.Success {
		if s.cfg.OnReset != nil {
			s.cfg.OnReset()
		}
		msg := result.Message
		if msg == "" {
			msg = s.cfg.Translator.T(MsgDriverSuccess)
		}
		s.showBanner(Banner{Kind: BannerSuccess, Message: msg})
		return nil, nil
	}

	msg := result.Error
	if msg == "" {
		msg = s.cfg.Translator.T(MsgSubmitError)
	}
	s.showBanner(Banner{Kind: BannerError, Message: msg})
	return nil, nil
}

func (s *Submitter) post(ctx context.Context, values map[string]FieldValue, attachments []Attachment) (*SubmitResult, error) {
	var body io.Reader
	var contentType string

	if len(attachments) > 0 {
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for name, v := range values {
			if err := w.WriteField(name, encodeField(name, v)); err != nil {
				return nil, fmt.Errorf("forms: encode field %s: %w", name, err)
			}
		}
		for _, a := range attachments {
			part, err := w.CreateFormFile(a.Field, a.FileName)
			if err != nil {
				return nil, fmt.Errorf("forms: encode attachment %s: %w", a.Field, err)
			}
			if _, err := part.Write(a.Content); err != nil {
				return nil, fmt.Errorf("forms: write attachment %s: %w", a.Field, err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		body = buf
		contentType = w.FormDataContentType()
	} else {
		payload := make(map[string]any, len(values))
		for name, v := range values {
			switch v.Kind {
			case KindCheckbox:
				payload[name] = v.Checked
			default:
				payload[name] = encodeField(name, v)
			}
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.cfg.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// An unparseable body from the server is treated like any other
		// server-side rejection, not a transport failure.
		result = SubmitResult{}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Success = false
	}
	return &result, nil
}

// encodeField renders a field value for the wire. Phone fields are sent in
// E.164 form, matching what the server stores.
func encodeField(name string, v FieldValue) string {
	if v.Kind == KindCheckbox {
		if v.Checked {
			return "true"
		}
		return "false"
	}
	text := strings.TrimSpace(v.Text)
	if name == "phone" || name == "sponsor_phone" {
		if local := NormalizeSaudiPhone(text); IsValidSaudiMobile(local) {
			return FormatE164(local)
		}
	}
	return text
}

// showBanner replaces any visible banner and arms its auto-dismiss timer.
func (s *Submitter) showBanner(b Banner) {
	if s.cfg.Sink == nil {
		return
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.cfg.Sink.Clear()
	s.cfg.Sink.Show(b)

	ttl := s.cfg.SuccessTTL
	if b.Kind == BannerError {
		ttl = s.cfg.ErrorTTL
	}

	s.mu.Lock()
	s.timer = time.AfterFunc(ttl, s.cfg.Sink.Clear)
	s.mu.Unlock()
}
