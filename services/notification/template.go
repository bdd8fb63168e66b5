package notification

import (
	"html/template"
	"strings"
	"time"

	"marassi/models"
)

// The notification bodies follow the site's transactional email layout:
// branded header, one boxed block per field, a highlighted submission ID and
// a reply button. User-provided text is escaped by html/template.

const emailStyle = `
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #13164f 0%, #1e3a8a 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border: 1px solid #ddd; }
    .field { margin-bottom: 20px; }
    .label { font-weight: bold; color: #13164f; margin-bottom: 5px; }
    .value { background: white; padding: 10px; border-radius: 4px; border: 1px solid #e0e0e0; }
    .message-box { background: white; padding: 15px; border-radius: 4px; border-left: 4px solid #13164f; min-height: 100px; }
    .footer { background: #f0f0f0; padding: 15px; text-align: center; border-radius: 0 0 8px 8px; font-size: 12px; color: #666; }
    .button { display: inline-block; background: #13164f; color: #FFFFFF; padding: 12px 24px; text-decoration: none; border-radius: 4px; margin-top: 10px; }
    .highlight { background: #fef3c7; padding: 2px 6px; border-radius: 3px; }
`

var contactEmailTmpl = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">New Contact Form Message</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">MARASSI Transport &amp; Logistics</p>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value"><a href="mailto:{{.Email}}" style="color: #13164f;">{{.Email}}</a></div>
      </div>
      {{if .Phone}}<div class="field">
        <div class="label">Phone:</div>
        <div class="value"><a href="tel:{{.Phone}}" style="color: #13164f;">{{.Phone}}</a></div>
      </div>{{end}}
      <div class="field">
        <div class="label">Message:</div>
        <div class="message-box">{{.MessageHTML}}</div>
      </div>
      <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd;">
        <p style="margin: 0 0 10px 0; color: #666;"><strong>Message ID:</strong> <span class="highlight">{{.ID}}</span></p>
        <p style="margin: 0 0 10px 0; color: #666;"><strong>Received:</strong> {{.Received}} (Riyadh Time)</p>
        <a href="mailto:{{.Email}}?subject=Re: Your inquiry to MARASSI Logistics" class="button">Reply to {{.Name}}</a>
      </div>
    </div>
    <div class="footer">
      <p style="margin: 0;">This is an automated notification from your website contact form.</p>
      <p style="margin: 5px 0 0 0;">To reply, click the button above or email directly to: {{.Email}}</p>
    </div>
  </div>
</body>
</html>`))

var driverEmailTmpl = template.Must(template.New("driver").Parse(`<!DOCTYPE html>
<html>
<head><style>` + emailStyle + `</style></head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0;">New Driver Registration</h1>
      <p style="margin: 10px 0 0 0; opacity: 0.9;">MARASSI Transport &amp; Logistics</p>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Driver Name:</div>
        <div class="value"><strong>{{.FullName}}</strong></div>
      </div>
      <div class="field">
        <div class="label">Phone Number:</div>
        <div class="value"><a href="tel:{{.Phone}}" style="color: #13164f;">{{.Phone}}</a></div>
      </div>
      <div class="field">
        <div class="label">Email Address:</div>
        <div class="value"><a href="mailto:{{.Email}}" style="color: #13164f;">{{.Email}}</a></div>
      </div>
      {{if .City}}<div class="field">
        <div class="label">City:</div>
        <div class="value">{{.City}}</div>
      </div>{{end}}
      {{if .VehicleType}}<div class="field">
        <div class="label">Vehicle Type:</div>
        <div class="value">{{.VehicleType}}</div>
      </div>{{end}}
      <div class="field">
        <div class="label">Introduction / Why Join:</div>
        <div class="message-box">{{.MessageHTML}}</div>
      </div>
      {{if .Documents}}<div class="field">
        <div class="label">Uploaded Documents:</div>
        <div class="value">{{range .Documents}}<a href="{{.URL}}" style="color: #13164f; display: block;">{{.Label}}</a>{{end}}</div>
      </div>{{end}}
      <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd;">
        <p style="margin: 0 0 10px 0; color: #666;"><strong>Registration ID:</strong> <span class="highlight">{{.ID}}</span></p>
        <p style="margin: 0 0 10px 0; color: #666;"><strong>Submitted:</strong> {{.Received}} (Riyadh Time)</p>
        <div style="margin-top: 15px;">
          <a href="mailto:{{.Email}}?subject=Re: Your driver application with MARASSI Logistics" class="button">Contact {{.FullName}}</a>
          <a href="tel:{{.Phone}}" class="button" style="background: #059669; margin-left: 10px;">Call Driver</a>
        </div>
      </div>
    </div>
    <div class="footer">
      <p style="margin: 0;"><strong>Driver Registration System</strong></p>
      <p style="margin: 5px 0 0 0;">This driver wants to join the MARASSI team. Please review and contact them soon!</p>
    </div>
  </div>
</body>
</html>`))

type documentLink struct {
	Label string
	URL   string
}

var riyadh = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Riyadh"); err == nil {
		return loc
	}
	return time.FixedZone("AST", 3*60*60)
}()

func receivedAt(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(riyadh).Format("Jan 2, 2006 3:04 PM")
}

// messageHTML escapes the free-text message and preserves its line breaks.
func messageHTML(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

func renderContactEmail(msg *models.ContactMessage) (string, error) {
	var buf strings.Builder
	err := contactEmailTmpl.Execute(&buf, struct {
		*models.ContactMessage
		MessageHTML template.HTML
		Received    string
	}{msg, messageHTML(msg.Message), receivedAt(msg.CreatedAt)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderDriverEmail(reg *models.DriverRegistration) (string, error) {
	var docs []documentLink
	for _, d := range []struct {
		label string
		url   *string
	}{
		{"ID Document", reg.IDDocumentURL},
		{"License", reg.LicenseDocumentURL},
		{"Vehicle Registration", reg.VehicleRegistrationURL},
		{"Profile Photo", reg.ProfilePhotoURL},
	} {
		if d.url != nil {
			docs = append(docs, documentLink{Label: d.label, URL: *d.url})
		}
	}

	var buf strings.Builder
	err := driverEmailTmpl.Execute(&buf, struct {
		*models.DriverRegistration
		MessageHTML template.HTML
		Received    string
		Documents   []documentLink
	}{reg, messageHTML(reg.Message), receivedAt(reg.CreatedAt), docs})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
