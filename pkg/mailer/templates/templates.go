package templates

import (
	"bytes"
	"html/template"
	"time"
)

// ContactNotificationData feeds the contact notification email.
type ContactNotificationData struct {
	Name       string
	Email      string
	Phone      string
	Service    string
	Message    string
	ReceivedAt time.Time
}

var contactNotification = template.Must(template.New("contact_notification").Parse(`
<html>
  <body style="font-family: sans-serif; color: #1f2937;">
    <h2>New contact message</h2>
    <p><strong>{{ .Name }}</strong> ({{ .Email }}{{ if .Phone }}, {{ .Phone }}{{ end }})
       asked about <strong>{{ .Service }}</strong>.</p>
    <blockquote style="border-left: 3px solid #6366f1; padding-left: 12px; color: #374151;">
      {{ .Message }}
    </blockquote>
    <p style="color: #6b7280; font-size: 12px;">
      Received {{ .ReceivedAt.Format "02 January 2006, 15:04 MST" }}
    </p>
  </body>
</html>
`))

// RenderContactNotification renders the HTML body for a contact notification.
func RenderContactNotification(data ContactNotificationData) (string, error) {
	var buf bytes.Buffer
	if err := contactNotification.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
