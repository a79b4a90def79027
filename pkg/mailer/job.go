package mailer

import "time"

// ContactNotification is the JSON payload placed on the RabbitMQ queue when a
// visitor submits the contact form. The worker renders and delivers it to the
// site owner.
type ContactNotification struct {
	To         string    `json:"to"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Service    string    `json:"service"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
