package models

import "time"

// Message types.
const (
	MessageTypeContact      = "contact"
	MessageTypeCancellation = "cancellation"
)

// Message is an inbound record for the admin surface: either a contact-form
// submission or the note left behind when a booking is cancelled.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Body      string    `bson:"body,omitempty" json:"body,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`

	// Cancellation fields.
	OriginalBooking *Booking   `bson:"original_booking,omitempty" json:"originalBooking,omitempty"`
	Reason          string     `bson:"reason,omitempty" json:"reason,omitempty"`
	CancelledAt     *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}
