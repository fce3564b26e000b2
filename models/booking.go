package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Minutes is a duration in whole minutes. Some clients send durations as
// JSON numbers, others as strings; both decode into Minutes.
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*m = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*m = Minutes(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Minutes(n)
	return nil
}

// Contact identifies the visitor who made a booking. Email doubles as the
// self-service cancellation key.
type Contact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Booking is a confirmed appointment. Bookings are immutable once written;
// cancellation deletes the record outright.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Date            string    `bson:"date" json:"date"`                          // "2006-01-02"
	StartTime       string    `bson:"start_time" json:"startTime"`               // "HH:MM"
	EndTime         string    `bson:"end_time,omitempty" json:"endTime,omitempty"` // derived; may be absent
	DurationMinutes Minutes   `bson:"duration_minutes" json:"durationMinutes"`
	Contact         Contact   `bson:"contact" json:"contact"`
	AppointmentType string    `bson:"appointment_type,omitempty" json:"appointmentType,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
