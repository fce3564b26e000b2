package models

import "time"

// BookingSession holds one visitor's in-progress selection. It lives in
// Redis with a short TTL and is never persisted; a date without a time is a
// legal intermediate state.
type BookingSession struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	DurationMinutes Minutes     `json:"durationMinutes"`
	SelectedStart   string      `json:"selectedStart,omitempty"` // "HH:MM"
	Offers          []SlotOffer `json:"offers"`
	CreatedAt       time.Time   `json:"createdAt"`
	LastUpdatedAt   time.Time   `json:"lastUpdatedAt"`
}
