package models

import "time"

// BlackoutRule blocks bookings over an inclusive date range, optionally
// narrowed to a time window on each date in range:
//
//   - no times set:       the whole of every date in range is blocked
//   - both times set:     [StartTime, EndTime) is blocked on each date
//   - only StartTime set: StartTime to end of day is blocked
//
// EndTime without StartTime is rejected at creation. Rules are immutable;
// corrections are delete-and-recreate.
type BlackoutRule struct {
	ID        string    `bson:"id" json:"id"`
	StartDate string    `bson:"start_date" json:"startDate"` // "2006-01-02"
	EndDate   string    `bson:"end_date" json:"endDate"`     // inclusive, >= StartDate
	StartTime string    `bson:"start_time,omitempty" json:"startTime,omitempty"` // "HH:MM"
	EndTime   string    `bson:"end_time,omitempty" json:"endTime,omitempty"`     // "HH:MM"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
