package models

// Reason codes for slots that cannot be offered.
const (
	ReasonOverlap      = "overlap"
	ReasonBlocked      = "blocked"
	ReasonPast         = "past"
	ReasonOutsideHours = "outside-hours"
	ReasonWeekend      = "weekend"
)

// SlotOffer is one candidate (date, start) pair with the engine's verdict.
// Offers are derived values, computed fresh on every request and never stored.
type SlotOffer struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Offerable bool   `json:"offerable"`
	Reason    string `json:"reason,omitempty"`
}

// DayAvailability is a calendar-grid cell: whether the day can be selected
// at all, before any per-slot computation.
type DayAvailability struct {
	Date       string `json:"date"`
	Selectable bool   `json:"selectable"`
	Reason     string `json:"reason,omitempty"`
}
