package booking

import (
	"fmt"
	"time"

	"afspraak/config"
)

// OfficeHours is the per-weekday slot catalogue policy. All values are
// minutes since midnight. Saturdays and Sundays have no catalogue at all.
type OfficeHours struct {
	Open            int
	CloseByWeekday  map[time.Weekday]int
	BreakStart      int
	BreakEnd        int
	Interval        int
	DefaultDuration int
	MaxDuration     int
}

// HoursFromConfig builds the office-hours policy from AppConfig.
func HoursFromConfig() (OfficeHours, error) {
	open, err := ParseClock(config.AppConfig.OfficeOpen)
	if err != nil {
		return OfficeHours{}, fmt.Errorf("OFFICE_OPEN: %w", err)
	}
	close_, err := ParseClock(config.AppConfig.OfficeClose)
	if err != nil {
		return OfficeHours{}, fmt.Errorf("OFFICE_CLOSE: %w", err)
	}
	closeFri, err := ParseClock(config.AppConfig.OfficeCloseFriday)
	if err != nil {
		return OfficeHours{}, fmt.Errorf("OFFICE_CLOSE_FRIDAY: %w", err)
	}
	breakStart, err := ParseClock(config.AppConfig.BreakStart)
	if err != nil {
		return OfficeHours{}, fmt.Errorf("BREAK_START: %w", err)
	}
	breakEnd, err := ParseClock(config.AppConfig.BreakEnd)
	if err != nil {
		return OfficeHours{}, fmt.Errorf("BREAK_END: %w", err)
	}

	h := OfficeHours{
		Open: open,
		CloseByWeekday: map[time.Weekday]int{
			time.Monday:    close_,
			time.Tuesday:   close_,
			time.Wednesday: close_,
			time.Thursday:  close_,
			time.Friday:    closeFri,
		},
		BreakStart:      breakStart,
		BreakEnd:        breakEnd,
		Interval:        config.AppConfig.SlotIntervalMinutes,
		DefaultDuration: config.AppConfig.DefaultDurationMins,
		MaxDuration:     config.AppConfig.MaxDurationMins,
	}
	if h.Interval <= 0 || h.DefaultDuration <= 0 {
		return OfficeHours{}, fmt.Errorf("slot interval and default duration must be positive")
	}
	return h, nil
}

// ClosingTime returns the closing minute for the given weekday. The second
// return is false on days with no office hours.
func (h OfficeHours) ClosingTime(d time.Weekday) (int, bool) {
	c, ok := h.CloseByWeekday[d]
	return c, ok
}

// Catalogue lists the canonical slot start times for a weekday in ascending
// order, skipping the break window. The final tick equals the closing time:
// it marks close of business and is never offerable, since any positive
// duration pushes its end past the close.
func (h OfficeHours) Catalogue(d time.Weekday) []int {
	close_, ok := h.ClosingTime(d)
	if !ok {
		return nil
	}
	var ticks []int
	for t := h.Open; t <= close_; t += h.Interval {
		if t >= h.BreakStart && t < h.BreakEnd {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// IsCanonical reports whether start is one of the weekday's catalogue ticks.
func (h OfficeHours) IsCanonical(d time.Weekday, start int) bool {
	for _, t := range h.Catalogue(d) {
		if t == start {
			return true
		}
	}
	return false
}
