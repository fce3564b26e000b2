package booking

import (
	"time"

	"afspraak/models"
)

// The availability engine: pure functions from a (bookings, blackouts)
// snapshot to slot verdicts. Verdicts are only as fresh as the snapshot
// passed in, so confirmation re-runs the same checks against a fresh read.

// ruleCoversDate reports whether date falls within the rule's inclusive
// date range. DateLayout strings compare correctly as plain strings.
func ruleCoversDate(rule models.BlackoutRule, date string) bool {
	return rule.StartDate <= date && date <= rule.EndDate
}

// IsDateBlocked reports whether the entire date is blocked by a rule with no
// time bounds.
func IsDateBlocked(date string, rules []models.BlackoutRule) bool {
	for _, rule := range rules {
		if ruleCoversDate(rule, date) && rule.StartTime == "" && rule.EndTime == "" {
			return true
		}
	}
	return false
}

// IsTimeBlocked reports whether any rule blocks the given minute on the
// given date. Rules combine with OR; they are never merged. A rule that
// fails to parse blocks nothing.
func IsTimeBlocked(date string, minute int, rules []models.BlackoutRule) bool {
	for _, rule := range rules {
		if !ruleCoversDate(rule, date) {
			continue
		}
		if rule.StartTime == "" && rule.EndTime == "" {
			return true
		}
		start, end := -1, -1
		if rule.StartTime != "" {
			m, err := ParseClock(rule.StartTime)
			if err != nil {
				continue
			}
			start = m
		}
		if rule.EndTime != "" {
			m, err := ParseClock(rule.EndTime)
			if err != nil {
				continue
			}
			end = m
		}
		switch {
		case start >= 0 && end >= 0:
			if start <= minute && minute < end {
				return true
			}
		case start >= 0:
			if minute >= start {
				return true
			}
		case end >= 0:
			// End-only rules are rejected at creation; if one is ever read
			// back from the store it blocks from the start of the day.
			if minute < end {
				return true
			}
		}
	}
	return false
}

// Overlaps reports whether booking b overlaps the half-open interval
// [start, end) in minutes. A booking without an explicit end is assigned
// its duration, or defaultDuration when that is missing too. Zero-gap
// adjacency is not an overlap.
func Overlaps(b models.Booking, start, end, defaultDuration int) bool {
	bStart, err := ParseClock(b.StartTime)
	if err != nil {
		return false
	}
	bEnd := bStart + defaultDuration
	if b.EndTime != "" {
		if m, err := ParseClock(b.EndTime); err == nil {
			bEnd = m
		}
	} else if b.DurationMinutes > 0 {
		bEnd = bStart + int(b.DurationMinutes)
	}
	return start < bEnd && end > bStart
}

// Engine evaluates slot availability against an office-hours policy. It is
// stateless; every call works purely on its arguments.
type Engine struct {
	Hours OfficeHours
}

// CheckSlot answers whether a slot starting at the given minute with the
// given duration is offerable on date, and if not, why. The reason reflects
// the first failing check; the verdict itself is the conjunction of all of
// them, so check order never changes which slots are offerable.
func (e Engine) CheckSlot(date string, start, duration int, bookings []models.Booking, rules []models.BlackoutRule, now time.Time) (bool, string) {
	day, err := ParseDate(date)
	if err != nil {
		return false, models.ReasonOutsideHours
	}
	weekday := day.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false, models.ReasonWeekend
	}

	today := Midnight(now)
	if day.Before(today) {
		return false, models.ReasonPast
	}
	if day.Equal(today) && start < minuteOfDay(now) {
		return false, models.ReasonPast
	}

	close_, ok := e.Hours.ClosingTime(weekday)
	if !ok || start < e.Hours.Open || start+duration > close_ {
		return false, models.ReasonOutsideHours
	}

	if IsTimeBlocked(date, start, rules) {
		return false, models.ReasonBlocked
	}

	end := start + duration
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		if Overlaps(b, start, end, e.Hours.DefaultDuration) {
			return false, models.ReasonOverlap
		}
	}

	return true, ""
}

// ListOffers produces one offer per canonical start time for the date's
// weekday, in catalogue (ascending) order. Weekends have an empty catalogue
// and therefore an empty offer list.
func (e Engine) ListOffers(date string, duration int, bookings []models.Booking, rules []models.BlackoutRule, now time.Time) []models.SlotOffer {
	weekday, err := Weekday(date)
	if err != nil {
		return nil
	}

	ticks := e.Hours.Catalogue(weekday)
	offers := make([]models.SlotOffer, 0, len(ticks))
	for _, start := range ticks {
		offerable, reason := e.CheckSlot(date, start, duration, bookings, rules, now)
		offers = append(offers, models.SlotOffer{
			Date:      date,
			StartTime: FormatClock(start),
			EndTime:   FormatClock(AddMinutes(start, duration)),
			Offerable: offerable,
			Reason:    reason,
		})
	}
	return offers
}

// MonthAvailability flags each day of a month as selectable or not for the
// calendar grid. Per-slot verdicts are a second step once a day is picked;
// this pass only rules out days that can never offer anything.
func (e Engine) MonthAvailability(year int, month time.Month, rules []models.BlackoutRule, now time.Time) []models.DayAvailability {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	today := Midnight(now)

	var days []models.DayAvailability
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		entry := models.DayAvailability{Date: date, Selectable: true}
		switch {
		case d.Before(today):
			entry.Selectable = false
			entry.Reason = models.ReasonPast
		case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
			entry.Selectable = false
			entry.Reason = models.ReasonWeekend
		case IsDateBlocked(date, rules):
			entry.Selectable = false
			entry.Reason = models.ReasonBlocked
		}
		days = append(days, entry)
	}
	return days
}
