package booking

import (
	"testing"
	"time"

	"afspraak/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-02, 08:00 local time.
func testNow() time.Time {
	return time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local)
}

func testEngine() Engine {
	return Engine{Hours: testHours()}
}

func booked(date, start, end string) models.Booking {
	return models.Booking{Date: date, StartTime: start, EndTime: end}
}

func TestCheckSlot_Offerable(t *testing.T) {
	e := testEngine()
	ok, reason := e.CheckSlot("2025-06-03", 10*60, 30, nil, nil, testNow())
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestCheckSlot_AdjacencyIsNotOverlap(t *testing.T) {
	e := testEngine()
	bookings := []models.Booking{booked("2025-06-03", "09:00", "09:30")}

	// Intervals are half-open: a 09:00-09:30 booking leaves 09:30 free.
	ok, _ := e.CheckSlot("2025-06-03", 9*60+30, 30, bookings, nil, testNow())
	assert.True(t, ok)

	ok, reason := e.CheckSlot("2025-06-03", 9*60, 30, bookings, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonOverlap, reason)
}

func TestCheckSlot_LongDurationOverlapsLaterBooking(t *testing.T) {
	e := testEngine()
	bookings := []models.Booking{booked("2025-06-03", "10:00", "10:30")}

	// A 60-minute slot at 09:45 runs until 10:45 and collides with 10:00.
	ok, reason := e.CheckSlot("2025-06-03", 9*60+45, 60, bookings, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonOverlap, reason)

	// The same start with 15 minutes fits in front of it.
	ok, _ = e.CheckSlot("2025-06-03", 9*60+45, 15, bookings, nil, testNow())
	assert.True(t, ok)
}

func TestCheckSlot_BookingWithoutEndUsesDuration(t *testing.T) {
	e := testEngine()
	bookings := []models.Booking{{Date: "2025-06-03", StartTime: "10:00", DurationMinutes: 60}}

	ok, reason := e.CheckSlot("2025-06-03", 10*60+30, 30, bookings, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonOverlap, reason)

	// Missing end and duration both: the booking occupies one default slot.
	bookings = []models.Booking{{Date: "2025-06-03", StartTime: "10:00"}}
	ok, _ = e.CheckSlot("2025-06-03", 10*60+30, 30, bookings, nil, testNow())
	assert.True(t, ok)
}

func TestCheckSlot_Weekend(t *testing.T) {
	e := testEngine()
	ok, reason := e.CheckSlot("2025-06-07", 10*60, 30, nil, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonWeekend, reason)
}

func TestCheckSlot_Past(t *testing.T) {
	e := testEngine()

	// Earlier calendar day.
	ok, reason := e.CheckSlot("2025-05-30", 10*60, 30, nil, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonPast, reason)

	// Same day: now is 08:00, so 09:00 is still fine but nothing before it.
	ok, _ = e.CheckSlot("2025-06-02", 9*60, 30, nil, nil, testNow())
	assert.True(t, ok)

	later := time.Date(2025, 6, 2, 10, 15, 0, 0, time.Local)
	ok, reason = e.CheckSlot("2025-06-02", 10*60, 30, nil, nil, later)
	assert.False(t, ok)
	assert.Equal(t, models.ReasonPast, reason)
}

func TestCheckSlot_OutsideHours(t *testing.T) {
	e := testEngine()

	// Friday closes at 14:30; a 30-minute slot starting then runs past close.
	ok, reason := e.CheckSlot("2025-06-06", 14*60+30, 30, nil, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonOutsideHours, reason)

	// The same start time on a Tuesday is fine.
	ok, _ = e.CheckSlot("2025-06-03", 14*60+30, 30, nil, nil, testNow())
	assert.True(t, ok)

	// Before opening.
	ok, reason = e.CheckSlot("2025-06-03", 8*60, 30, nil, nil, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonOutsideHours, reason)
}

func TestCheckSlot_Blackouts(t *testing.T) {
	e := testEngine()

	fullDay := []models.BlackoutRule{{StartDate: "2025-06-10", EndDate: "2025-06-10"}}
	ok, reason := e.CheckSlot("2025-06-10", 10*60, 30, nil, fullDay, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonBlocked, reason)
	// Adjacent days are untouched.
	ok, _ = e.CheckSlot("2025-06-11", 10*60, 30, nil, fullDay, testNow())
	assert.True(t, ok)

	window := []models.BlackoutRule{{
		StartDate: "2025-06-10", EndDate: "2025-06-10",
		StartTime: "14:00", EndTime: "15:00",
	}}
	// The window is half-open: 14:15 is inside, 15:00 is not.
	ok, reason = e.CheckSlot("2025-06-10", 14*60+15, 30, nil, window, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonBlocked, reason)
	ok, _ = e.CheckSlot("2025-06-10", 15*60, 30, nil, window, testNow())
	assert.True(t, ok)

	lunch := []models.BlackoutRule{{
		StartDate: "2025-06-10", EndDate: "2025-06-10",
		StartTime: "12:00", EndTime: "13:00",
	}}
	for _, duration := range []int{15, 30, 60} {
		ok, reason = e.CheckSlot("2025-06-10", 12*60+15, duration, nil, lunch, testNow())
		assert.False(t, ok)
		assert.Equal(t, models.ReasonBlocked, reason)
	}

	openEnded := []models.BlackoutRule{{
		StartDate: "2025-06-10", EndDate: "2025-06-12",
		StartTime: "13:00",
	}}
	ok, reason = e.CheckSlot("2025-06-11", 13*60, 30, nil, openEnded, testNow())
	assert.False(t, ok)
	assert.Equal(t, models.ReasonBlocked, reason)
	ok, _ = e.CheckSlot("2025-06-11", 11*60, 30, nil, openEnded, testNow())
	assert.True(t, ok)
}

func TestCheckSlot_RulesCombineWithOr(t *testing.T) {
	e := testEngine()
	rules := []models.BlackoutRule{
		{StartDate: "2025-06-10", EndDate: "2025-06-10", StartTime: "09:00", EndTime: "10:00"},
		{StartDate: "2025-06-10", EndDate: "2025-06-10", StartTime: "14:00", EndTime: "15:00"},
	}

	ok, _ := e.CheckSlot("2025-06-10", 9*60+30, 30, nil, rules, testNow())
	assert.False(t, ok)
	ok, _ = e.CheckSlot("2025-06-10", 14*60, 30, nil, rules, testNow())
	assert.False(t, ok)
	// The gap between the rules stays open.
	ok, _ = e.CheckSlot("2025-06-10", 11*60, 30, nil, rules, testNow())
	assert.True(t, ok)
}

func TestCheckSlot_Deterministic(t *testing.T) {
	e := testEngine()
	bookings := []models.Booking{booked("2025-06-03", "10:00", "10:30")}
	rules := []models.BlackoutRule{{StartDate: "2025-06-03", EndDate: "2025-06-03", StartTime: "14:00", EndTime: "15:00"}}
	now := testNow()

	ok1, r1 := e.CheckSlot("2025-06-03", 10*60, 30, bookings, rules, now)
	ok2, r2 := e.CheckSlot("2025-06-03", 10*60, 30, bookings, rules, now)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, r1, r2)
}

func TestListOffers_CoversCatalogue(t *testing.T) {
	e := testEngine()
	offers := e.ListOffers("2025-06-03", 30, nil, nil, testNow())
	require.NotEmpty(t, offers)

	ticks := e.Hours.Catalogue(time.Tuesday)
	require.Len(t, offers, len(ticks))

	// Offers follow the catalogue order and agree with CheckSlot.
	for i, offer := range offers {
		assert.Equal(t, FormatClock(ticks[i]), offer.StartTime)
		ok, reason := e.CheckSlot("2025-06-03", ticks[i], 30, nil, nil, testNow())
		assert.Equal(t, ok, offer.Offerable)
		assert.Equal(t, reason, offer.Reason)
	}

	// The final tick marks closing time and is never offerable.
	last := offers[len(offers)-1]
	assert.Equal(t, "17:00", last.StartTime)
	assert.False(t, last.Offerable)
	assert.Equal(t, models.ReasonOutsideHours, last.Reason)
}

func TestListOffers_Weekend(t *testing.T) {
	e := testEngine()
	offers := e.ListOffers("2025-06-07", 30, nil, nil, testNow())
	assert.Empty(t, offers)
}

func TestMonthAvailability(t *testing.T) {
	e := testEngine()
	rules := []models.BlackoutRule{{StartDate: "2025-06-10", EndDate: "2025-06-11"}}

	days := e.MonthAvailability(2025, time.June, rules, testNow())
	require.Len(t, days, 30)

	byDate := make(map[string]models.DayAvailability, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	assert.False(t, byDate["2025-06-01"].Selectable) // past Sunday
	assert.Equal(t, models.ReasonPast, byDate["2025-06-01"].Reason)

	assert.True(t, byDate["2025-06-02"].Selectable) // today
	assert.True(t, byDate["2025-06-03"].Selectable)

	assert.False(t, byDate["2025-06-07"].Selectable)
	assert.Equal(t, models.ReasonWeekend, byDate["2025-06-07"].Reason)

	assert.False(t, byDate["2025-06-10"].Selectable)
	assert.Equal(t, models.ReasonBlocked, byDate["2025-06-10"].Reason)
	assert.False(t, byDate["2025-06-11"].Selectable)
	assert.True(t, byDate["2025-06-12"].Selectable)
}

func TestMonthAvailability_TimeBoundRuleDoesNotBlockDay(t *testing.T) {
	e := testEngine()
	rules := []models.BlackoutRule{{
		StartDate: "2025-06-10", EndDate: "2025-06-10",
		StartTime: "09:00", EndTime: "17:00",
	}}

	days := e.MonthAvailability(2025, time.June, rules, testNow())
	for _, d := range days {
		if d.Date == "2025-06-10" {
			assert.True(t, d.Selectable)
		}
	}
}
