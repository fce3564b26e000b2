package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHours() OfficeHours {
	return OfficeHours{
		Open: 9 * 60,
		CloseByWeekday: map[time.Weekday]int{
			time.Monday:    17 * 60,
			time.Tuesday:   17 * 60,
			time.Wednesday: 17 * 60,
			time.Thursday:  17 * 60,
			time.Friday:    14*60 + 30,
		},
		BreakStart:      12 * 60,
		BreakEnd:        13 * 60,
		Interval:        30,
		DefaultDuration: 30,
		MaxDuration:     240,
	}
}

func TestCatalogue_Weekday(t *testing.T) {
	h := testHours()
	ticks := h.Catalogue(time.Monday)
	require.NotEmpty(t, ticks)

	// Opens at 09:00, final tick marks the 17:00 close.
	assert.Equal(t, 9*60, ticks[0])
	assert.Equal(t, 17*60, ticks[len(ticks)-1])

	// The lunch hour carries no ticks.
	for _, tick := range ticks {
		assert.False(t, tick >= 12*60 && tick < 13*60, "tick %s falls inside the break", FormatClock(tick))
	}

	// Ascending, canonical 30-minute grid.
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
		assert.Zero(t, ticks[i]%30)
	}
}

func TestCatalogue_Friday(t *testing.T) {
	h := testHours()
	ticks := h.Catalogue(time.Friday)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 14*60+30, ticks[len(ticks)-1])
}

func TestCatalogue_Weekend(t *testing.T) {
	h := testHours()
	assert.Empty(t, h.Catalogue(time.Saturday))
	assert.Empty(t, h.Catalogue(time.Sunday))
}

func TestIsCanonical(t *testing.T) {
	h := testHours()
	assert.True(t, h.IsCanonical(time.Monday, 9*60))
	assert.True(t, h.IsCanonical(time.Monday, 16*60+30))
	assert.False(t, h.IsCanonical(time.Monday, 9*60+15))
	assert.False(t, h.IsCanonical(time.Monday, 12*60))
	assert.False(t, h.IsCanonical(time.Saturday, 9*60))
}

func TestClosingTime(t *testing.T) {
	h := testHours()

	c, ok := h.ClosingTime(time.Tuesday)
	require.True(t, ok)
	assert.Equal(t, 17*60, c)

	c, ok = h.ClosingTime(time.Friday)
	require.True(t, ok)
	assert.Equal(t, 14*60+30, c)

	_, ok = h.ClosingTime(time.Sunday)
	assert.False(t, ok)
}
