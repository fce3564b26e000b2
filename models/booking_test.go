package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes_UnmarshalJSON(t *testing.T) {
	var b Booking

	// Clients send durations as numbers or as strings; both decode.
	require.NoError(t, json.Unmarshal([]byte(`{"durationMinutes": 60}`), &b))
	assert.Equal(t, Minutes(60), b.DurationMinutes)

	require.NoError(t, json.Unmarshal([]byte(`{"durationMinutes": "45"}`), &b))
	assert.Equal(t, Minutes(45), b.DurationMinutes)

	require.NoError(t, json.Unmarshal([]byte(`{"durationMinutes": " 30 "}`), &b))
	assert.Equal(t, Minutes(30), b.DurationMinutes)

	require.NoError(t, json.Unmarshal([]byte(`{"durationMinutes": null}`), &b))
	assert.Equal(t, Minutes(0), b.DurationMinutes)

	require.NoError(t, json.Unmarshal([]byte(`{"durationMinutes": ""}`), &b))
	assert.Equal(t, Minutes(0), b.DurationMinutes)

	assert.Error(t, json.Unmarshal([]byte(`{"durationMinutes": "soon"}`), &b))
	assert.Error(t, json.Unmarshal([]byte(`{"durationMinutes": true}`), &b))
}

func TestBooking_JSONFieldNames(t *testing.T) {
	raw := `{
		"date": "2025-06-03",
		"startTime": "10:00",
		"endTime": "10:30",
		"durationMinutes": 30,
		"contact": {"name": "Jan", "email": "jan@example.com", "phone": "0612345678"},
		"appointmentType": "intake",
		"notes": "first visit"
	}`
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, "2025-06-03", b.Date)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, "10:30", b.EndTime)
	assert.Equal(t, "Jan", b.Contact.Name)
	assert.Equal(t, "intake", b.AppointmentType)
}
