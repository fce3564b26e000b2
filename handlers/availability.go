package handlers

import (
	"net/http"
	"strconv"
	"time"

	"afspraak/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the public slot and calendar endpoints.
type AvailabilityHandler struct {
	Service booking.BookingService
}

func NewAvailabilityHandler(svc booking.BookingService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetSlots returns every canonical slot for a day with its offerable flag.
// Query params: date (required, YYYY-MM-DD) and duration (optional, minutes).
func (ah *AvailabilityHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		respondError(c, booking.NewValidationError("date query parameter is required"))
		return
	}

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, booking.NewValidationError("duration must be a whole number of minutes"))
			return
		}
		duration = parsed
	}

	offers, err := ah.Service.ListOffers(c.Request.Context(), date, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": offers})
}

// GetMonth returns per-day selectability for a calendar month.
// Query params: year and month (both required). Defaults to the current
// month when neither is supplied.
func (ah *AvailabilityHandler) GetMonth(c *gin.Context) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, booking.NewValidationError("year must be a whole number"))
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			respondError(c, booking.NewValidationError("month must be between 1 and 12"))
			return
		}
		month = parsed
	}

	days, err := ah.Service.MonthAvailability(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "days": days})
}
