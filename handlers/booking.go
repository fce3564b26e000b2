package handlers

import (
	"net/http"

	"afspraak/models"
	"afspraak/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking books a slot directly, without a staged session.
func (bh *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid booking payload: "+err.Error()))
		return
	}

	id, err := bh.Service.ProposeBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "confirmed"})
}

// CancelBooking cancels the caller's earliest booking matching their email.
func (bh *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Email  string `json:"email"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid cancellation payload: "+err.Error()))
		return
	}
	if input.Email == "" {
		respondError(c, booking.NewValidationError("email is required"))
		return
	}

	cancelled, err := bh.Service.CancelByEmail(c.Request.Context(), input.Email, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	if !cancelled {
		c.JSON(http.StatusOK, gin.H{"cancelled": false, "message": "no booking found for that email"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// InitiateSession starts a staged booking session for a day.
func (bh *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		Date            string `json:"date"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid session payload: "+err.Error()))
		return
	}

	session, err := bh.Service.InitiateSession(c.Request.Context(), input.Date, input.DurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSession selects a start time inside an existing session.
func (bh *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		StartTime string `json:"startTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid session payload: "+err.Error()))
		return
	}

	session, err := bh.Service.UpdateSession(c.Request.Context(), sessionID, input.StartTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking finalises a staged session into a stored booking.
func (bh *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID       string         `json:"sessionId"`
		Contact         models.Contact `json:"contact"`
		AppointmentType string         `json:"appointmentType"`
		Notes           string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid confirmation payload: "+err.Error()))
		return
	}
	if input.SessionID == "" {
		respondError(c, booking.NewValidationError("sessionId is required"))
		return
	}

	id, err := bh.Service.ConfirmSession(c.Request.Context(), input.SessionID, input.Contact, input.AppointmentType, input.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "status": "confirmed"})
}

// CancelSession discards a staged session without booking.
func (bh *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := bh.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
