package handlers

import (
	"net/http"

	"afspraak/models"
	"afspraak/services/booking"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the public contact-form endpoint.
type ContactHandler struct {
	Service booking.BookingService
}

func NewContactHandler(svc booking.BookingService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitMessage stores a contact-form message from the widget.
func (ch *ContactHandler) SubmitMessage(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid message payload: "+err.Error()))
		return
	}
	if input.Name == "" || input.Email == "" || input.Body == "" {
		respondError(c, booking.NewValidationError("name, email and body are required"))
		return
	}

	msg := &models.Message{
		Type:    models.MessageTypeContact,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Body:    input.Body,
	}
	id, err := ch.Service.SaveContactMessage(c.Request.Context(), msg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
