package handlers

import (
	"net/http"

	"afspraak/services/booking"
	"afspraak/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler the router needs.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Contact      *ContactHandler
	Admin        *AdminHandler
}

// respondError maps service error codes onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch booking.ErrorCode(err) {
	case booking.CodeValidation:
		status = http.StatusBadRequest
	case booking.CodeConflict:
		status = http.StatusConflict
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeStore:
		status = http.StatusBadGateway
	}
	utils.JSONError(c, status, err.Error(), "")
}
