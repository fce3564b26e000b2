package handlers

import (
	"net/http"
	"strings"

	"afspraak/models"
	"afspraak/services/admin"
	"afspraak/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Login exchanges the admin credentials for a bearer token.
func (ah *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, booking.NewValidationError("invalid login payload: "+err.Error()))
		return
	}

	token, err := ah.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		zap.L().Warn("Admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the presented bearer token.
func (ah *AdminHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		respondError(c, booking.NewValidationError("missing bearer token"))
		return
	}
	if err := ah.Service.RevokeToken(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}

// ListBookings returns every stored booking.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := ah.Service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns a single booking by id.
func (ah *AdminHandler) GetBooking(c *gin.Context) {
	b, err := ah.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBooking removes a booking by id.
func (ah *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := ah.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// CreateBlackout adds a blackout rule.
func (ah *AdminHandler) CreateBlackout(c *gin.Context) {
	var rule models.BlackoutRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		respondError(c, booking.NewValidationError("invalid blackout payload: "+err.Error()))
		return
	}

	id, err := ah.Service.CreateBlackoutRule(c.Request.Context(), &rule)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListBlackouts returns every blackout rule.
func (ah *AdminHandler) ListBlackouts(c *gin.Context) {
	rules, err := ah.Service.ListBlackoutRules(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// DeleteBlackout removes a blackout rule by id.
func (ah *AdminHandler) DeleteBlackout(c *gin.Context) {
	if err := ah.Service.DeleteBlackoutRule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListMessages returns contact-form and cancellation messages.
func (ah *AdminHandler) ListMessages(c *gin.Context) {
	msgs, err := ah.Service.ListMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}
