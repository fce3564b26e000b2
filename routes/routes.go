package routes

import (
	"net/http"
	"time"

	"afspraak/handlers"
	"afspraak/middleware"
	"afspraak/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public slot and calendar endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.Availability.GetSlots)
		api.GET("/month", hb.Availability.GetMonth)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/bookings", hb.Booking.CreateBooking)
	r.POST("/api/bookings/cancel", hb.Booking.CancelBooking)

	sessionGroup := r.Group("/api/booking")
	{
		sessionGroup.POST("/session", hb.Booking.InitiateSession)
		sessionGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		sessionGroup.POST("/confirm", hb.Booking.ConfirmBooking)
		sessionGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterMessageRoutes registers the contact-form endpoint.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/messages", hb.Contact.SubmitMessage)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("/logout", hb.Admin.Logout)
		protected.GET("/bookings", hb.Admin.ListBookings)
		protected.GET("/bookings/:id", hb.Admin.GetBooking)
		protected.DELETE("/bookings/:id", hb.Admin.DeleteBooking)
		protected.POST("/blackouts", hb.Admin.CreateBlackout)
		protected.GET("/blackouts", hb.Admin.ListBlackouts)
		protected.DELETE("/blackouts/:id", hb.Admin.DeleteBlackout)
		protected.GET("/messages", hb.Admin.ListMessages)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
