// File: glamora/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"glamora/handlers"
	"glamora/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/stylists", hb.Catalog.ListStylists)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.POST("/session/:sessionID/services", hb.Booking.AddService)
		bookingGroup.DELETE("/session/:sessionID/services/:serviceID", hb.Booking.RemoveService)
		bookingGroup.PUT("/session/:sessionID/services/:serviceID/quantity", hb.Booking.UpdateQuantity)
		bookingGroup.PUT("/session/:sessionID/stylist", hb.Booking.SetStylist)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.Booking.SetSchedule)
		bookingGroup.PUT("/session/:sessionID/customer", hb.Booking.SetCustomerInfo)
		bookingGroup.PUT("/session/:sessionID/payment-method", hb.Booking.SetPaymentMethod)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.Clear)
	}
	r.GET("/api/bookings/:id/receipt", hb.Booking.Receipt)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/services", hb.Admin.ListAllServices)
		adminGroup.POST("/services", hb.Admin.CreateService)
		adminGroup.PUT("/services/:id", hb.Admin.UpdateService)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteService)
		adminGroup.GET("/stylists", hb.Admin.ListAllStylists)
		adminGroup.POST("/stylists", hb.Admin.CreateStylist)
		adminGroup.PUT("/stylists/:id", hb.Admin.UpdateStylist)
		adminGroup.DELETE("/stylists/:id", hb.Admin.DeleteStylist)
		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.PUT("/bookings/:id/status", hb.Admin.UpdateBookingStatus)
		adminGroup.GET("/customers", hb.Admin.ListCustomers)
		adminGroup.GET("/users", hb.Admin.ListUsers)
		adminGroup.GET("/events", hb.Admin.StreamEvents)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glamora"})
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
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
