package routes

import (
	"net/http"
	"time"

	"salonbook-backend/handlers"
	"salonbook-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	authHandler := &handlers.AuthHandler{DB: db}
	salonHandler := &handlers.SalonHandler{DB: db}
	staffHandler := &handlers.StaffHandler{DB: db}
	serviceHandler := &handlers.ServiceHandler{DB: db}
	availabilityHandler := &handlers.AvailabilityHandler{DB: db}
	bookingHandler := &handlers.BookingHandler{DB: db}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Brute-force protection on credential endpoints
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	{
		// Public
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshTokenHandler)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		api.GET("/salons", salonHandler.ListSalons)
		api.GET("/salons/nearest", salonHandler.GetNearestSalon)
		api.GET("/salons/:id", salonHandler.GetSalon)
		api.GET("/salons/:id/services", serviceHandler.ListSalonServices)
		api.GET("/salons/:id/availability", availabilityHandler.GetAvailability)
		api.GET("/salons/:id/availability/staff", availabilityHandler.GetAvailableStaff)

		// Authenticated customers
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", authHandler.GetProfile)
			protected.PUT("/auth/profile", authHandler.UpdateProfile)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			protected.POST("/bookings", bookingHandler.CreateBooking)
			protected.GET("/bookings", bookingHandler.ListMyBookings)
			protected.GET("/bookings/:id", bookingHandler.GetBooking)
			protected.PUT("/bookings/:id/cancel", bookingHandler.CancelBooking)
		}

		// Salon portal (owners and staff accounts)
		salon := api.Group("/salon")
		salon.Use(middleware.AuthMiddleware(), middleware.SalonMiddleware())
		{
			salon.GET("/me", salonHandler.GetMySalon)
			salon.PUT("/me", salonHandler.UpdateMySalon)
			salon.GET("/hours", salonHandler.GetOperatingHours)
			salon.PUT("/hours", salonHandler.UpdateOperatingHours)

			salon.GET("/staff", staffHandler.ListStaff)
			salon.POST("/staff", staffHandler.CreateStaff)
			salon.GET("/staff/:id", staffHandler.GetStaff)
			salon.PUT("/staff/:id", staffHandler.UpdateStaff)
			salon.DELETE("/staff/:id", staffHandler.DeleteStaff)
			salon.PUT("/staff/:id/schedule", staffHandler.UpdateSchedule)
			salon.POST("/staff/:id/blocked-times", staffHandler.AddBlockedTime)
			salon.DELETE("/staff/:id/blocked-times/:blockId", staffHandler.RemoveBlockedTime)
			salon.POST("/staff/:id/leaves", staffHandler.AddLeave)
			salon.DELETE("/staff/:id/leaves/:leaveId", staffHandler.RemoveLeave)

			salon.GET("/services", serviceHandler.ListMyServices)
			salon.POST("/services", serviceHandler.CreateService)
			salon.PUT("/services/:id", serviceHandler.UpdateService)
			salon.DELETE("/services/:id", serviceHandler.DeleteService)

			salon.GET("/bookings", bookingHandler.ListSalonBookings)
			salon.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
		}

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/users", authHandler.ListUsers)
			admin.PUT("/users/:id", authHandler.UpdateUser)

			admin.POST("/salons", salonHandler.CreateSalon)
			admin.PUT("/salons/:id", salonHandler.UpdateSalon)
			admin.DELETE("/salons/:id", salonHandler.DeleteSalon)

			admin.GET("/categories", serviceHandler.ListCategories)
			admin.POST("/categories", serviceHandler.CreateCategory)
			admin.PUT("/categories/:id", serviceHandler.UpdateCategory)
			admin.DELETE("/categories/:id", serviceHandler.DeleteCategory)
		}
	}
}
