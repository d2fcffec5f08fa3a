package routes

import (
	"net/http"
	"time"

	"homeview/handlers"
	"homeview/middleware"
	"homeview/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterViewingRoutes sets up the endpoints for the booking wizard.
func RegisterViewingRoutes(r *gin.Engine, vh *handlers.ViewingHandler) {
	viewingGroup := r.Group("/api/viewings")
	{
		viewingGroup.GET("/slots", vh.GetTimeSlots)
		viewingGroup.POST("/session", vh.StartSession)
		viewingGroup.GET("/session/:sessionID", vh.GetSession)
		viewingGroup.PUT("/session/:sessionID/month", vh.NavigateMonth)
		viewingGroup.PUT("/session/:sessionID/date", vh.SelectDate)
		viewingGroup.PUT("/session/:sessionID/time", vh.SelectTime)
		viewingGroup.POST("/session/:sessionID/advance", vh.Advance)
		viewingGroup.POST("/session/:sessionID/back", vh.Back)
		viewingGroup.POST("/session/:sessionID/confirm", vh.Confirm)
		viewingGroup.DELETE("/session/:sessionID", vh.CancelSession)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/viewings", ah.GetAllViewingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, vh *handlers.ViewingHandler, ah *handlers.AdminHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterViewingRoutes(r, vh)
	RegisterAdminRoutes(r, ah)
}
