package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	providerRepoPkg "github.com/Instaresz90008/demo-app-sub000/database/repository/provider"
	"github.com/Instaresz90008/demo-app-sub000/handlers"
	"github.com/Instaresz90008/demo-app-sub000/middleware"
)

// RegisterWizardRoutes registers the step-wizard session endpoints. They are
// public: onboarding runs before an account exists.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/:flow/start", hb.StartWizardSession)
		api.GET("/sessions/:sessionID", hb.GetWizardSession)
		api.PUT("/sessions/:sessionID", hb.UpdateWizardSession)
		api.POST("/sessions/:sessionID/next", hb.AdvanceWizardSession)
		api.POST("/sessions/:sessionID/previous", hb.RewindWizardSession)
		api.POST("/sessions/:sessionID/goto", hb.JumpWizardSession)
		api.POST("/sessions/:sessionID/validate-field", hb.ValidateWizardField)
		api.POST("/sessions/:sessionID/submit", hb.SubmitWizardSession)
		api.DELETE("/sessions/:sessionID", hb.CancelWizardSession)
	}
}

// RegisterTemplateRoutes registers the read-only template catalog.
func RegisterTemplateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/templates")
	{
		api.GET("", hb.ListTemplates)
		api.GET("/:id", hb.GetTemplate)
	}
}

// RegisterSlotRoutes registers slot preview (public, used mid-onboarding) and
// the authenticated timeslot management endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle, providers providerRepoPkg.ProviderRepository) {
	r.POST("/api/slots/preview", hb.PreviewSlots)

	api := r.Group("/api/providers/:providerID/timeslots")
	{
		api.Use(middleware.JWTAuthProviderMiddleware(providers))
		api.GET("", hb.ListProviderTimeslots)
		api.POST("", hb.CreateProviderTimeslot)
		api.DELETE("/:slotID", hb.DeleteProviderTimeslot)
	}
}

// RegisterServiceRoutes registers authenticated service management endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle, providers providerRepoPkg.ProviderRepository) {
	api := r.Group("/api/services")
	{
		api.Use(middleware.JWTAuthProviderMiddleware(providers))
		api.GET("/id/:id", hb.GetService)
		api.GET("/provider/:providerID", hb.ListProviderServices)
		api.PATCH("/id/:id", hb.UpdateService)
		api.DELETE("/id/:id", hb.DeleteService)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slotsetter"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, providers providerRepoPkg.ProviderRepository) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, hb)
	RegisterTemplateRoutes(r, hb)
	RegisterSlotRoutes(r, hb, providers)
	RegisterServiceRoutes(r, hb, providers)
	RegisterHealthRoute(r)
}
