package routes

import (
	"net/http"

	"petbnb_backend/internal/auth"
	"petbnb_backend/internal/handlers"
	"petbnb_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route of the application.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Browser landing page for email verification links.
	appHandlers.VerifyPageHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api")
	authed := ginRouter.Group("/api")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authed)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api, authed)
		appHandlers.PetHandler.RegisterRoutes(authed)
		appHandlers.CaregiverHandler.RegisterRoutes(authed)
		appHandlers.BookingHandler.RegisterRoutes(authed)
		appHandlers.MessageHandler.RegisterRoutes(authed)
		appHandlers.PaymentHandler.RegisterRoutes(authed)
		appHandlers.UploadHandler.RegisterRoutes(authed)
		appHandlers.StatsHandler.RegisterRoutes(authed)
	}
}
