package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/middleware"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/response"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAuthRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// setupPublicRoutes serves the site itself: published content, checkout
// and the engagement forms. No session required.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/hero", c.PhotoHandler.ActiveHero)
	v1.GET("/gallery", c.PhotoHandler.Gallery)
	v1.GET("/blog", c.BlogHandler.ListPublished)
	v1.GET("/blog/:slug", c.BlogHandler.GetBySlug)
	v1.GET("/shop", c.ShopHandler.ListActive)
	v1.GET("/podcast", c.PodcastHandler.ListActive)

	v1.POST("/orders/quote", c.CheckoutHandler.Quote)
	v1.POST("/orders", c.CheckoutHandler.PlaceOrder)
	v1.POST("/newsletter", c.EngagementHandler.SubscribeNewsletter)
	v1.POST("/consultations", c.EngagementHandler.RequestConsultation)
	v1.POST("/track/session", c.AnalyticsHandler.TrackSession)
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.POST("/refresh", c.AuthHandler.Refresh)
	}
}

// setupAdminRoutes gates the dashboard behind the session store.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.SessionAuth(c.Sessions))
	{
		admin.GET("/me", c.AuthHandler.Me)
		admin.PUT("/password", c.AuthHandler.ChangePassword)

		admin.GET("/hero", c.PhotoHandler.ListHero)
		admin.POST("/hero", c.PhotoHandler.UploadHero)
		admin.POST("/hero/:id/activate", c.PhotoHandler.ActivateHero)
		admin.DELETE("/hero/:id", c.PhotoHandler.DeleteHero)
		admin.POST("/gallery", c.PhotoHandler.UploadGallery)
		admin.DELETE("/gallery/:id", c.PhotoHandler.DeleteGallery)

		admin.GET("/blog", c.BlogHandler.List)
		admin.POST("/blog", c.BlogHandler.Create)
		admin.PUT("/blog/:id", c.BlogHandler.Update)
		admin.DELETE("/blog/:id", c.BlogHandler.Delete)

		admin.GET("/shop", c.ShopHandler.List)
		admin.POST("/shop", c.ShopHandler.Create)
		admin.PUT("/shop/:id", c.ShopHandler.Update)
		admin.DELETE("/shop/:id", c.ShopHandler.Delete)

		admin.GET("/podcast", c.PodcastHandler.List)
		admin.POST("/podcast", c.PodcastHandler.Create)
		admin.PUT("/podcast/:id", c.PodcastHandler.Update)
		admin.DELETE("/podcast/:id", c.PodcastHandler.Delete)

		admin.GET("/analytics", c.AnalyticsHandler.Summary)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "database unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}
