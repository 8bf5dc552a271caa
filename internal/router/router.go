package router

import (
	"net/http"

	_ "gamesync/backend/docs" // registers the swagger spec

	"gamesync/backend/internal/auth"
	"gamesync/backend/internal/handler"
	"gamesync/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds what the router needs from the application config.
type Config struct {
	APIKey      string
	CORSOrigins []string
}

// New builds the gin engine with every route registered.
func New(cfg Config, games *handler.GameHandler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	middleware.RegisterGlobalMiddleware(router)

	// Wrong-method requests stop here, before auth or body parsing. The
	// enrich route has no OPTIONS handler, so a CORS preflight lands here too.
	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "POST required")
	})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		requireKey := auth.APIKeyMiddleware(cfg.APIKey)
		cors := middleware.CORS(cfg.CORSOrigins)

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.POST("/enrich", requireKey, games.EnrichGame)

			// CORS runs ahead of the key check so preflights carry no key.
			gameRoutes.GET("", cors, requireKey, games.GetGames)
			gameRoutes.OPTIONS("", cors, func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})
		}
	}

	return router
}
