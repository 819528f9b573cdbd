package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/regimeproprio/app-chatbot-rpps/internal/api/handlers"
	"github.com/regimeproprio/app-chatbot-rpps/internal/config"
	"github.com/regimeproprio/app-chatbot-rpps/internal/intent"
	middlewares "github.com/regimeproprio/app-chatbot-rpps/internal/middleware"
)

func SetupRouter(cfg *config.Config, engine *intent.Engine) (*gin.Engine, error) {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	chatHandler, err := handlers.NewChatHandler(engine, cfg.Chatbot.MaxMessageLength)
	if err != nil {
		return nil, err
	}
	intentsHandler := handlers.NewIntentsHandler(engine.Catalog())
	healthHandler := handlers.NewHealthHandler(engine.Catalog(), engine)
	adminHandler := handlers.NewAdminHandler(engine.Cache())

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/chat", chatHandler.Chat)
		api.GET("/intents", intentsHandler.List)

		admin := api.Group("/admin")
		admin.Use(middlewares.JWTAuthMiddleware(), middlewares.RequireRole(middlewares.RoleAdmin))
		{
			admin.GET("/cache", adminHandler.CacheStats)
			admin.DELETE("/cache", adminHandler.ClearCache)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
