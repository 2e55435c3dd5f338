package routes

import (
	"os"
	"path/filepath"

	"sweatfix/config"
	"sweatfix/controllers"
	"sweatfix/middlewares"
	"sweatfix/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, coach *services.CoachService) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())

	if !config.IsProduction() {
		// The Vite dev server runs on its own origin in development.
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Public auth/identity routes
	r.GET("/api/auth/google", controllers.GoogleLogin)
	r.GET("/auth/google/callback", controllers.GoogleCallback)
	r.POST("/api/auth/demo", controllers.DemoLogin)
	r.GET("/api/me", controllers.Me)
	r.GET("/api/logout", controllers.Logout)

	chatCtl := controllers.NewChatController(coach)
	rtCtl := controllers.NewRealtimeController(hub)

	// Per-user resources
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.PUT("/user", controllers.UpdateUser)
		api.GET("/progress", controllers.GetProgress)
		api.POST("/progress", controllers.LogProgress)
		api.GET("/plans", controllers.GetPlans)
		api.POST("/plans", controllers.UpsertPlan)
		api.PUT("/plans/:id/complete", controllers.CompletePlan)
		api.POST("/chat", chatCtl.Chat)
		api.GET("/ws", rtCtl.DashboardWS)
	}

	if config.IsProduction() {
		staticDir := os.Getenv("STATIC_DIR")
		if staticDir == "" {
			staticDir = "dist"
		}
		r.Static("/assets", filepath.Join(staticDir, "assets"))
		r.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))
		r.NoRoute(func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
	}

	return r
}
