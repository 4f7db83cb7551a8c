package routes

import (
	"github.com/gin-gonic/gin"

	"promptstudio/internal/controllers"
	"promptstudio/internal/middleware"
)

// RegisterAPIRoutes registers the JSON API under /api.
func RegisterAPIRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/tree", controllers.GetTree)
		api.GET("/status", controllers.GetStatus)

		prompts := api.Group("/prompts")
		{
			prompts.GET("", controllers.ListPrompts)
			prompts.POST("", controllers.CreatePrompt)
			prompts.PUT("/:id", controllers.UpdatePrompt)
			prompts.DELETE("/:id", controllers.DeletePrompt)
		}

		files := api.Group("/files")
		{
			files.GET("", controllers.ListFiles)
			files.POST("", controllers.CreateFile)
			files.PUT("/:id", controllers.UpdateFile)
			files.DELETE("/:id", controllers.DeleteFile)
		}

		api.POST("/selection/toggle", controllers.ToggleSelection)

		render := api.Group("/render")
		{
			render.POST("/markdown", controllers.RenderMarkdown)
			render.POST("/xml", controllers.RenderXML)
		}
	}

	// Token exchange sits outside the auth gate.
	r.POST("/api/auth/token", controllers.HandleGetToken)
}
