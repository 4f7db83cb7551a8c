package routes

import (
	"github.com/gin-gonic/gin"

	"promptstudio/internal/controllers"
)

// RegisterStreamRoutes registers the tree-build progress WebSocket.
// Token validation happens inside the handler (browsers cannot set
// headers on WebSocket requests, so the token rides the query string).
func RegisterStreamRoutes(r *gin.Engine) {
	r.GET("/ws/tree", controllers.HandleBuildStream)
}
