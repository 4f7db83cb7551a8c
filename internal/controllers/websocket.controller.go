package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"promptstudio/internal/logging"
	"promptstudio/internal/models"
	"promptstudio/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleBuildStream runs a tree build and streams progress events over a
// WebSocket. One build per connection; the connection closes after the
// final done or error event.
// Query params: owner, repo, branch, path, token (when auth is enabled)
func HandleBuildStream(c *gin.Context) {
	if services.AuthEnabled() {
		if _, err := services.ValidateToken(c.Query("token")); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
	}

	ref := models.RepoRef{
		Owner:  c.Query("owner"),
		Repo:   c.Query("repo"),
		Branch: c.DefaultQuery("branch", "main"),
	}
	if ref.Owner == "" || ref.Repo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner and repo are required"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer ws.Close()

	// Sibling fetches emit progress concurrently; funnel events through a
	// channel so only one goroutine writes to the connection.
	events := make(chan services.BuildEvent, 256)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for event := range events {
			if err := ws.WriteJSON(event); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logging.L().Warn("websocket write failed", zap.Error(err))
				}
				return
			}
		}
		ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}()

	_, buildErr := services.GetTreeBuilder().Build(c.Request.Context(), ref, c.Query("path"), func(event services.BuildEvent) {
		select {
		case events <- event:
		case <-done:
		}
	})
	if buildErr != nil {
		logging.L().Warn("streamed tree build failed",
			zap.String("owner", ref.Owner), zap.String("repo", ref.Repo), zap.Error(buildErr))
	}

	close(events)
	<-done
}
