package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/chat-api/internal/timeutil"
)

const serviceName = "chat-api"

// Health handles GET /.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"time":    timeutil.Now(),
		"service": serviceName,
	})
}
