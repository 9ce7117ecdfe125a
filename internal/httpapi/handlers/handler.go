package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/chat-api/internal/config"
	"github.com/suPer8Hu/chat-api/internal/message"
	"gorm.io/gorm"
)

// Error codes exposed to clients. Stable: clients branch on these.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeDuplicateMessage = "DUPLICATE_MESSAGE"
	CodeDBError          = "DB_ERROR"
)

type Handler struct {
	Cfg *config.Config
	Svc *message.Service
}

func NewHandler(gdb *gorm.DB, cfg *config.Config) *Handler {
	repo := message.NewRepo(gdb)
	svc := message.NewService(repo, cfg.Moderation.BlockedWords)
	return &Handler{Cfg: cfg, Svc: svc}
}

func success(c *gin.Context, httpStatus int, data any) {
	c.JSON(httpStatus, gin.H{
		"status": "success",
		"data":   data,
	})
}

func fail(c *gin.Context, httpStatus int, code, msg string) {
	failWithDetails(c, httpStatus, code, msg, "")
}

func failWithDetails(c *gin.Context, httpStatus int, code, msg, details string) {
	errObj := gin.H{
		"code":    code,
		"message": msg,
	}
	if details != "" {
		errObj["details"] = details
	}
	c.JSON(httpStatus, gin.H{
		"status": "error",
		"error":  errObj,
	})
}

// NotFound and MethodNotAllowed keep unknown routes on the same
// envelope as everything else.
func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "NOT_FOUND", "route not found")
}

func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
