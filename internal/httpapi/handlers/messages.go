package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/suPer8Hu/chat-api/internal/message"
)

// requiredFields is checked in order so the error always names the
// first missing field.
var requiredFields = []string{"message_id", "session_id", "content", "timestamp", "sender"}

// CreateMessage handles POST /messages.
func (h *Handler) CreateMessage(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidJSON, "request body must be valid JSON")
		return
	}

	for _, f := range requiredFields {
		if _, ok := payload[f]; !ok {
			fail(c, http.StatusBadRequest, CodeInvalidFormat, "missing required field: "+f)
			return
		}
	}

	fields := make(map[string]string, len(requiredFields))
	for _, f := range requiredFields {
		v, ok := payload[f].(string)
		if !ok {
			fail(c, http.StatusBadRequest, CodeInvalidFormat, fmt.Sprintf("field %s must be a string", f))
			return
		}
		fields[f] = v
	}

	m, err := h.Svc.Ingest(c.Request.Context(), message.CreateMessageInput{
		MessageID: fields["message_id"],
		SessionID: fields["session_id"],
		Content:   fields["content"],
		Timestamp: fields["timestamp"],
		Sender:    fields["sender"],
	})
	if err != nil {
		var ve *message.ValidationError
		switch {
		case errors.As(err, &ve):
			failWithDetails(c, http.StatusBadRequest, CodeInvalidFormat, ve.Message, ve.Details)
		case errors.Is(err, message.ErrDuplicateMessage):
			fail(c, http.StatusConflict, CodeDuplicateMessage, "message_id already exists")
		default:
			log.Printf("[CreateMessage] insert failed message_id=%q err=%v", fields["message_id"], err)
			fail(c, http.StatusInternalServerError, CodeDBError, "failed to save message")
		}
		return
	}

	success(c, http.StatusCreated, m.View())
}

// ListMessages handles GET /messages/:session_id.
func (h *Handler) ListMessages(c *gin.Context) {
	sessionID := c.Param("session_id")

	// a parameter that is present but empty is a bad integer, not a
	// request for the default
	limit := message.DefaultLimit
	offset := 0
	if v, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, CodeInvalidFormat, "limit and offset must be integers")
			return
		}
		limit = n
	}
	if v, ok := c.GetQuery("offset"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, CodeInvalidFormat, "limit and offset must be integers")
			return
		}
		offset = n
	}

	msgs, err := h.Svc.List(c.Request.Context(), sessionID, c.Query("sender"), limit, offset)
	if err != nil {
		var ve *message.ValidationError
		if errors.As(err, &ve) {
			failWithDetails(c, http.StatusBadRequest, CodeInvalidFormat, ve.Message, ve.Details)
			return
		}
		log.Printf("[ListMessages] query failed session_id=%q err=%v", sessionID, err)
		fail(c, http.StatusInternalServerError, CodeDBError, "failed to query messages")
		return
	}

	success(c, http.StatusOK, lo.Map(msgs, func(m message.Message, _ int) message.View {
		return m.View()
	}))
}
