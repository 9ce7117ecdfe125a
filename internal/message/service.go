package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/suPer8Hu/chat-api/internal/sanitize"
	"github.com/suPer8Hu/chat-api/internal/timeutil"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Service struct {
	repo    *Repo
	blocked sanitize.Blocklist
}

func NewService(repo *Repo, blockedWords []string) *Service {
	return &Service{repo: repo, blocked: sanitize.NewBlocklist(blockedWords)}
}

// CreateMessageInput carries the raw string fields of a create request,
// after JSON decoding but before any validation.
type CreateMessageInput struct {
	MessageID string
	SessionID string
	Content   string
	Timestamp string
	Sender    string
}

// Ingest runs the full pipeline: trim, validate, normalize the
// timestamp, censor content, derive metadata, insert. Exactly one
// insert attempt is made, and only after every check has passed.
func (s *Service) Ingest(ctx context.Context, in CreateMessageInput) (*Message, error) {
	messageID := strings.TrimSpace(in.MessageID)
	sessionID := strings.TrimSpace(in.SessionID)
	content := strings.TrimSpace(in.Content)
	sender := strings.TrimSpace(in.Sender)

	if messageID == "" || sessionID == "" || content == "" {
		return nil, invalid("message_id, session_id and content must not be empty")
	}

	timestamp, err := timeutil.Normalize(in.Timestamp)
	if err != nil {
		return nil, invalidWithDetails("invalid message format", err.Error())
	}

	if !ValidSender(sender) {
		return nil, invalid("sender must be 'user' or 'system'")
	}

	clean := sanitize.Clean(content, s.blocked)

	m := &Message{
		MessageID:      messageID,
		SessionID:      sessionID,
		Content:        clean,
		Timestamp:      timestamp,
		Sender:         sender,
		WordCount:      len(strings.Fields(clean)),
		CharacterCount: len([]rune(clean)),
		ProcessedAt:    timeutil.Now(),
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateMessage
		}
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

// List validates pagination and the optional sender filter, then
// queries the store.
func (s *Service) List(ctx context.Context, sessionID, sender string, limit, offset int) ([]Message, error) {
	if limit < 1 || limit > MaxLimit {
		return nil, invalid(fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}
	if offset < 0 {
		return nil, invalid("offset must be >= 0")
	}
	if sender != "" && !ValidSender(sender) {
		return nil, invalid("sender must be 'user' or 'system'")
	}

	msgs, err := s.repo.List(ctx, sessionID, sender, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
