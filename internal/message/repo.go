package message

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Insert persists a message. A primary-key collision on message_id
// surfaces as gorm.ErrDuplicatedKey (driver error translation); the
// row is written atomically or not at all.
func (r *Repo) Insert(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns the session's messages in ASC timestamp order. sender
// narrows the result when non-empty. A session with no rows yields an
// empty slice, not an error.
func (r *Repo) List(ctx context.Context, sessionID, sender string, limit, offset int) ([]Message, error) {
	q := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, message_id ASC").
		Limit(limit).
		Offset(offset)

	if sender != "" {
		q = q.Where("sender = ?", sender)
	}

	msgs := make([]Message, 0)
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
