package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoList_TiebreaksOnMessageID(t *testing.T) {
	req := require.New(t)
	gdb := openTestDB(t)
	repo := NewRepo(gdb)

	ts := "2025-08-17T20:00:00+00:00"
	for _, id := range []string{"c", "a", "b"} {
		req.NoError(repo.Insert(context.Background(), &Message{
			MessageID:      id,
			SessionID:      "tie",
			Content:        "x",
			Timestamp:      ts,
			Sender:         SenderUser,
			WordCount:      1,
			CharacterCount: 1,
			ProcessedAt:    ts,
		}))
	}

	msgs, err := repo.List(context.Background(), "tie", "", 10, 0)
	req.NoError(err)
	req.Len(msgs, 3)
	req.Equal("a", msgs[0].MessageID)
	req.Equal("b", msgs[1].MessageID)
	req.Equal("c", msgs[2].MessageID)
}

func TestRepoList_ScopedToSession(t *testing.T) {
	req := require.New(t)
	gdb := openTestDB(t)
	repo := NewRepo(gdb)

	ts := "2025-08-17T20:00:00+00:00"
	for i, sess := range []string{"one", "one", "two"} {
		req.NoError(repo.Insert(context.Background(), &Message{
			MessageID:      sess + "-" + string(rune('a'+i)),
			SessionID:      sess,
			Content:        "x",
			Timestamp:      ts,
			Sender:         SenderSystem,
			WordCount:      1,
			CharacterCount: 1,
			ProcessedAt:    ts,
		}))
	}

	msgs, err := repo.List(context.Background(), "one", "", 10, 0)
	req.NoError(err)
	req.Len(msgs, 2)
	for _, m := range msgs {
		req.Equal("one", m.SessionID)
	}
}
