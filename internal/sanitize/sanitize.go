// Package sanitize censors configured words in message content before
// it is persisted. Matching is exact-token and case-insensitive: a
// blocked word inside a larger token is left alone.
package sanitize

import (
	"strings"

	"github.com/samber/lo"
)

const marker = "***"

// Blocklist is a lowercase word set.
type Blocklist map[string]struct{}

func NewBlocklist(words []string) Blocklist {
	return lo.SliceToMap(words, func(w string) (string, struct{}) {
		return strings.ToLower(w), struct{}{}
	})
}

func (b Blocklist) Contains(token string) bool {
	_, ok := b[strings.ToLower(token)]
	return ok
}

// Clean splits text on whitespace, replaces blocked tokens with ***,
// and rejoins with single spaces.
func Clean(text string, blocked Blocklist) string {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if blocked.Contains(tok) {
			tokens[i] = marker
		}
	}
	return strings.Join(tokens, " ")
}
