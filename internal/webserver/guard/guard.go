package guard

import (
	"sync"

	"github.com/ruizdev/challenger/internal/webserver/model"
)

// ResetGuard prevents replay of password reset tokens. Check and mark
// happen under a single lock so that two concurrent requests bearing the
// same token cannot both pass the not-yet-used check.
type ResetGuard struct {
	mu   sync.Mutex
	used map[string]struct{}
}

func NewResetGuard() *ResetGuard {
	return &ResetGuard{used: map[string]struct{}{}}
}

// Consume marks the token id as used. The second call with the same id
// fails with model.ErrTokenAlreadyUsed.
func (g *ResetGuard) Consume(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.used[id]; ok {
		return model.ErrTokenAlreadyUsed
	}
	g.used[id] = struct{}{}
	return nil
}
