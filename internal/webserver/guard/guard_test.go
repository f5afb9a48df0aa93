package guard_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ruizdev/challenger/internal/webserver/guard"
	"github.com/ruizdev/challenger/internal/webserver/model"
)

func TestConsumeRejectsSecondUse(t *testing.T) {
	g := guard.NewResetGuard()

	if err := g.Consume("token-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := g.Consume("token-1"); !errors.Is(err, model.ErrTokenAlreadyUsed) {
		t.Errorf("Expected %v, got %v", model.ErrTokenAlreadyUsed, err)
	}
	if err := g.Consume("token-2"); err != nil {
		t.Errorf("Unexpected error consuming a different token: %v", err)
	}
}

func TestConcurrentConsumeAllowsExactlyOne(t *testing.T) {
	g := guard.NewResetGuard()

	var (
		wg        sync.WaitGroup
		succeeded int64
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Consume("contended"); err == nil {
				atomic.AddInt64(&succeeded, 1)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("Expected exactly one successful consumption, got %d", succeeded)
	}
}
