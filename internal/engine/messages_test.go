package engine

import (
	"sync"
	"testing"
)

func TestPickMessageFromPool(t *testing.T) {
	pool := map[string]bool{}
	for _, m := range flexMessages {
		pool[m] = true
	}
	for i := 0; i < 50; i++ {
		if m := pickMessage(); !pool[m] {
			t.Fatalf("message %q not in the pool", m)
		}
	}
}

// Completions run concurrently on the HTTP path, so message picking must be
// safe without external locking. The race detector flags any regression here.
func TestPickMessageConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if pickMessage() == "" {
					t.Error("empty message")
					return
				}
			}
		}()
	}
	wg.Wait()
}
