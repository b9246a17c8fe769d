package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchToken streams a notification whenever the persisted token changes on
// disk, so a sign-in or sign-out from another terminal is noticed. Callers
// should drain the returned channel; bursts of filesystem activity are
// coalesced into a single notification. The channel is closed once ctx is
// done or the watcher encounters an unrecoverable error.
func WatchToken(ctx context.Context, cfg Config) (<-chan struct{}, error) {
	base := cfg.BasePath()
	if base == "" {
		return nil, errors.New("store: base path unknown")
	}

	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(base); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", base, err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer closeWatcher()

		send := func() {
			select {
			case changes <- struct{}{}:
			default:
				// Drop notifications if the consumer is not ready; the next
				// read of the token sees the final state anyway. This keeps
				// filesystem storms from blocking the watcher goroutine.
			}
		}

		throttle := newChangeThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a change so clients re-read the
				// token even when the event cannot be classified.
				throttle.Enqueue(send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != tokenKey {
					continue
				}
				throttle.Enqueue(send)
			}
		}
	}()

	return changes, nil
}

// changeThrottle coalesces rapid change notifications so clients react once
// per burst of filesystem activity instead of on every single write.
type changeThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	delay   time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay}
}

func (t *changeThrottle) Enqueue(send func()) {
	t.mu.Lock()
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) flush(send func()) {
	t.mu.Lock()
	pending := t.pending
	t.pending = false
	t.timer = nil
	t.mu.Unlock()

	if pending {
		send()
	}
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
