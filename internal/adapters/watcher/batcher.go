package watcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
	"unique"

	"go.trai.ch/restyle/internal/core/ports"
)

// Batcher collects watch events until the tree has been quiet for a window,
// then delivers them as one batch. Repeated events for a path collapse into
// the latest one.
type Batcher struct {
	mu      sync.Mutex
	pending map[unique.Handle[string]]ports.WatchOp
	timer   *time.Timer
	window  time.Duration
	deliver func(batch []ports.WatchEvent)
	stopped bool
}

// NewBatcher creates a Batcher. deliver runs on a timer goroutine and
// receives the batch sorted by path.
func NewBatcher(window time.Duration, deliver func(batch []ports.WatchEvent)) *Batcher {
	b := &Batcher{
		pending: make(map[unique.Handle[string]]ports.WatchOp),
		window:  window,
		deliver: deliver,
	}
	b.timer = time.AfterFunc(window, b.fire)
	b.timer.Stop()
	return b
}

// Add records event and restarts the quiet window.
func (b *Batcher) Add(event ports.WatchEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	b.pending[unique.Make(event.Path)] = event.Operation
	b.timer.Reset(b.window)
}

// Flush delivers pending events now, on the calling goroutine.
func (b *Batcher) Flush() {
	b.mu.Lock()
	b.timer.Stop()
	batch := b.take()
	b.mu.Unlock()

	b.send(batch)
}

// Stop discards pending events. Later calls to Add are ignored.
func (b *Batcher) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	b.timer.Stop()
	clear(b.pending)
}

func (b *Batcher) fire() {
	b.mu.Lock()
	batch := b.take()
	b.mu.Unlock()

	b.send(batch)
}

func (b *Batcher) send(batch []ports.WatchEvent) {
	if len(batch) > 0 && b.deliver != nil {
		b.deliver(batch)
	}
}

// take empties the pending set. Callers must hold mu.
func (b *Batcher) take() []ports.WatchEvent {
	if len(b.pending) == 0 {
		return nil
	}
	batch := make([]ports.WatchEvent, 0, len(b.pending))
	for path, op := range b.pending {
		batch = append(batch, ports.WatchEvent{Path: path.Value(), Operation: op})
	}
	clear(b.pending)
	slices.SortFunc(batch, func(x, y ports.WatchEvent) int {
		return cmp.Compare(x.Path, y.Path)
	})
	return batch
}
