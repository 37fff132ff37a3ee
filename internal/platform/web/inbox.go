package web

import (
	"sync"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// inbox collects actions from the reader goroutine until the tick loop
// drains them. It is the only state the two goroutines share.
type inbox struct {
	mu    sync.Mutex
	frame core.InputFrame
}

func newInbox() *inbox {
	return &inbox{frame: core.NewInputFrame()}
}

func (b *inbox) push(a core.Action) {
	b.mu.Lock()
	b.frame.Set(a)
	b.mu.Unlock()
}

// drain returns the collected actions and starts a new frame.
func (b *inbox) drain() core.InputFrame {
	b.mu.Lock()
	defer b.mu.Unlock()
	in := b.frame
	b.frame = core.NewInputFrame()
	return in
}
