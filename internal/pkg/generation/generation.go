// Package generation issues monotonically increasing request tokens so that
// results of superseded asynchronous work can be recognized and dropped.
package generation

import (
	"context"
	"sync"
)

type Token uint64

type Guard struct {
	mu     sync.Mutex
	latest Token
	cancel context.CancelFunc
}

func NewGuard() *Guard {
	return &Guard{}
}

// Issue supersedes every previously issued token and cancels the context
// handed out with the previous one.
func (g *Guard) Issue(parent context.Context) (Token, context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.latest++
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel
	return g.latest, ctx
}

// Commit runs apply only when t is still the latest token. apply runs under
// the guard's lock, so no newer Issue can interleave with it.
func (g *Guard) Commit(t Token, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if t != g.latest {
		return false
	}
	apply()
	return true
}

// Stop cancels any in-flight work.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
