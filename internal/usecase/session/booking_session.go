// Package session keeps the live quote of one booking form. Every input
// change supersedes the previous one: its in-flight reads are cancelled and
// a late result is dropped instead of overwriting a fresher quote.
package session

import (
	"context"
	"log/slog"
	"sync"

	"stay-admin/internal/pkg/generation"
	"stay-admin/internal/pkg/metrics"
	"stay-admin/internal/usecase/commands"

	"github.com/google/uuid"
)

type Quoter interface {
	Quote(ctx context.Context, req commands.QuoteRequest) (*commands.QuoteResult, error)
}

type Update struct {
	Token  generation.Token
	Result *commands.QuoteResult
	Err    error
}

type BookingSession struct {
	id      uuid.UUID
	quoter  Quoter
	guard   *generation.Guard
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu     sync.Mutex
	latest *Update
	closed bool
	out    chan Update
	wg     sync.WaitGroup
}

func NewBookingSession(quoter Quoter, m *metrics.Metrics, logger *slog.Logger) *BookingSession {
	id := uuid.New()
	return &BookingSession{
		id:      id,
		quoter:  quoter,
		guard:   generation.NewGuard(),
		metrics: m,
		logger:  logger.With("session_id", id),
		out:     make(chan Update, 1),
	}
}

func (s *BookingSession) ID() uuid.UUID { return s.id }

// Updates delivers published quotes. Only the most recent unread update is
// buffered; a slow reader skips intermediate ones.
func (s *BookingSession) Updates() <-chan Update { return s.out }

// Submit starts quoting req and returns immediately.
func (s *BookingSession) Submit(parent context.Context, req commands.QuoteRequest) generation.Token {
	token, ctx := s.guard.Issue(parent)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		result, err := s.quoter.Quote(ctx, req)
		s.publish(Update{Token: token, Result: result, Err: err})
	}()
	return token
}

func (s *BookingSession) publish(u Update) {
	committed := s.guard.Commit(u.Token, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.latest = &u
		select {
		case <-s.out:
		default:
		}
		s.out <- u
	})
	if !committed {
		s.metrics.StaleDiscards.Inc()
		s.logger.Debug("dropped superseded quote", "token", u.Token)
	}
}

// Latest is the last published update, or nil.
func (s *BookingSession) Latest() *Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Close cancels in-flight work, waits for it and closes Updates.
func (s *BookingSession) Close() {
	s.guard.Stop()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.out)
	}
}
