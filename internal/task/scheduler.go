// Package task schedules cancellable delayed messages for Bubble Tea models.
//
// Every timer a page starts (typewriter steps, cursor blink, status revert,
// reveal stagger, animation frames) is a task owned by that page's Scheduler.
// Closing the Scheduler on unmount cancels all outstanding tasks, and Fired
// messages carry the owner token so a late delivery never reaches a newer page.
package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"folio/internal/clock"

	tea "github.com/charmbracelet/bubbletea"
)

// ID identifies a scheduled task within its Scheduler.
type ID uint64

// Fired is delivered when a task's delay elapses.
type Fired struct {
	Owner uint64
	ID    ID
	Msg   tea.Msg
}

var owners atomic.Uint64

// Scheduler owns a set of pending tasks. Safe for concurrent use.
type Scheduler struct {
	clock  clock.Clock
	owner  uint64
	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	next ID
	live map[ID]context.CancelFunc
}

// New creates a Scheduler whose tasks are cancelled when parent is done or Close is called.
func New(parent context.Context, c clock.Clock) *Scheduler {
	if c == nil {
		c = clock.Real()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		clock:  c,
		owner:  owners.Add(1),
		ctx:    ctx,
		cancel: cancel,
		live:   make(map[ID]context.CancelFunc),
	}
}

// Clock returns the scheduler's time source.
func (s *Scheduler) Clock() clock.Clock { return s.clock }

// After returns a command that yields Fired{Msg: msg} once d has elapsed.
// If the task or the scheduler is cancelled first the command yields nil.
func (s *Scheduler) After(d time.Duration, msg tea.Msg) (ID, tea.Cmd) {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return 0, nil
	}
	s.next++
	id := s.next
	ctx, cancel := context.WithCancel(s.ctx)
	s.live[id] = cancel
	s.mu.Unlock()

	// Register the timer before the command runs so the delay is measured
	// from scheduling time, not from when the runtime picks the command up.
	fire := s.clock.After(d)
	owner := s.owner
	return id, func() tea.Msg {
		defer s.forget(id)
		select {
		case <-fire:
			if ctx.Err() != nil {
				return nil
			}
			return Fired{Owner: owner, ID: id, Msg: msg}
		case <-ctx.Done():
			return nil
		}
	}
}

// Cancel stops a pending task. Cancelling a finished or unknown task is a no-op.
func (s *Scheduler) Cancel(id ID) {
	s.mu.Lock()
	cancel, ok := s.live[id]
	delete(s.live, id)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// Close cancels every pending task. Later calls to After return nil commands.
func (s *Scheduler) Close() {
	s.mu.Lock()
	for id, cancel := range s.live {
		cancel()
		delete(s.live, id)
	}
	s.mu.Unlock()
	s.cancel()
}

// Closed reports whether Close has been called or the parent context is done.
func (s *Scheduler) Closed() bool { return s.ctx.Err() != nil }

// Pending returns the number of tasks not yet fired or cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Owns reports whether f was produced by this scheduler and the scheduler is still open.
func (s *Scheduler) Owns(f Fired) bool {
	return f.Owner == s.owner && !s.Closed()
}

func (s *Scheduler) forget(id ID) {
	s.mu.Lock()
	delete(s.live, id)
	s.mu.Unlock()
}
