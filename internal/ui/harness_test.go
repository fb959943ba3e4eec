package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"folio/internal/clock"
	"folio/internal/contact"
	"folio/internal/relay"
	"folio/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

var t0 = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

// harness drives a model the way the Bubble Tea runtime would: commands run
// on goroutines and their messages are fed back into Update. Time only moves
// when the test advances the fake clock.
type harness struct {
	t      *testing.T
	clock  *clock.Fake
	update func(tea.Msg) tea.Cmd
	msgs   chan tea.Msg
	seen   []tea.Msg
}

func newHarness(t *testing.T, fake *clock.Fake, update func(tea.Msg) tea.Cmd) *harness {
	return &harness{t: t, clock: fake, update: update, msgs: make(chan tea.Msg, 4096)}
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { h.msgs <- cmd() }()
}

// send delivers msg to the model and schedules whatever command it returns.
func (h *harness) send(msg tea.Msg) {
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range m {
			h.run(c)
		}
		return
	}
	h.seen = append(h.seen, msg)
	h.run(h.update(msg))
}

// settle delivers every message that becomes ready without moving the clock.
func (h *harness) settle() {
	for {
		select {
		case m := <-h.msgs:
			h.send(m)
		case <-time.After(10 * time.Millisecond):
			return
		}
	}
}

// advance moves the clock forward by d, stopping at every pending deadline
// so each timer fires at exactly its scheduled instant.
func (h *harness) advance(d time.Duration) {
	target := h.clock.Now().Add(d)
	for {
		h.settle()
		next, ok := h.clock.Next()
		if !ok || next.After(target) {
			break
		}
		h.clock.Advance(next.Sub(h.clock.Now()))
	}
	if now := h.clock.Now(); now.Before(target) {
		h.clock.Advance(target.Sub(now))
		h.settle()
	}
}

func (h *harness) sawMsg(match func(tea.Msg) bool) bool {
	for _, m := range h.seen {
		if match(m) {
			return true
		}
	}
	return false
}

// stubRelay records sends and returns err.
type stubRelay struct {
	mu    sync.Mutex
	err   error
	calls []relay.Message
}

var _ contact.Relay = (*stubRelay)(nil)

func (r *stubRelay) Send(ctx context.Context, m relay.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, m)
	return r.err
}

func (r *stubRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// memStore is an in-memory theme store.
type memStore struct {
	values map[string]string
	fail   bool
}

func (s *memStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memStore) Set(key, value string) error {
	if s.fail {
		return errors.New("read-only")
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func testEnv(t *testing.T, fake *clock.Fake, r contact.Relay) Env {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if r == nil {
		r = &stubRelay{}
	}
	return Env{
		Ctx:   ctx,
		Clock: fake,
		Theme: theme.New(&memStore{}, theme.Dark, nil),
		Relay: r,
	}
}

// pageHarness mounts p at width x height and returns a harness over it.
func pageHarness(t *testing.T, fake *clock.Fake, p Page, width, height int) *harness {
	t.Helper()
	h := newHarness(t, fake, func(msg tea.Msg) tea.Cmd {
		_, cmd := p.Update(msg)
		return cmd
	})
	t.Cleanup(p.Teardown)
	h.run(p.SetSize(width, height))
	h.run(p.Init())
	h.settle()
	return h
}
