// Package theme holds the process-wide light/dark mode as an injectable object.
package theme

import (
	"sync"

	"go.uber.org/zap"
)

// Mode is the display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// PreferenceKey is the storage key the mode persists under.
const PreferenceKey = "theme"

// Parse returns the Mode named by s.
func Parse(s string) (Mode, bool) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), true
	}
	return "", false
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }

// Store persists the mode. prefs.Store satisfies it.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// State is the single writer of the theme mode. Subscribers are notified
// synchronously, in subscription order, before Set or Toggle returns.
type State struct {
	mu       sync.Mutex
	mode     Mode
	store    Store
	inMemory bool
	subs     []subscription
	nextSub  int
	logger   *zap.Logger
}

type subscription struct {
	id int
	fn func(Mode)
}

// New reads the persisted mode once, falling back to fallback when nothing
// valid is stored. A nil store keeps the mode in memory only.
func New(store Store, fallback Mode, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, ok := Parse(string(fallback)); !ok {
		fallback = Dark
	}
	s := &State{mode: fallback, store: store, inMemory: store == nil, logger: logger}
	if store != nil {
		if v, ok := store.Get(PreferenceKey); ok {
			if m, ok := Parse(v); ok {
				s.mode = m
			} else {
				logger.Debug("ignoring unknown persisted theme", zap.String("value", v))
			}
		}
	}
	return s
}

// Get returns the current mode.
func (s *State) Get() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Set changes the mode, persists it, and notifies subscribers.
// Setting the current mode is a no-op.
func (s *State) Set(m Mode) {
	if _, ok := Parse(string(m)); !ok {
		return
	}
	s.mu.Lock()
	if s.mode == m {
		s.mu.Unlock()
		return
	}
	s.mode = m
	s.persistLocked()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(m)
	}
}

// Toggle flips the mode and returns the new one.
func (s *State) Toggle() Mode {
	next := s.Get().Opposite()
	s.Set(next)
	return next
}

// Subscribe registers fn for change notifications. The returned func removes it.
func (s *State) Subscribe(fn func(Mode)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Persistent reports whether changes are still being written to the store.
func (s *State) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.inMemory
}

// persistLocked writes the mode. After the first failure the session stays in memory.
func (s *State) persistLocked() {
	if s.inMemory {
		return
	}
	if err := s.store.Set(PreferenceKey, string(s.mode)); err != nil {
		s.inMemory = true
		s.logger.Debug("theme preference not persisted; keeping it in memory", zap.Error(err))
	}
}
