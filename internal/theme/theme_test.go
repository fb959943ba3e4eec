package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memStore is an in-memory Store that can be told to fail writes.
type memStore struct {
	values map[string]string
	fail   bool
	writes int
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.writes++
	if m.fail {
		return errors.New("disk full")
	}
	m.values[key] = value
	return nil
}

func TestNew_ReadsPersistedMode(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "light"

	s := New(store, Dark, nil)
	assert.Equal(t, Light, s.Get())
	assert.Zero(t, store.writes, "startup must not write")
}

func TestNew_FallsBackOnMissingOrUnknown(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		fallback Mode
		want     Mode
	}{
		{name: "missing", fallback: Light, want: Light},
		{name: "unknown value", stored: "sepia", fallback: Dark, want: Dark},
		{name: "invalid fallback", fallback: Mode("blue"), want: Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			if tt.stored != "" {
				store.values[PreferenceKey] = tt.stored
			}
			assert.Equal(t, tt.want, New(store, tt.fallback, nil).Get())
		})
	}
}

func TestToggle_DoubleToggleRestoresModeAndPersistedValue(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "dark"
	s := New(store, Light, nil)

	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, "light", store.values[PreferenceKey])

	assert.Equal(t, Dark, s.Toggle())
	assert.Equal(t, Dark, s.Get())
	assert.Equal(t, "dark", store.values[PreferenceKey])
	assert.Equal(t, 2, store.writes, "every change persists")
}

func TestToggle_NotifiesSubscribersSynchronously(t *testing.T) {
	s := New(newMemStore(), Dark, nil)

	var seenA, seenB []Mode
	s.Subscribe(func(m Mode) { seenA = append(seenA, m) })
	cancel := s.Subscribe(func(m Mode) {
		// The new mode is already observable from inside the callback.
		assert.Equal(t, m, s.Get())
		seenB = append(seenB, m)
	})

	s.Toggle()
	assert.Equal(t, []Mode{Light}, seenA)
	assert.Equal(t, []Mode{Light}, seenB)

	cancel()
	s.Toggle()
	assert.Equal(t, []Mode{Light, Dark}, seenA)
	assert.Equal(t, []Mode{Light}, seenB, "cancelled subscriber is not notified")
}

func TestSet_SameModeIsNoop(t *testing.T) {
	store := newMemStore()
	s := New(store, Dark, nil)
	calls := 0
	s.Subscribe(func(Mode) { calls++ })

	s.Set(Dark)
	s.Set(Mode("neon"))
	assert.Zero(t, calls)
	assert.Zero(t, store.writes)
}

func TestPersistenceFailureDegradesToMemory(t *testing.T) {
	store := newMemStore()
	store.fail = true
	s := New(store, Dark, nil)

	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, Light, s.Get(), "in-memory state stays authoritative")
	assert.False(t, s.Persistent())

	store.fail = false
	s.Toggle()
	assert.Equal(t, 1, store.writes, "no further writes after the first failure")
	assert.Equal(t, Dark, s.Get())
}

func TestNilStoreIsMemoryOnly(t *testing.T) {
	s := New(nil, Light, nil)
	assert.False(t, s.Persistent())
	assert.Equal(t, Dark, s.Toggle())
}
