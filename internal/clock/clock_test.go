package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_AfterFiresOnDeadline(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFake(start)

	ch := f.After(3 * time.Second)
	assert.Equal(t, 1, f.Waiters())

	f.Advance(2999 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}

	f.Advance(time.Millisecond)
	select {
	case got := <-ch:
		assert.Equal(t, start.Add(3*time.Second), got)
	default:
		t.Fatal("did not fire at deadline")
	}
	assert.Equal(t, 0, f.Waiters())
}

func TestFake_NonPositiveDurationFiresImmediately(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	select {
	case <-f.After(0):
	default:
		t.Fatal("expected immediate fire")
	}
	assert.Equal(t, 0, f.Waiters())
}

func TestFake_BlockUntil(t *testing.T) {
	f := NewFake(time.Unix(0, 0))
	done := make(chan struct{})
	go func() {
		f.BlockUntil(2)
		close(done)
	}()
	f.After(time.Second)
	f.After(2 * time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BlockUntil did not return")
	}
}

func TestFake_Next(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewFake(start)
	_, ok := f.Next()
	assert.False(t, ok)

	f.After(2 * time.Second)
	f.After(time.Second)
	next, ok := f.Next()
	assert.True(t, ok)
	assert.Equal(t, start.Add(time.Second), next)

	f.Advance(time.Second)
	next, _ = f.Next()
	assert.Equal(t, start.Add(2*time.Second), next)
}
