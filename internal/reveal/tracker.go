// Package reveal tracks one-shot visibility of content blocks in a scrolling viewport.
//
// Each observed block is a record in an arena keyed by block id. In trigger-once
// mode a record flips from Pending to Visible the first time the block
// intersects the margin-adjusted viewport and is never evaluated again.
package reveal

import (
	"errors"
	"fmt"
	"sort"
)

// State is a block's reveal state.
type State int

const (
	Pending State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "pending"
}

// Options configures one observation.
type Options struct {
	TriggerOnce bool
	RootMargin  string
}

// Bounds is a block's vertical extent in content rows.
type Bounds struct {
	Top    int
	Height int
}

// Viewport is the visible window in content rows.
type Viewport struct {
	Top    int
	Height int
}

// Event reports a state change for one block.
type Event struct {
	ID    string
	State State
}

// Intersector decides whether a block is inside the viewport.
type Intersector interface {
	Intersects(b Bounds, vp Viewport, m Margin) bool
}

// RowIntersector intersects row ranges. Zero-height blocks count as one row.
// A negative margin never shrinks the viewport below one row.
type RowIntersector struct{}

// Intersects implements Intersector.
func (RowIntersector) Intersects(b Bounds, vp Viewport, m Margin) bool {
	top := vp.Top - m.Top.Rows(vp.Height)
	bottom := vp.Top + vp.Height + m.Bottom.Rows(vp.Height)
	if bottom-top < 1 {
		mid := vp.Top + vp.Height/2
		top, bottom = mid, mid+1
	}
	h := b.Height
	if h < 1 {
		h = 1
	}
	return b.Top < bottom && b.Top+h > top
}

// ErrAlreadyObserved is returned when observing an id twice.
var ErrAlreadyObserved = errors.New("already observed")

type record struct {
	opts   Options
	margin Margin
	state  State
	done   bool
	ch     chan State
}

// Tracker is the arena of observed blocks. It is not safe for concurrent use;
// it lives on the Bubble Tea update loop.
type Tracker struct {
	intersector Intersector
	records     map[string]*record
}

// NewTracker returns a Tracker using in, or RowIntersector when in is nil.
func NewTracker(in Intersector) *Tracker {
	if in == nil {
		in = RowIntersector{}
	}
	return &Tracker{intersector: in, records: make(map[string]*record)}
}

// Observe starts tracking id. The returned stream receives state changes; in
// trigger-once mode it receives exactly one Visible and is then closed.
// Unobserve and Close also close it.
func (t *Tracker) Observe(id string, opts Options) (<-chan State, error) {
	if _, ok := t.records[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyObserved, id)
	}
	m, err := ParseMargin(opts.RootMargin)
	if err != nil {
		return nil, err
	}
	r := &record{opts: opts, margin: m, ch: make(chan State, 1)}
	t.records[id] = r
	return r.ch, nil
}

// Unobserve stops tracking id and releases its record.
func (t *Tracker) Unobserve(id string) {
	r, ok := t.records[id]
	if !ok {
		return
	}
	r.close()
	delete(t.records, id)
}

// Close releases every record.
func (t *Tracker) Close() {
	for id := range t.records {
		t.Unobserve(id)
	}
}

// Len returns the number of live records.
func (t *Tracker) Len() int { return len(t.records) }

// State returns id's current state. Unknown ids are Pending.
func (t *Tracker) State(id string) State {
	if r, ok := t.records[id]; ok {
		return r.state
	}
	return Pending
}

// Update evaluates every observed block present in bounds against vp and
// returns the resulting state changes ordered top to bottom.
func (t *Tracker) Update(bounds map[string]Bounds, vp Viewport) []Event {
	type hit struct {
		Event
		top int
	}
	var hits []hit
	for id, r := range t.records {
		if r.done {
			continue
		}
		b, ok := bounds[id]
		if !ok {
			continue
		}
		next := Pending
		if t.intersector.Intersects(b, vp, r.margin) {
			next = Visible
		}
		if next == r.state {
			continue
		}
		r.state = next
		r.emit(next)
		if r.opts.TriggerOnce {
			r.done = true
			r.close()
		}
		hits = append(hits, hit{Event: Event{ID: id, State: next}, top: b.Top})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].top != hits[j].top {
			return hits[i].top < hits[j].top
		}
		return hits[i].ID < hits[j].ID
	})
	events := make([]Event, len(hits))
	for i, h := range hits {
		events[i] = h.Event
	}
	return events
}

// emit delivers s, replacing an unread older state.
func (r *record) emit(s State) {
	if r.ch == nil {
		return
	}
	select {
	case <-r.ch:
	default:
	}
	r.ch <- s
}

func (r *record) close() {
	if r.ch != nil {
		close(r.ch)
		r.ch = nil
	}
}
