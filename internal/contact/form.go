// Package contact implements the contact form's submission lifecycle:
//
//	idle --submit--> sending --ok--> sent --3s--> idle
//	                        \--err--> failed --> idle (one notice, fields kept)
//
// All transitions happen on the Bubble Tea update loop. The relay call and the
// revert timer run as commands; their results come back as messages.
package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync/atomic"
	"time"

	"folio/internal/relay"
	"folio/internal/task"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RevertAfter is how long the sent confirmation stays up.
const RevertAfter = 3000 * time.Millisecond

// FailureNotice is the text of the blocking notice raised on relay failure.
const FailureNotice = "Message failed to send ❌"

// Status is the submission status.
type Status int

const (
	Idle Status = iota
	Sending
	Sent
	// Failed is never entered: a failed send returns straight to Idle and
	// the error is kept in LastErr.
	Failed
)

func (s Status) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

var (
	// ErrInFlight rejects a submit while the form is not idle.
	ErrInFlight = errors.New("submission already in progress")
	// ErrIncomplete rejects a submit with a blank field.
	ErrIncomplete = errors.New("all fields are required")
	// ErrInvalidEmail rejects a submit whose email does not parse.
	ErrInvalidEmail = errors.New("email address is not valid")
)

// Relay delivers a message. relay.Client satisfies it.
type Relay interface {
	Send(ctx context.Context, m relay.Message) error
}

// Fields are the user-entered values.
type Fields struct {
	Name    string
	Email   string
	Message string
}

func (f Fields) validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrIncomplete
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ResultMsg carries the outcome of a relay call back to the form that made it.
type ResultMsg struct {
	Form uint64
	Gen  uint64
	Err  error
}

// FailedMsg asks the UI to raise the blocking failure notice. It is produced
// exactly once per failed submission.
type FailedMsg struct {
	Err error
}

type revertMsg struct{ gen uint64 }

var forms atomic.Uint64

// Form is the contact form model. Not safe for concurrent use.
type Form struct {
	id     uint64
	relay  Relay
	sched  *task.Scheduler
	logger *zap.Logger

	fields  Fields
	status  Status
	gen     uint64
	revert  task.ID
	lastErr error

	observers []func(Status)
}

// New returns an idle form that sends through r and schedules its revert
// timer on sched.
func New(r Relay, sched *task.Scheduler, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form{id: forms.Add(1), relay: r, sched: sched, logger: logger}
}

// Fields returns the current field values.
func (f *Form) Fields() Fields { return f.fields }

// SetFields replaces the field values. Editing clears the last error.
func (f *Form) SetFields(v Fields) {
	if v != f.fields {
		f.lastErr = nil
	}
	f.fields = v
}

// Status returns the current status.
func (f *Form) Status() Status { return f.status }

// LastErr returns the most recent submit or relay error, until the next edit.
func (f *Form) LastErr() error { return f.lastErr }

// OnStatus registers fn to observe every status change.
func (f *Form) OnStatus(fn func(Status)) {
	f.observers = append(f.observers, fn)
}

// Submit starts sending the current fields. It returns the command that
// performs the relay call, or an error when the submit is rejected; a
// rejected submit makes no relay call.
func (f *Form) Submit(ctx context.Context) (tea.Cmd, error) {
	if f.status != Idle {
		return nil, ErrInFlight
	}
	if err := f.fields.validate(); err != nil {
		f.lastErr = err
		return nil, err
	}
	f.gen++
	f.lastErr = nil
	f.setStatus(Sending)

	msg := relay.Message{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(f.fields.Name),
		Email: strings.TrimSpace(f.fields.Email),
		Body:  f.fields.Message,
	}
	f.logger.Debug("submitting contact form", zap.String("id", msg.ID))
	form, gen, r := f.id, f.gen, f.relay
	return func() tea.Msg {
		return ResultMsg{Form: form, Gen: gen, Err: r.Send(ctx, msg)}
	}, nil
}

// Update handles relay results and the revert timer. Messages from other
// forms or older submissions are ignored.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResultMsg:
		if msg.Form != f.id || msg.Gen != f.gen || f.status != Sending {
			return nil
		}
		return f.resolve(msg.Err)
	case task.Fired:
		if f.sched == nil || !f.sched.Owns(msg) {
			return nil
		}
		if rv, ok := msg.Msg.(revertMsg); ok && rv.gen == f.gen && f.status == Sent {
			f.setStatus(Idle)
		}
	}
	return nil
}

func (f *Form) resolve(err error) tea.Cmd {
	if err != nil {
		f.logger.Info("contact submission failed", zap.Error(err))
		f.lastErr = err
		f.setStatus(Idle)
		return func() tea.Msg { return FailedMsg{Err: err} }
	}
	f.fields = Fields{}
	f.setStatus(Sent)
	if f.sched == nil {
		return nil
	}
	id, cmd := f.sched.After(RevertAfter, revertMsg{gen: f.gen})
	f.revert = id
	return cmd
}

// Close cancels the pending revert, if any.
func (f *Form) Close() {
	if f.sched != nil && f.revert != 0 {
		f.sched.Cancel(f.revert)
		f.revert = 0
	}
}

func (f *Form) setStatus(s Status) {
	f.status = s
	for _, fn := range f.observers {
		fn(s)
	}
}
