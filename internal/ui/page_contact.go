package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/task"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Focus ids on the contact form, in tab order.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
	FieldSubmit  = "submit"
)

const contactMargin = "-100px"

// Submit button labels.
const (
	labelIdle    = "Send Message"
	labelSending = "Sending..."
	labelSent    = "Message Sent!"
)

type spinTickMsg struct{}

// ContactPage shows the contact details next to the message form.
type ContactPage struct {
	*scroller
	info []content.ContactItem

	ctx    context.Context
	cancel context.CancelFunc

	form    *contact.Form
	focus   FocusManager
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spin    spinner.Model
}

var _ Page = (*ContactPage)(nil)

// NewContactPage mounts the contact page. Its in-flight submission is
// cancelled when the page is torn down.
func NewContactPage(env Env) *ContactPage {
	p := &ContactPage{info: content.ContactInfo()}
	h := content.HeadingFor("contact")
	p.scroller = newScroller(env, []block{
		{id: "heading", render: func(w int, st Styles, _ time.Time) string {
			return heading(h.Lead, h.Accent, h.Subtitle, w, st)
		}},
		{id: "info", render: p.renderInfo, reveal: &revealSpec{margin: contactMargin}},
		{id: "form", render: p.renderForm, reveal: &revealSpec{margin: contactMargin, delay: 200 * time.Millisecond}},
	})
	p.ctx, p.cancel = context.WithCancel(p.env.Ctx)
	p.form = contact.New(p.env.Relay, p.sched, p.env.Logger)

	p.name = newContactInput("Your Name")
	p.email = newContactInput("your.email@example.com")
	p.message = textarea.New()
	p.message.Placeholder = "Your message..."
	p.message.ShowLineNumbers = false
	p.message.Prompt = ""
	p.message.SetHeight(5)
	p.message.Cursor.SetMode(cursor.CursorStatic)
	p.spin = spinner.New(spinner.WithSpinner(spinner.Dot))

	p.focus = FocusManager{
		Order:    []string{FieldName, FieldEmail, FieldMessage, FieldSubmit},
		OnChange: p.applyFocus,
	}
	p.applyStyles()
	return p
}

func newContactInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Path implements Page.
func (p *ContactPage) Path() string { return nav.PathContact }

// Init implements View.
func (p *ContactPage) Init() tea.Cmd { return nil }

// SetSize implements Page.
func (p *ContactPage) SetSize(width, height int) tea.Cmd {
	p.width = width
	inner := p.contentWidth() - 8
	p.name.Width = inner - 1
	p.email.Width = inner - 1
	p.message.SetWidth(inner)
	return p.setSize(width, height)
}

// Restyle implements Page.
func (p *ContactPage) Restyle() {
	p.styles = p.env.styles()
	p.applyStyles()
	p.refresh()
}

func (p *ContactPage) applyStyles() {
	st := p.styles
	for _, ti := range []*textinput.Model{&p.name, &p.email} {
		ti.TextStyle = st.Base
		ti.PlaceholderStyle = st.Muted
		ti.Cursor.Style = st.Accent
	}
	p.message.FocusedStyle.Base = st.Base
	p.message.FocusedStyle.Text = st.Base
	p.message.FocusedStyle.Placeholder = st.Muted
	p.message.FocusedStyle.CursorLine = st.Base
	p.message.BlurredStyle = p.message.FocusedStyle
	p.spin.Style = st.Accent
}

// CapturesInput reports whether a form control has focus.
func (p *ContactPage) CapturesInput() bool { return p.focus.Focused() }

// Teardown cancels any in-flight submission and the status revert.
func (p *ContactPage) Teardown() {
	p.cancel()
	p.form.Close()
	p.teardown()
}

// Form exposes the underlying form state.
func (p *ContactPage) Form() *contact.Form { return p.form }

// Focused returns the focused control id, or "".
func (p *ContactPage) Focused() string { return p.focus.Current }

// Focus moves focus to control id.
func (p *ContactPage) Focus(id string) bool {
	ok := p.focus.SetFocus(id)
	p.refresh()
	return ok
}

// SubmitLabel returns the text shown on the submit button.
func (p *ContactPage) SubmitLabel() string {
	switch p.form.Status() {
	case contact.Sending:
		return labelSending
	case contact.Sent:
		return labelSent
	default:
		return labelIdle
	}
}

func (p *ContactPage) applyFocus(_, to string) {
	p.name.Blur()
	p.email.Blur()
	p.message.Blur()
	switch to {
	case FieldName:
		p.name.Focus()
	case FieldEmail:
		p.email.Focus()
	case FieldMessage:
		p.message.Focus()
	}
}

// Update implements View.
func (p *ContactPage) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitContactMsg:
		return p, p.submit()
	case FocusContactMsg:
		p.Focus(FieldName)
		return p, p.scrollTo("form")
	case contact.ResultMsg:
		before := p.form.Status()
		cmd := p.form.Update(msg)
		p.syncInputs(before)
		return p, cmd
	case task.Fired:
		if !p.sched.Owns(msg) {
			return p, nil
		}
		if _, ok := msg.Msg.(spinTickMsg); ok {
			return p, p.spinTick()
		}
		before := p.form.Status()
		if cmd := p.form.Update(msg); cmd != nil || p.form.Status() != before {
			p.refresh()
			return p, cmd
		}
	case tea.KeyMsg:
		if p.focus.Focused() {
			return p, p.focusedKey(msg)
		}
		if msg.String() == "tab" {
			p.focus.Next()
			p.refresh()
			return p, p.scrollTo("form")
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && p.blockAt(msg.Y) == "form" {
			if !p.focus.Focused() {
				p.Focus(FieldName)
			}
			return p, nil
		}
	}
	cmd, _ := p.update(msg)
	return p, cmd
}

func (p *ContactPage) focusedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		p.focus.Next()
		p.refresh()
		return nil
	case "shift+tab":
		p.focus.Prev()
		p.refresh()
		return nil
	case "esc":
		p.focus.Blur()
		p.refresh()
		return nil
	case "ctrl+s":
		return p.submit()
	case "enter":
		switch p.focus.Current {
		case FieldSubmit:
			return p.submit()
		case FieldName, FieldEmail:
			p.focus.Next()
			p.refresh()
			return nil
		}
	}

	var cmd tea.Cmd
	switch p.focus.Current {
	case FieldName:
		p.name, cmd = p.name.Update(msg)
	case FieldEmail:
		p.email, cmd = p.email.Update(msg)
	case FieldMessage:
		p.message, cmd = p.message.Update(msg)
	default:
		return nil
	}
	p.form.SetFields(contact.Fields{
		Name:    p.name.Value(),
		Email:   p.email.Value(),
		Message: p.message.Value(),
	})
	p.refresh()
	return cmd
}

func (p *ContactPage) submit() tea.Cmd {
	p.form.SetFields(contact.Fields{
		Name:    p.name.Value(),
		Email:   p.email.Value(),
		Message: p.message.Value(),
	})
	cmd, err := p.form.Submit(p.ctx)
	if err != nil {
		if !errors.Is(err, contact.ErrInFlight) {
			p.env.Logger.Debug("contact submit rejected", zap.Error(err))
		}
		p.refresh()
		return nil
	}
	p.refresh()
	_, tick := p.sched.After(p.spin.Spinner.FPS, spinTickMsg{})
	return tea.Batch(cmd, tick)
}

// spinTick advances the spinner while a submission is in flight. The
// spinner's own tick command is discarded so the page scheduler owns the timer.
func (p *ContactPage) spinTick() tea.Cmd {
	if p.form.Status() != contact.Sending {
		return nil
	}
	p.spin, _ = p.spin.Update(spinner.TickMsg{ID: p.spin.ID(), Time: p.now()})
	p.refresh()
	_, cmd := p.sched.After(p.spin.Spinner.FPS, spinTickMsg{})
	return cmd
}

// syncInputs copies the form's fields back into the controls after a
// result; a successful send clears them.
func (p *ContactPage) syncInputs(before contact.Status) {
	if before == p.form.Status() {
		return
	}
	f := p.form.Fields()
	p.name.SetValue(f.Name)
	p.email.SetValue(f.Email)
	p.message.SetValue(f.Message)
	p.refresh()
}

// View implements View.
func (p *ContactPage) View() string { return p.view() }

func (p *ContactPage) renderInfo(width int, st Styles, _ time.Time) string {
	lines := []string{st.Title.Render("Contact Information"), ""}
	for _, it := range p.info {
		line := st.Accent.Render(it.Icon+" ") + st.Muted.Render(it.Label+": ") + st.Base.Render(it.Value)
		if it.Href != "" {
			line += st.Hint.Render("  " + it.Href)
		}
		lines = append(lines, line)
	}
	style := st.Card
	if p.hovered == "info" {
		style = st.CardHover
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (p *ContactPage) renderForm(width int, st Styles, _ time.Time) string {
	inner := width - 6
	field := func(id, label, view string) string {
		box := st.Card
		if p.focus.Current == id {
			box = st.CardHover
		}
		return st.Muted.Render(label) + "\n" + box.Width(inner).Render(view)
	}

	button := st.Button
	if p.focus.Current == FieldSubmit {
		button = st.ButtonOn
	}
	label := p.SubmitLabel()
	switch p.form.Status() {
	case contact.Sending:
		label = p.spin.View() + " " + label
	case contact.Sent:
		button = st.ButtonOn.Background(lipgloss.Color(st.Palette.Success))
	}

	parts := []string{
		st.Title.Render("Send a Message"),
		"",
		field(FieldName, "Name", p.name.View()),
		field(FieldEmail, "Email", p.email.View()),
		field(FieldMessage, "Message", p.message.View()),
		"",
		button.Render(label),
	}
	if err := p.form.LastErr(); err != nil {
		parts = append(parts, "", st.Danger.Width(inner).Render(errorText(err)))
	}
	hint := "tab to start typing"
	if p.focus.Focused() {
		hint = "tab/shift+tab move · ctrl+s send · esc leave form"
	}
	parts = append(parts, st.Hint.Render(hint))

	style := st.Card
	if p.hovered == "form" || p.focus.Focused() {
		style = st.CardHover
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func errorText(err error) string {
	switch {
	case errors.Is(err, contact.ErrIncomplete):
		return "Please fill in your name, email and message."
	case errors.Is(err, contact.ErrInvalidEmail):
		return "Please enter a valid email address."
	default:
		return contact.FailureNotice
	}
}
