package ui

import (
	"errors"

	"folio/internal/anim"
	"folio/internal/contact"
	"folio/internal/nav"
	"folio/internal/task"
	"folio/internal/theme"
	"folio/internal/transition"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppOptions configures NewAppModel.
type AppOptions struct {
	Env        Env
	Route      string // initial route; unknown routes start at Home
	Breakpoint int    // width below which the bar moves to the bottom
	Transition transition.Config
}

// AppModel is the root model: navbar, routed page, route transitions and
// overlays. All animation frames run on the app's own scheduler; each page
// owns a separate one that is closed when the page unmounts.
type AppModel struct {
	env   Env
	sched *task.Scheduler

	router     *nav.Router
	transition *transition.Transition
	frame      transition.Frame
	page       Page
	Navbar     *Navbar
	KeyHandler *KeyHandler
	Overlays   OverlayStack

	styles       Styles
	width        int
	height       int
	framePending bool
	unsubscribe  func()
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model with the initial page mounted.
func NewAppModel(opts AppOptions) *AppModel {
	env := opts.Env.withDefaults()
	cfg := opts.Transition
	if cfg == (transition.Config{}) {
		cfg = transition.DefaultConfig()
	}
	router, err := nav.NewRouter(opts.Route)
	if err != nil {
		env.Logger.Debug("unknown start route; opening home", zap.Error(err))
	}
	a := &AppModel{
		env:        env,
		sched:      task.New(env.Ctx, env.Clock),
		router:     router,
		transition: transition.New(cfg, router.Current()),
		frame:      transition.Frame{Page: router.Current(), Opacity: 1},
		Navbar:     NewNavbar(router.Entries(), router.Current(), opts.Breakpoint),
		KeyHandler: NewKeyHandler(newAppRegistry(router.Entries())),
		styles:     env.styles(),
	}
	a.KeyHandler.Route = a.router.Current
	a.page = newPage(router.Current(), env)
	a.unsubscribe = env.Theme.Subscribe(a.onTheme)
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Route returns the active route.
func (a *AppModel) Route() string { return a.router.Current() }

// Page returns the mounted page.
func (a *AppModel) Page() Page { return a.page }

// Frame returns the transition frame last drawn.
func (a *AppModel) Frame() transition.Frame { return a.frame }

// Close tears down the mounted page and stops every app timer.
func (a *AppModel) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.page.Teardown()
	a.sched.Close()
}

func (a *AppModel) onTheme(m theme.Mode) {
	a.styles = StylesFor(m)
	a.page.Restyle()
	a.env.Logger.Debug("theme changed", zap.Stringer("mode", m))
}

// bodyHeight is the rows left for the page between the bars.
func (a *AppModel) bodyHeight() int {
	return max(0, a.height-a.Navbar.HeaderHeight()-a.Navbar.FooterHeight())
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Navbar.SetWidth(msg.Width)
		return a, a.page.SetSize(a.width, a.bodyHeight())
	case NavigateMsg:
		return a, a.navigate(msg.Path)
	case StepRouteMsg:
		return a, a.startTransition(a.router.Step(msg.Delta))
	case ToggleThemeMsg:
		a.env.Theme.Toggle()
		return a, nil
	case contact.FailedMsg:
		a.Overlays.Push(NewNoticeModal(contact.FailureNotice, a.styles).Overlay())
		return a, nil
	case task.Fired:
		if a.sched.Owns(msg) {
			if _, ok := msg.Msg.(frameMsg); ok {
				return a, a.onFrame()
			}
			return a, nil
		}
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}

	v, cmd := a.page.Update(msg)
	if p, ok := v.(Page); ok {
		a.page = p
	}
	return a, cmd
}

// navigate starts a route change. Navigating to the route already shown
// does nothing.
func (a *AppModel) navigate(path string) tea.Cmd {
	if path == a.router.Current() {
		return nil
	}
	if err := a.router.Navigate(path); err != nil {
		if errors.Is(err, nav.ErrUnknownRoute) {
			a.env.Logger.Debug("ignoring navigation", zap.Error(err))
		}
		return nil
	}
	return a.startTransition(path)
}

func (a *AppModel) startTransition(path string) tea.Cmd {
	now := a.sched.Clock().Now()
	a.Navbar.SetPath(path)
	a.transition.Start(path, now)
	a.env.Logger.Debug("route change", zap.String("to", path))
	return a.onFrame()
}

// onFrame advances the transition and navbar indicator, mounting the next
// page once the previous one has fully exited.
func (a *AppModel) onFrame() tea.Cmd {
	a.framePending = false
	now := a.sched.Clock().Now()
	a.frame = a.transition.Advance(now)
	var cmds []tea.Cmd
	if a.frame.Page != a.page.Path() {
		cmds = append(cmds, a.mount(a.frame.Page))
	}
	a.Navbar.Step()
	if a.transition.Active(now) || !a.Navbar.Settled() {
		cmds = append(cmds, a.nextFrame())
	}
	return tea.Batch(cmds...)
}

func (a *AppModel) nextFrame() tea.Cmd {
	if a.framePending {
		return nil
	}
	_, cmd := a.sched.After(anim.FrameInterval, frameMsg{})
	if cmd != nil {
		a.framePending = true
	}
	return cmd
}

func (a *AppModel) mount(path string) tea.Cmd {
	a.page.Teardown()
	a.page = newPage(path, a.env)
	return tea.Batch(a.page.SetSize(a.width, a.bodyHeight()), a.page.Init())
}

// interactive reports whether the mounted page may receive input.
func (a *AppModel) interactive() bool {
	return a.page.Path() == a.router.Current() && a.transition.Interactive(a.sched.Clock().Now())
}

func (a *AppModel) updatePage(msg tea.Msg) tea.Cmd {
	if !a.interactive() {
		return nil
	}
	v, cmd := a.page.Update(msg)
	if p, ok := v.(Page); ok {
		a.page = p
	}
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	st := a.styles
	bg := lipgloss.WithWhitespaceBackground(lipgloss.Color(st.Palette.Background))

	bodyH := a.bodyHeight()
	var help string
	if a.KeyHandler.LeaderWaiting {
		help = RenderKeybindHelp(a.KeyHandler, a.router.Current(), st)
	}
	helpH := 0
	if help != "" {
		helpH = lipgloss.Height(help)
	}

	var body string
	if a.Overlays.Len() > 0 {
		body = a.Overlays.Render(a.width, max(0, bodyH-helpH), st.Palette.Background)
	} else {
		body = a.page.View()
		if a.frame.Opacity < 1 {
			body = anim.Shift(anim.Fade(body, a.frame.Opacity, st.Palette.Foreground, st.Palette.Background), a.frame.Offset)
		}
		h := max(0, bodyH-helpH)
		body = lipgloss.Place(a.width, h, lipgloss.Left, lipgloss.Top,
			lipgloss.NewStyle().MaxHeight(h).Render(body), bg)
	}
	if help != "" {
		body += "\n" + lipgloss.PlaceHorizontal(a.width, lipgloss.Center, help, bg)
	}

	mode := a.env.Theme.Get()
	var out string
	if a.Navbar.Layout() == nav.TopBar {
		out = a.Navbar.View(st, mode) + "\n" + body
	} else {
		out = a.Navbar.FloatingToggle(st, mode) + "\n" + body + "\n" + a.Navbar.View(st, mode)
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, out, bg)
}
