package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"folio/internal/clock"
	"folio/internal/contact"
	"folio/internal/nav"
	"folio/internal/theme"
	"folio/internal/transition"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T, route string, r contact.Relay, width, height int) (*AppModel, *harness) {
	t.Helper()
	fake := clock.NewFake(t0)
	a := NewAppModel(AppOptions{Env: testEnv(t, fake, r), Route: route})
	t.Cleanup(a.Close)
	m := a.AsTeaModel()
	h := newHarness(t, fake, func(msg tea.Msg) tea.Cmd {
		_, cmd := m.Update(msg)
		return cmd
	})
	h.run(m.Init())
	h.send(tea.WindowSizeMsg{Width: width, Height: height})
	h.settle()
	return a, h
}

func TestApp_StartsOnRequestedRoute(t *testing.T) {
	a, _ := newTestApp(t, nav.PathSkills, nil, 120, 40)
	if a.Route() != nav.PathSkills || a.Page().Path() != nav.PathSkills {
		t.Errorf("route=%q page=%q, want /skills", a.Route(), a.Page().Path())
	}
	if a.Navbar.Active() != 2 {
		t.Errorf("active entry = %d, want 2", a.Navbar.Active())
	}

	b, _ := newTestApp(t, "/nowhere", nil, 120, 40)
	if b.Route() != nav.PathHome {
		t.Errorf("unknown start route should fall back to home, got %q", b.Route())
	}
}

func TestApp_UnknownStartRouteIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	env := testEnv(t, clock.NewFake(t0), nil)
	env.Logger = zap.New(core)
	a := NewAppModel(AppOptions{Env: env, Route: "/nowhere"})
	t.Cleanup(a.Close)

	if a.Route() != nav.PathHome {
		t.Errorf("route = %q, want home", a.Route())
	}
	entries := logs.FilterMessage("unknown start route; opening home").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d start-route entries, want 1", len(entries))
	}
	if err, ok := entries[0].ContextMap()["error"].(string); !ok || !strings.Contains(err, "/nowhere") {
		t.Errorf("log context = %v, want the rejected path", entries[0].ContextMap())
	}
}

func TestApp_NavigateExitsBeforeMounting(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)
	home := a.Page().(*HomePage)

	h.send(NavigateMsg{Path: nav.PathAbout})
	if a.Route() != nav.PathAbout {
		t.Fatalf("route = %q, want /about immediately", a.Route())
	}
	if a.Navbar.Active() != 1 {
		t.Errorf("navbar active = %d, want 1 as soon as the route changes", a.Navbar.Active())
	}
	if f := a.Frame(); f.Phase != transition.Exiting || f.Page != nav.PathHome {
		t.Errorf("frame = %+v, want home exiting", f)
	}

	h.advance(100 * time.Millisecond)
	if a.Page().Path() != nav.PathHome {
		t.Errorf("about mounted before home finished exiting")
	}

	h.advance(140 * time.Millisecond)
	if a.Page().Path() != nav.PathAbout {
		t.Fatalf("page = %q after exit, want /about", a.Page().Path())
	}
	if !home.sched.Closed() {
		t.Error("home page timers should be cancelled once it unmounts")
	}

	h.advance(400 * time.Millisecond)
	if f := a.Frame(); f.Phase != transition.Idle || f.Opacity != 1 {
		t.Errorf("frame = %+v, want idle and opaque", f)
	}
}

func TestApp_SameRouteIsNoop(t *testing.T) {
	a, h := newTestApp(t, nav.PathAbout, nil, 120, 40)
	page := a.Page()

	h.send(NavigateMsg{Path: nav.PathAbout})
	h.advance(50 * time.Millisecond)
	if a.Frame().Phase != transition.Idle {
		t.Errorf("navigating to the current route started a transition")
	}
	if a.Page() != page {
		t.Error("page was remounted")
	}

	h.send(NavigateMsg{Path: "/nope"})
	if a.Route() != nav.PathAbout {
		t.Errorf("unknown route changed the route to %q", a.Route())
	}
}

func TestApp_LastNavigationWins(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)

	h.send(NavigateMsg{Path: nav.PathAbout})
	h.advance(50 * time.Millisecond)
	h.send(NavigateMsg{Path: nav.PathSkills})
	h.advance(time.Second)

	if a.Route() != nav.PathSkills || a.Page().Path() != nav.PathSkills {
		t.Errorf("route=%q page=%q, want /skills", a.Route(), a.Page().Path())
	}
	if a.Frame().Phase != transition.Idle {
		t.Errorf("frame = %+v, want idle", a.Frame())
	}
}

func TestApp_InputDroppedWhileExiting(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)

	h.send(NavigateMsg{Path: nav.PathAbout})
	// "c" is the home page's contact shortcut; home is fading out and must not react.
	h.send(keyMsg("c"))
	h.advance(time.Second)

	if a.Route() != nav.PathAbout {
		t.Errorf("route = %q, want /about", a.Route())
	}
}

func TestApp_NumberKeysAndStepping(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)

	h.send(keyMsg("4"))
	h.settle()
	if a.Route() != nav.PathProjects {
		t.Errorf("4 -> %q, want /projects", a.Route())
	}

	h.send(keyMsg("l"))
	h.settle()
	if a.Route() != nav.PathExperience {
		t.Errorf("l -> %q, want /experience", a.Route())
	}

	h.send(keyMsg(" "))
	h.send(keyMsg("g"))
	h.send(keyMsg("h"))
	h.settle()
	if a.Route() != nav.PathHome {
		t.Errorf("SPC g h -> %q, want /", a.Route())
	}

	h.send(keyMsg("h"))
	h.settle()
	if a.Route() != nav.PathContact {
		t.Errorf("h from home should wrap to /contact, got %q", a.Route())
	}
}

func TestApp_ThemeToggle(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)

	h.send(keyMsg("t"))
	h.settle()
	if got := a.env.Theme.Get(); got != theme.Light {
		t.Fatalf("theme = %v, want light", got)
	}
	if a.styles.Palette != PaletteFor(theme.Light) {
		t.Error("app styles not updated")
	}
	if p := a.Page().(*HomePage); p.styles.Palette != PaletteFor(theme.Light) {
		t.Error("page not restyled")
	}

	h.send(keyMsg(" "))
	h.send(keyMsg("t"))
	h.settle()
	if got := a.env.Theme.Get(); got != theme.Dark {
		t.Errorf("SPC t: theme = %v, want dark", got)
	}
}

func TestApp_FocusedFieldCapturesKeys(t *testing.T) {
	a, h := newTestApp(t, nav.PathContact, nil, 120, 40)
	page := a.Page().(*ContactPage)

	h.send(FocusContactMsg{})
	if !page.CapturesInput() {
		t.Fatal("expected focused form to capture input")
	}

	h.send(keyMsg("t"))
	h.send(keyMsg("2"))
	h.settle()
	if a.env.Theme.Get() != theme.Dark {
		t.Error("t toggled the theme while typing")
	}
	if a.Route() != nav.PathContact {
		t.Errorf("2 navigated to %q while typing", a.Route())
	}
	if got := page.name.Value(); got != "t2" {
		t.Errorf("name = %q, want t2", got)
	}

	h.send(keyMsg("esc"))
	h.send(keyMsg("t"))
	h.settle()
	if a.env.Theme.Get() != theme.Light {
		t.Error("t should toggle the theme once the form is blurred")
	}
}

func TestApp_SendFailureShowsNotice(t *testing.T) {
	r := &stubRelay{err: errors.New("relay returned 500")}
	a, h := newTestApp(t, nav.PathContact, r, 120, 40)
	page := a.Page().(*ContactPage)
	page.name.SetValue("Ada")
	page.email.SetValue("ada@example.com")
	page.message.SetValue("Hello")

	h.send(keyMsg(" "))
	h.send(keyMsg("c"))
	h.send(keyMsg("s"))
	h.settle()

	if r.count() != 1 {
		t.Fatalf("relay calls = %d, want 1", r.count())
	}
	if a.Overlays.Len() != 1 {
		t.Fatalf("overlays = %d, want the failure notice", a.Overlays.Len())
	}
	if v := a.AsTeaModel().View(); !strings.Contains(v, "Message failed to send") {
		t.Errorf("notice not drawn:\n%s", v)
	}
	if page.Form().Status() != contact.Idle {
		t.Errorf("status = %v, want idle after failure", page.Form().Status())
	}
	if page.name.Value() != "Ada" || page.message.Value() != "Hello" {
		t.Error("fields should be kept after a failure")
	}

	// The notice blocks everything else until dismissed.
	h.send(keyMsg("2"))
	h.settle()
	if a.Route() != nav.PathContact {
		t.Errorf("navigation happened under the notice")
	}
	h.send(keyMsg("enter"))
	if a.Overlays.Len() != 0 {
		t.Error("enter should dismiss the notice")
	}
}

func TestApp_ContactBindingsOnlyOnContact(t *testing.T) {
	r := &stubRelay{}
	a, h := newTestApp(t, nav.PathAbout, r, 120, 40)

	h.send(keyMsg(" "))
	h.send(keyMsg("c"))
	h.send(keyMsg("s"))
	h.settle()
	if r.count() != 0 {
		t.Errorf("SPC c s sent from %s", a.Route())
	}
	if a.KeyHandler.LeaderWaiting {
		t.Error("leader should reset after a dead sequence")
	}
}

func TestApp_LeaderHelpIsDrawn(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)
	h.send(keyMsg(" "))
	v := a.AsTeaModel().View()
	if !strings.Contains(v, "Go to") {
		t.Errorf("leader help missing:\n%s", v)
	}
	if got := len(strings.Split(v, "\n")); got != 40 {
		t.Errorf("view height = %d, want 40", got)
	}
}

func TestApp_NavbarClick(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 120, 40)
	if a.Navbar.Layout() != nav.TopBar {
		t.Fatalf("layout = %v at 120 columns", a.Navbar.Layout())
	}
	var x int
	for _, z := range a.Navbar.zones {
		if z.index == 3 {
			x = z.x0
		}
	}
	h.send(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.settle()
	if a.Route() != nav.PathProjects {
		t.Errorf("click -> %q, want /projects", a.Route())
	}
}

func TestApp_BottomBarBelowBreakpoint(t *testing.T) {
	a, h := newTestApp(t, nav.PathHome, nil, 78, 30)
	if a.Navbar.Layout() != nav.BottomBar {
		t.Fatalf("layout = %v at 78 columns", a.Navbar.Layout())
	}
	// Second cell of the bottom bar's item row.
	h.send(tea.MouseMsg{X: 14, Y: 29, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.settle()
	if a.Route() != nav.PathAbout {
		t.Errorf("bottom click -> %q, want /about", a.Route())
	}

	// The floating toggle sits in the top-right corner.
	h.send(tea.MouseMsg{X: 77, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.settle()
	if a.env.Theme.Get() != theme.Light {
		t.Error("floating toggle did not switch the theme")
	}

	h.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	if a.Navbar.Layout() != nav.TopBar {
		t.Error("layout should switch back on widening")
	}
}
