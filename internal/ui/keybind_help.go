package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over the leader hints live on one route.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	route      string
}

var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap creates a KeyMap for the given registry, handler and route.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, route string) *KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, route: route}
}

func (km *KeyMap) currentSeq() string {
	if km.keyHandler == nil || len(km.keyHandler.Buffer) == 0 {
		return ""
	}
	return strings.Join(km.keyHandler.Buffer, " ")
}

// ShortHelp returns the next keys of the pending leader sequence, sorted,
// followed by esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.LeaderHints(km.currentSeq(), km.route)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns a single column with the ShortHelp bindings.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
func RenderKeybindHelp(keyHandler *KeyHandler, route string, st Styles) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, route)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.Styles.ShortKey = st.Accent
	h.Styles.ShortDesc = st.Muted
	h.Styles.ShortSeparator = st.Muted

	prefix := km.currentSeq()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	box := st.Card.BorderForeground(lipgloss.Color(st.Palette.Primary))
	return box.Render(st.Muted.Render(prefix) + st.Base.Render(" ") + h.ShortHelpView(bindings))
}
