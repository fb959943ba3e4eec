package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC f" for SPC then f.
// Single keys: "j", "k", "esc", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	routeFilter  map[string][]string // nil/empty = applies on every route
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		routeFilter:  make(map[string][]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
// Use BindWithDesc for human-readable hints in the help view.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies on every route.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForRoutes(seq, cmd, desc, nil)
}

// BindWithDescForRoutes registers a key sequence that is only live on the
// given routes. If routes is nil or empty, the binding applies everywhere.
func (r *KeybindRegistry) BindWithDescForRoutes(seq string, cmd tea.Cmd, desc string, routes []string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(routes) > 0 {
		r.routeFilter[n] = routes
	}
}

// Lookup returns the command for a key sequence on route, or nil if not bound there.
func (r *KeybindRegistry) Lookup(seq, route string) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToRoute(n, route) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefixOn reports whether a binding live on route continues seq
// (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefixOn(seq, route string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) && r.appliesToRoute(k, route) {
			return true
		}
	}
	return false
}

// firstLevelSubmenuLabel maps first-level keys that have sub-bindings to a generic display label.
// Used to avoid showing a specific sub-action (e.g. "Delete project") when the key opens a submenu.
var firstLevelSubmenuLabel = map[string]string{
	"g": "Go to",
	"c": "Contact",
}

// LeaderHints returns hints for SPC-prefixed bindings live on route.
// When currentSeq is empty, returns first-level hints (e.g. "q", "t", "g").
// When currentSeq is e.g. "SPC g", returns next-level hints (e.g. "a", "s").
// For first-level keys with sub-bindings (HasPrefixOn), shows a generic label (e.g. "Go to") instead of a specific sub-action.
func (r *KeybindRegistry) LeaderHints(currentSeq, route string) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToRoute(seq, route) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		key := rest
		if len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefixOn(strings.TrimSuffix(prefix, " ")+" "+key, route) {
			if label, ok := firstLevelSubmenuLabel[key]; ok {
				out[key] = label
			} else {
				out[key] = key + "…"
			}
		} else {
			if d, ok := r.descriptions[seq]; ok && d != "" {
				out[key] = d
			} else {
				out[key] = seq
			}
		}
	}
	return out
}

// appliesToRoute returns true if the binding is live on route.
func (r *KeybindRegistry) appliesToRoute(seq, route string) bool {
	routes, ok := r.routeFilter[seq]
	if !ok || len(routes) == 0 {
		return true
	}
	for _, rt := range routes {
		if rt == route {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // "space" (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
	Route         func() string
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:      reg,
		LeaderKey:     " ", // tea.KeyMsg.String() returns " " for space
		LeaderSeq:     "SPC",
		LeaderWaiting: false,
		Buffer:        nil,
	}
}

func (h *KeyHandler) route() string {
	if h.Route == nil {
		return ""
	}
	return h.Route()
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
// cmd is the command to run, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, nil
		}
		return false, nil
	}

	// Leader key pressed
	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		keyPart := keyToSeqPart(s)
		h.Buffer = append(h.Buffer, keyPart)
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, h.route()); c != nil {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefixOn(seq, h.route()) {
			return true, nil
		}
		h.LeaderWaiting = false
		h.Buffer = nil
		return true, nil
	}

	// Not in leader mode: check single-key bindings
	if c := h.Registry.Lookup(keyToSeqPart(s), h.route()); c != nil {
		return true, c
	}

	return false, nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}
