package ui

// FocusManager tracks and rotates focus across the focusable controls of a
// page (the contact form's fields and submit button).
type FocusManager struct {
	Current  string   // ID of the focused control; "" when nothing is focused
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next control in order and returns its ID.
// From no focus it lands on the first control.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous control in order and returns its ID.
// From no focus it lands on the last control.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

func (f *FocusManager) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+delta)%n + n) % n
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses the control with the given ID.
// Returns false, leaving focus unchanged, if the ID is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Blur removes focus.
func (f *FocusManager) Blur() {
	f.set("")
}

// Focused reports whether any control has focus.
func (f *FocusManager) Focused() bool {
	return f.Current != ""
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
