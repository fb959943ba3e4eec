// Package ui renders the portfolio with Bubble Tea.
//
// Building blocks:
//   - View: a screen region with its own init, update and view (Elm-style)
//   - Page: a routed View that can be resized, restyled and torn down
//   - AppModel: navbar, the mounted page and route transitions
//   - OverlayStack: modal views with dismiss keys
//   - FocusManager: rotates focus across form controls
//   - KeyHandler: single keys plus the SPC leader menu, filtered by route
//
// Every timer a page starts runs on its own task.Scheduler, so unmounting a
// page cancels everything it had pending.
package ui
