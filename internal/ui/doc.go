// Package ui contains the Bubble Tea program that presents a menu tree
// full-screen. The Model owns view state only; position in the tree lives in
// a controller.Controller, so both frontends share the same selection rules.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, window resizes). Anything
//     unhandled goes to the selection text input.
//   - Enter validates the typed number (or the highlighted option when nothing
//     was typed) with prompt.MenuIndex, asks the controller for the resulting
//     command, and executes it on the controller's bus.
//   - Selecting a leaf switches to leaf mode; the next enter resets the
//     session to its root. Esc steps back one level and quits at the root.
//
// State ownership:
//   - Cursor and viewport for the menu on screen live in internal/ui/state.Level
//     and are rebuilt whenever the controller moves.
package ui
