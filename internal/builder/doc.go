// Package builder is the interactive command builder: a Bubble Tea program
// that shows the four parameter inputs next to the rendered rclone commands
// and copies the selected command on request.
//
// # Architecture
//
// The model follows The Elm Architecture like the rest of rcmd's TUI code:
//
//   - Model: the text inputs, focus, selected command and the last copy signals
//   - Update: key presses edit the parameter store or trigger a copy
//   - View: renders every template from a fresh store snapshot
//
// The builder never decides what a command looks like. It reads
// params.Store for values, asks catalog.Catalog to render, and hands the
// chosen string to copier.Controller.
//
// # Copy signals
//
// The controller's timers fire on their own goroutines. Run registers an
// OnChange listener that forwards every transition into the program as a
// SignalMsg, so the view only ever reads signals from the model.
//
// # Focus
//
// Tab cycles remote, key, local path, remote path, then the command list.
// While an input has focus printable keys edit it; single-letter shortcuts
// (?, j, k, q) only apply once focus reaches the command list.
package builder
