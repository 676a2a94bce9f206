// Package terminal implements the driven platform ports for a terminal
// host. The terminal is neither android nor ios, so native chrome and
// the broadcast receiver are never used; sharing goes to the clipboard,
// theme detection comes from the environment and the terminal
// background, and hand-off text arrives through CLI flags or stdin.
package terminal
