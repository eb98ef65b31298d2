// Package debug provides a global debug logging gate.
package debug

// Enabled controls whether debug logging is active.
var Enabled bool
