// Package engine drives the kiosk display: it polls the content API,
// reconciles the snapshots with user input into one display state, and owns
// the timers (auto-overlay, inactivity) that move the screen on its own.
//
// The state lives behind a single mutex; every poll handler and input method
// composes its full next state before committing, so readers observe either
// the old or the fully-updated snapshot. A playing VVIP always pre-empts
// node and agenda display.
package engine
