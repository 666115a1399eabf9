// Package editor provides the modal editing core for Quill: the authoritative
// cursor/mode state, the viewport mapping document rows onto fixed display
// window slots, and the mode-dependent line split/join edge cases.
//
// Hosts drive it as a Bubble Tea component: feed key input through Update (or
// call the Move/HandleEnter/HandleBackspace operations directly), then render
// from View or from the observable fields (Cx, Cy, Mode, TopRow, PaddingFront,
// Windows). Reconcile restores every display invariant after a mutation and
// must run before each render; Update calls it for you.
package editor
