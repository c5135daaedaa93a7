// Package wizard shows a list of questions as a full screen, multi step
// dialog.
//
// Each question is a step. An optional introduction page comes first and
// an optional summary page last. The step list on the left marks the
// current step and strikes through disabled ones, which Next and Previous
// skip. Next validates the current step and stays put, showing the joined
// messages, when it fails. The primary button reads Finish on the last
// step and completes the dialog.
//
// Dialog holds the state and is usable without a terminal; Model renders
// it with Bubble Tea.
package wizard
