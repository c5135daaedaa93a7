// Package prompt asks questions one after the other on an inline terminal
// UI.
//
// Each question is shown until its value passes every validator; failing
// messages are joined and shown under the widget on the next attempt.
// Disabled questions are skipped and contribute no answer. Cancelling
// (esc or ctrl+c) ends the whole run without answers.
package prompt
