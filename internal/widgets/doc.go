// Package widgets contains the interactive components behind each question
// type: text inputs, selection lists, masked inputs and date ranges.
//
// Widgets are not tea.Models. They are owned by a question handler and
// driven by the prompt and wizard models, which route key and mouse
// messages to the focused widget and move focus between widgets and
// buttons using FocusNext and FocusPrev.
package widgets
