// Package handlers turns checked questions into runtime handlers.
//
// A handler owns the widget for one question, extracts and converts its
// value, runs the question's validators and renders the value for
// summaries. Question types are looked up by name in a Registry; Builtins
// provides input, password, repassword, text, selectone, selectmany,
// maskedinput, date and daterange.
package handlers
