// Package codec reads question definitions from JSON, YAML or TOML files
// and writes answers as JSON or YAML.
//
// A questions document is either a list of question records or a mapping
// with a "questions" list. TOML documents use the mapping form:
//
//	[[questions]]
//	name = "name"
//	type = "input"
//	validators = ["required"]
package codec
