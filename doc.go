// Package formulary asks users questions in the terminal.
//
// Questions are plain records: a name, a type, an optional default,
// choices, validators and a disabled flag. Defaults, choices and the
// disabled flag can be Literal values or Computed from the answers given
// so far. They can also be loaded from JSON, YAML or TOML files.
//
// Prompt asks one question at a time inline; Wizard shows a full screen
// dialog with one step per question:
//
//	qs := []*formulary.Question{
//		{Name: "name", Type: "input", Validators: []formulary.Validator{
//			formulary.ValidatorFunc(func(v any, _ map[string]any) error { ... }),
//		}},
//		{Name: "color", Type: "selectone", Values: formulary.Literal([]formulary.Choice{
//			{Value: "r", Label: "Red"}, {Value: "b", Label: "Blue"},
//		})},
//	}
//	answers, ok, err := formulary.Prompt(ctx, qs)
//
// A cancelled form returns ok == false and no error. Problems in the
// question list are reported as *DefinitionError before anything is shown.
package formulary
