// Package validators implements field validation for questions.
//
// A Validator is a pure check on a single value. Validators are referenced
// from question files by name through a Descriptor and built by a Registry:
//
//	reg := validators.Builtins()
//	v, err := reg.Resolve(validators.Descriptor{
//	    Name: "range",
//	    Args: validators.Args{"min": -2, "max": 16},
//	})
//
// Built-in names: required, regex, email, url, min-length, max-length,
// number, integer, ipv4, range, min, max, datetime, datetimerange.
//
// Failures are reported as *ValidationError; every other error returned by a
// validator indicates a programming problem. Run applies a list of
// validators and combines all failures.
package validators
