package question

// Answers maps question names to the values accepted so far.
type Answers = map[string]any

// Dynamic is a field that is either a fixed value or computed from the
// answers collected so far. The zero value is unset and resolves to the zero
// value of T.
type Dynamic[T any] struct {
	literal T
	compute func(Answers) T
	set     bool
}

// Literal returns a fixed Dynamic.
func Literal[T any](v T) Dynamic[T] {
	return Dynamic[T]{literal: v, set: true}
}

// Computed returns a Dynamic evaluated against the current answers.
func Computed[T any](fn func(Answers) T) Dynamic[T] {
	if fn == nil {
		return Dynamic[T]{}
	}
	return Dynamic[T]{compute: fn, set: true}
}

// IsSet reports whether the field was given at all.
func (d Dynamic[T]) IsSet() bool {
	return d.set
}

// IsComputed reports whether the field depends on answers.
func (d Dynamic[T]) IsComputed() bool {
	return d.compute != nil
}

// Resolve returns the literal, or the computed value for answers.
func (d Dynamic[T]) Resolve(answers Answers) T {
	if d.compute != nil {
		return d.compute(answers)
	}
	return d.literal
}
