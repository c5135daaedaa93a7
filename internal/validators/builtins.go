package validators

import (
	"fmt"
	"math"
	"net/netip"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Required fails on blank strings, empty lists, and maps that are empty or
// have a blank value. nil always fails; false fails only when Strict is set.
type Required struct {
	Message string
	Strict  bool
}

// NewRequired builds the "required" validator.
func NewRequired(args Args) (Validator, error) {
	msg, err := args.message("this field is required")
	if err != nil {
		return nil, err
	}
	strict, err := args.Bool("strict", false)
	if err != nil {
		return nil, err
	}
	return &Required{Message: msg, Strict: strict}, nil
}

func (r *Required) Validate(value any, _ map[string]any) error {
	if present(value, r.Strict) {
		return nil
	}
	return &ValidationError{Message: r.Message}
}

func present(value any, strict bool) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v || !strict
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Map:
		if rv.Len() == 0 {
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !present(iter.Value().Interface(), true) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Regex fails when Expr does not match anywhere in the value, or when it
// does match and Inverse is set.
type Regex struct {
	Expr    *regexp.Regexp
	Inverse bool
	Message string
}

// NewRegex builds the "regex" validator. Args: expr, inverse_match, message.
func NewRegex(args Args) (Validator, error) {
	expr, err := args.String("expr", "")
	if err != nil {
		return nil, err
	}
	if expr == "" {
		return nil, fmt.Errorf("missing argument %q", "expr")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	inverse, err := args.Bool("inverse_match", false)
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("this field does not match %s", expr))
	if err != nil {
		return nil, err
	}
	return &Regex{Expr: re, Inverse: inverse, Message: msg}, nil
}

func (r *Regex) Validate(value any, _ map[string]any) error {
	if r.Expr.MatchString(toString(value)) == r.Inverse {
		return &ValidationError{Message: r.Message}
	}
	return nil
}

// MinLength fails when the value is shorter than Min characters or items.
type MinLength struct {
	Min     int
	Message string
}

// NewMinLength builds the "min-length" validator. Args: min_length, message.
func NewMinLength(args Args) (Validator, error) {
	n, err := args.Int("min_length")
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("the length of this field must be at least %d characters long", n))
	if err != nil {
		return nil, err
	}
	return &MinLength{Min: n, Message: msg}, nil
}

func (m *MinLength) Validate(value any, _ map[string]any) error {
	if n, ok := length(value); !ok || n < m.Min {
		return &ValidationError{Message: m.Message}
	}
	return nil
}

// MaxLength fails when the value is longer than Max characters or items.
type MaxLength struct {
	Max     int
	Message string
}

// NewMaxLength builds the "max-length" validator. Args: max_length, message.
func NewMaxLength(args Args) (Validator, error) {
	n, err := args.Int("max_length")
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("the length of this field must be at most %d characters long", n))
	if err != nil {
		return nil, err
	}
	return &MaxLength{Max: n, Message: msg}, nil
}

func (m *MaxLength) Validate(value any, _ map[string]any) error {
	if n, ok := length(value); !ok || n > m.Max {
		return &ValidationError{Message: m.Message}
	}
	return nil
}

// Number fails unless the value parses as a floating point number.
type Number struct {
	Message string
}

// NewNumber builds the "number" validator.
func NewNumber(args Args) (Validator, error) {
	msg, err := args.message("this field must be a number")
	if err != nil {
		return nil, err
	}
	return &Number{Message: msg}, nil
}

func (n *Number) Validate(value any, _ map[string]any) error {
	if _, ok := toFloat(value); !ok {
		return &ValidationError{Message: n.Message}
	}
	return nil
}

// Integer fails unless the value is an integer. Floats are accepted only
// when they have no fractional part.
type Integer struct {
	Message string
}

// NewInteger builds the "integer" validator.
func NewInteger(args Args) (Validator, error) {
	msg, err := args.message("this field must be an integer")
	if err != nil {
		return nil, err
	}
	return &Integer{Message: msg}, nil
}

func (i *Integer) Validate(value any, _ map[string]any) error {
	if s, ok := value.(string); ok {
		if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return &ValidationError{Message: i.Message}
		}
		return nil
	}
	f, ok := toFloat(value)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return &ValidationError{Message: i.Message}
	}
	return nil
}

// IPv4 fails unless the value is a dotted-quad IPv4 address.
type IPv4 struct {
	Message string
}

// NewIPv4 builds the "ipv4" validator.
func NewIPv4(args Args) (Validator, error) {
	msg, err := args.message("this field must be an IPv4 address")
	if err != nil {
		return nil, err
	}
	return &IPv4{Message: msg}, nil
}

func (v *IPv4) Validate(value any, _ map[string]any) error {
	addr, err := netip.ParseAddr(toString(value))
	if err != nil || !addr.Is4() {
		return &ValidationError{Message: v.Message}
	}
	return nil
}

// Bounds is the shared implementation of the range, min and max validators.
// A nil bound is not checked. Non-numeric values always fail.
type Bounds struct {
	Min     *float64
	Max     *float64
	Message string
}

// NewRange builds the "range" validator. Args: min, max, message.
func NewRange(args Args) (Validator, error) {
	lo, err := args.Float("min")
	if err != nil {
		return nil, err
	}
	hi, err := args.Float("max")
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("this field must be a number between %s and %s",
		formatNumber(lo), formatNumber(hi)))
	if err != nil {
		return nil, err
	}
	return &Bounds{Min: &lo, Max: &hi, Message: msg}, nil
}

// NewMin builds the "min" validator. Args: min, message.
func NewMin(args Args) (Validator, error) {
	lo, err := args.Float("min")
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("this field must be greater or equal to %s", formatNumber(lo)))
	if err != nil {
		return nil, err
	}
	return &Bounds{Min: &lo, Message: msg}, nil
}

// NewMax builds the "max" validator. Args: max, message.
func NewMax(args Args) (Validator, error) {
	hi, err := args.Float("max")
	if err != nil {
		return nil, err
	}
	msg, err := args.message(fmt.Sprintf("this field must be smaller or equal to %s", formatNumber(hi)))
	if err != nil {
		return nil, err
	}
	return &Bounds{Max: &hi, Message: msg}, nil
}

func (b *Bounds) Validate(value any, _ map[string]any) error {
	f, ok := toFloat(value)
	if !ok {
		return &ValidationError{Message: b.Message}
	}
	if b.Min != nil && f < *b.Min {
		return &ValidationError{Message: b.Message}
	}
	if b.Max != nil && f > *b.Max {
		return &ValidationError{Message: b.Message}
	}
	return nil
}
