package validators

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Validator checks a single field value. answers holds the answers collected
// so far and may be nil. Implementations return a *ValidationError for
// invalid input and must not modify value.
type Validator interface {
	Validate(value any, answers map[string]any) error
}

// Func adapts a plain function into a Validator.
type Func func(value any, answers map[string]any) error

// Validate calls f.
func (f Func) Validate(value any, answers map[string]any) error {
	return f(value, answers)
}

// ValidationError is a user-facing validation failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Errorf builds a ValidationError with a formatted message.
func Errorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Run applies every validator in order and returns the combined failures,
// or nil when value passes all of them.
func Run(vs []Validator, value any, answers map[string]any) error {
	var err error
	for _, v := range vs {
		err = multierr.Append(err, v.Validate(value, answers))
	}
	return err
}

// Messages flattens the error returned by Run into display strings.
func Messages(err error) []string {
	errs := multierr.Errors(err)
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	return messages
}

// Descriptor names a registered validator and its arguments, as found in
// serialized question files: {"name": "min-length", "args": {"min_length": 3}}.
//
// An unresolved Descriptor can sit in a question's validator list; it is
// replaced by a real instance when the question list is checked.
type Descriptor struct {
	Name string
	Args Args
}

// Validate fails because a descriptor must be resolved before use.
func (d Descriptor) Validate(any, map[string]any) error {
	return fmt.Errorf("validator %q used before it was resolved", d.Name)
}

// Args holds constructor arguments for a validator factory. Values come from
// JSON, YAML or TOML decoding, so numbers may arrive as int, int64 or float64.
type Args map[string]any

// Has reports whether key is present.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the string argument key, or def when absent.
func (a Args) String(key, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", key, v)
	}
	return s, nil
}

// Bool returns the boolean argument key, or def when absent.
func (a Args) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q must be a boolean, got %T", key, v)
	}
	return b, nil
}

// Float returns the numeric argument key. Numeric strings are accepted.
func (a Args) Float(key string) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("argument %q must be a number, got %v", key, v)
	}
	return f, nil
}

// Int returns the integral argument key.
func (a Args) Int(key string) (int, error) {
	f, err := a.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("argument %q must be an integer, got %v", key, f)
	}
	return int(f), nil
}

// Strings returns the list argument key, or nil when absent.
func (a Args) Strings(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("argument %q must be a list of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("argument %q must be a list of strings, got %T", key, v)
	}
}

// message returns the "message" override or the supplied default.
func (a Args) message(def string) (string, error) {
	return a.String("message", def)
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// length reports the length of strings (in runes), slices, arrays and maps.
func length(value any) (int, bool) {
	if value == nil {
		return 0, true
	}
	if s, ok := value.(string); ok {
		return len([]rune(s)), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
