package validators

import (
	"fmt"
	"strings"
	"time"
)

// strftime directives understood by Layout.
var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'f': "000000",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'z': "-0700",
	'Z': "MST",
	'%': "%",
}

// Layout converts a strftime style pattern ("%Y-%m-%d") into a time layout.
func Layout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			return "", fmt.Errorf("pattern %q ends with a lone %%", pattern)
		}
		i++
		layout, ok := strftimeDirectives[pattern[i]]
		if !ok {
			return "", fmt.Errorf("unsupported directive %%%c in %q", pattern[i], pattern)
		}
		b.WriteString(layout)
	}
	return b.String(), nil
}

// DateTime fails when a non-empty value does not parse with Format.
type DateTime struct {
	Format  string
	layout  string
	Message string
}

// NewDateTime builds the "datetime" validator. Args: format_pattern, message.
func NewDateTime(args Args) (Validator, error) {
	pattern, err := args.String("format_pattern", "%Y-%m-%dT%H:%M:%S")
	if err != nil {
		return nil, err
	}
	layout, err := Layout(pattern)
	if err != nil {
		return nil, err
	}
	msg, err := args.message("this field is not a valid datetime")
	if err != nil {
		return nil, err
	}
	return &DateTime{Format: pattern, layout: layout, Message: msg}, nil
}

func (d *DateTime) Validate(value any, _ map[string]any) error {
	if _, ok := value.(time.Time); ok {
		return nil
	}
	s := toString(value)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(d.layout, s); err != nil {
		return &ValidationError{Message: d.Message}
	}
	return nil
}

// DateTimeRange checks a {"from": ..., "to": ...} value: each present side
// must parse with Format, and from must not be after to.
type DateTimeRange struct {
	Format  string
	layout  string
	Message string
}

// NewDateTimeRange builds the "datetimerange" validator.
// Args: format_pattern, message.
func NewDateTimeRange(args Args) (Validator, error) {
	pattern, err := args.String("format_pattern", "%Y-%m-%d")
	if err != nil {
		return nil, err
	}
	layout, err := Layout(pattern)
	if err != nil {
		return nil, err
	}
	msg, err := args.message("this field is not a valid datetime range")
	if err != nil {
		return nil, err
	}
	return &DateTimeRange{Format: pattern, layout: layout, Message: msg}, nil
}

func (d *DateTimeRange) Validate(value any, _ map[string]any) error {
	if value == nil {
		return nil
	}
	var from, to any
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		from, to = v["from"], v["to"]
	case map[string]string:
		if len(v) == 0 {
			return nil
		}
		from, to = v["from"], v["to"]
	default:
		return &ValidationError{Message: d.Message}
	}

	start, okFrom, err := d.parse(from)
	if err != nil {
		return err
	}
	end, okTo, err := d.parse(to)
	if err != nil {
		return err
	}
	if okFrom && okTo && start.After(end) {
		return &ValidationError{Message: d.Message}
	}
	return nil
}

func (d *DateTimeRange) parse(v any) (time.Time, bool, error) {
	if t, ok := v.(time.Time); ok {
		return t, true, nil
	}
	s := toString(v)
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(d.layout, s)
	if err != nil {
		return time.Time{}, false, &ValidationError{Message: d.Message}
	}
	return t, true, nil
}
