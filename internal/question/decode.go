package question

import (
	"errors"
	"fmt"
	"sort"

	"github.com/muurk/formulary/internal/logging"
	"github.com/muurk/formulary/internal/validators"
	"go.uber.org/zap"
)

// known keys of a serialized question; anything else lands in Extra.
var knownKeys = map[string]bool{
	"name": true, "type": true, "message": true, "description": true,
	"label": true, "default": true, "checked": true, "disabled": true,
	"values": true, "validators": true, "mask": true, "placeholder": true,
	"allowed_chars": true, "from_label": true, "to_label": true,
	"multiline": true, "extra_args": true,
}

// FromMaps decodes a list of serialized questions.
func FromMaps(records []map[string]any) ([]*Question, error) {
	qs := make([]*Question, 0, len(records))
	for i, rec := range records {
		q, err := FromMap(rec)
		if err != nil {
			if de, ok := err.(*DefinitionError); ok {
				de.Index = i
			}
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// FromMap decodes one serialized question record as produced by the JSON,
// YAML or TOML decoders.
func FromMap(rec map[string]any) (*Question, error) {
	q := &Question{}
	var err error

	str := func(key string) string {
		if err != nil {
			return ""
		}
		v, ok := rec[key]
		if !ok || v == nil {
			return ""
		}
		s, isStr := v.(string)
		if !isStr {
			err = Errorf(ErrTypeInvalidField, q, "%s must be a string, got %T", key, v)
		}
		return s
	}

	q.Name = str("name")
	q.Type = str("type")
	q.Message = str("message")
	q.Description = str("description")
	q.Label = str("label")
	q.Mask = str("mask")
	q.Placeholder = str("placeholder")
	q.AllowedChars = str("allowed_chars")
	q.FromLabel = str("from_label")
	q.ToLabel = str("to_label")
	if err != nil {
		return nil, err
	}

	if v, ok := rec["multiline"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return nil, Errorf(ErrTypeInvalidField, q, "multiline must be a boolean, got %T", v)
		}
		q.Multiline = b
	}

	if v, ok := rec["disabled"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return nil, Errorf(ErrTypeInvalidDisabled, q, "Disabled flag must be a boolean or callable.")
		}
		q.Disabled = Literal(b)
	}

	if v, ok := rec["default"]; ok {
		q.Default = Literal(v)
	} else if v, ok := rec["checked"]; ok {
		q.Default = Literal(v)
	}

	if v, ok := rec["values"]; ok {
		choices, cerr := ParseChoices(v)
		if cerr != nil {
			return nil, Errorf(ErrTypeInvalidValues, q, "%v", cerr)
		}
		q.Values = Literal(choices)
	}

	if v, ok := rec["validators"]; ok {
		descs, verr := parseValidators(v)
		if verr != nil {
			return nil, Errorf(ErrTypeInvalidValidator, q, "%v", verr)
		}
		q.Validators = descs
	}

	extra := map[string]any{}
	if v, ok := rec["extra_args"]; ok {
		m, isMap := v.(map[string]any)
		if !isMap {
			return nil, Errorf(ErrTypeInvalidField, q, "extra_args must be a mapping, got %T", v)
		}
		for k, val := range m {
			extra[k] = val
		}
	}
	var unknown []string
	for k, val := range rec {
		if !knownKeys[k] {
			extra[k] = val
			unknown = append(unknown, k)
		}
	}
	if len(extra) > 0 {
		q.Extra = extra
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		logQuestionExtras(q.Name, unknown)
	}

	return q, nil
}

// ParseChoices accepts [[value, label], ...], [{"value":..,"label":..}, ...]
// or a plain list of values used as their own labels.
func ParseChoices(v any) ([]Choice, error) {
	list, ok := toList(v)
	if !ok {
		return nil, errors.New("Choices must be a list or tuple of tuples.")
	}
	choices := make([]Choice, 0, len(list))
	for _, item := range list {
		switch c := item.(type) {
		case map[string]any:
			value, hasValue := c["value"]
			if !hasValue {
				return nil, errors.New("every choice must have a value")
			}
			label, hasLabel := c["label"]
			if !hasLabel {
				label = value
			}
			choices = append(choices, Choice{Value: fmt.Sprint(value), Label: fmt.Sprint(label)})
		case Choice:
			choices = append(choices, c)
		default:
			if pair, isList := toList(item); isList {
				if len(pair) != 2 {
					return nil, errors.New("Every choice must be a tuple (value, label)")
				}
				choices = append(choices, Choice{Value: fmt.Sprint(pair[0]), Label: fmt.Sprint(pair[1])})
				continue
			}
			if item == nil {
				return nil, errors.New("Every choice must be a tuple (value, label)")
			}
			s := fmt.Sprint(item)
			choices = append(choices, Choice{Value: s, Label: s})
		}
	}
	return choices, nil
}

func parseValidators(v any) ([]validators.Validator, error) {
	list, ok := toList(v)
	if !ok {
		return nil, errors.New("Validators must be a list or tuple")
	}
	out := make([]validators.Validator, 0, len(list))
	for _, item := range list {
		switch d := item.(type) {
		case string:
			out = append(out, validators.Descriptor{Name: d})
		case map[string]any:
			name, _ := d["name"].(string)
			if name == "" {
				return nil, errors.New("every validator must have a name")
			}
			desc := validators.Descriptor{Name: name}
			if args, ok := d["args"]; ok && args != nil {
				m, isMap := args.(map[string]any)
				if !isMap {
					return nil, fmt.Errorf("validator %q: args must be a mapping", name)
				}
				desc.Args = validators.Args(m)
			}
			out = append(out, desc)
		case validators.Validator:
			out = append(out, d)
		default:
			return nil, fmt.Errorf("unsupported validator entry %T", item)
		}
	}
	return out, nil
}

// toList normalizes the list shapes produced by the decoders.
func toList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	case [][]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	case []Choice:
		out := make([]any, len(l))
		for i, c := range l {
			out[i] = c
		}
		return out, true
	default:
		return nil, false
	}
}

func logQuestionExtras(name string, keys []string) {
	logging.Debug("Extra question keys", zap.String("question", name), zap.Strings("keys", keys))
}
