package codec

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/muurk/formulary/internal/question"
)

const jsonDoc = `[
  {"name": "name", "type": "input", "validators": ["required"]},
  {"name": "color", "type": "selectone", "values": [["r", "Red"], ["b", "Blue"]], "default": "b"}
]`

const yamlDoc = `
questions:
  - name: name
    type: input
    validators:
      - required
  - name: color
    type: selectone
    values:
      - [r, Red]
      - [b, Blue]
    default: b
`

const tomlDoc = `
[[questions]]
name = "name"
type = "input"
validators = ["required"]

[[questions]]
name = "color"
type = "selectone"
values = [["r", "Red"], ["b", "Blue"]]
default = "b"
`

func TestDecodeQuestions(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"json list", JSON, jsonDoc},
		{"json mapping", JSON, `{"questions": ` + jsonDoc + `}`},
		{"yaml mapping", YAML, yamlDoc},
		{"yaml list", YAML, "- {name: name, type: input, validators: [required]}\n- {name: color, type: selectone, values: [[r, Red], [b, Blue]], default: b}\n"},
		{"toml", TOML, tomlDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := DecodeQuestions(strings.NewReader(tt.doc), tt.format)
			require.NoError(t, err)
			require.Len(t, qs, 2)
			require.Equal(t, "name", qs[0].Name)
			require.Equal(t, "input", qs[0].Type)
			require.Len(t, qs[0].Validators, 1)
			require.Equal(t, "selectone", qs[1].Type)
			require.Equal(t, []question.Choice{{Value: "r", Label: "Red"}, {Value: "b", Label: "Blue"}}, qs[1].Values.Resolve(nil))
			require.Equal(t, "b", qs[1].Default.Resolve(nil))
		})
	}
}

func TestDecodeQuestionsErrors(t *testing.T) {
	_, err := DecodeQuestions(strings.NewReader("{"), JSON)
	require.ErrorContains(t, err, "failed to parse json questions")

	_, err = DecodeQuestions(strings.NewReader(`[{"name": 3}]`), JSON)
	require.True(t, question.IsDefinitionError(err))

	_, err = DecodeQuestions(strings.NewReader("[]"), Format("xml"))
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"q.json", JSON, false},
		{"q.YAML", YAML, false},
		{"q.yml", YAML, false},
		{"dir/q.toml", TOML, false},
		{"q.xml", "", true},
		{"questions", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoadQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDoc), 0o600))

	qs, err := LoadQuestions(path, "")
	require.NoError(t, err)
	require.Len(t, qs, 2)

	_, err = LoadQuestions(filepath.Join(t.TempDir(), "missing.json"), "")
	require.ErrorContains(t, err, "failed to open questions file")
}

func TestEncodeAnswers(t *testing.T) {
	answers := question.Answers{
		"name": "Jo",
		"day":  time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		"span": map[string]any{
			"from": time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			"to":   nil,
		},
		"tags": []string{"a", "b"},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeAnswers(&buf, answers, JSON))
	require.JSONEq(t, `{"name":"Jo","day":"2020-02-01","span":{"from":"2020-01-01","to":null},"tags":["a","b"]}`, buf.String())

	buf.Reset()
	require.NoError(t, EncodeAnswers(&buf, answers, YAML))
	require.YAMLEq(t, "name: Jo\nday: \"2020-02-01\"\nspan:\n  from: \"2020-01-01\"\n  to: null\ntags: [a, b]\n", buf.String())

	require.Error(t, EncodeAnswers(&buf, answers, TOML))
}
