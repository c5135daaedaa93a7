package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formulary/internal/handlers"
	"github.com/muurk/formulary/internal/question"
)

// Format is a serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat validates a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unknown format %q (valid: json, yaml, toml)", s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot guess the format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// questionsFile is the document shape shared by every format. JSON and
// YAML documents may also be a bare list of questions.
type questionsFile struct {
	Questions []map[string]any `json:"questions" yaml:"questions" toml:"questions"`
}

// DecodeQuestions reads serialized questions from r.
func DecodeQuestions(r io.Reader, f Format) ([]*question.Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	records, err := decodeRecords(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s questions: %w", f, err)
	}
	return question.FromMaps(records)
}

func decodeRecords(data []byte, f Format) ([]map[string]any, error) {
	switch f {
	case TOML:
		var doc questionsFile
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, err
		}
		return doc.Questions, nil

	case JSON:
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			var list []map[string]any
			err := json.Unmarshal(data, &list)
			return list, err
		}
		var doc questionsFile
		err := json.Unmarshal(data, &doc)
		return doc.Questions, err

	case YAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			var list []map[string]any
			err := node.Decode(&list)
			return list, err
		}
		var doc questionsFile
		err := node.Decode(&doc)
		return doc.Questions, err
	}
	return nil, fmt.Errorf("unsupported input format %q", f)
}

// LoadQuestions reads a questions file. An empty format is guessed from the
// extension.
func LoadQuestions(path string, f Format) ([]*question.Question, error) {
	if f == "" {
		var err error
		if f, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open questions file: %w", err)
	}
	defer file.Close()
	return DecodeQuestions(file, f)
}

// EncodeAnswers writes answers to w. Dates become "YYYY-MM-DD" strings,
// other times RFC 3339.
func EncodeAnswers(w io.Writer, answers question.Answers, f Format) error {
	out := plain(answers)
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", f)
}

// plain converts typed answer values to serializable ones.
func plain(v any) any {
	switch v := v.(type) {
	case time.Time:
		if v.Equal(v.Truncate(24 * time.Hour)) {
			return v.UTC().Format(handlers.DateLayout)
		}
		return v.Format(time.RFC3339)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plain(item)
		}
		return out
	}
	return v
}
