package token

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// wireToken is the serialised token form. JSON input is accepted as well,
// since JSON is valid YAML.
type wireToken struct {
	Text  *string    `yaml:"text"`
	Field string     `yaml:"field,omitempty"`
	Style *wireStyle `yaml:"style,omitempty"`
}

type wireStyle struct {
	Foreground string `yaml:"fg,omitempty"`
	Background string `yaml:"bg,omitempty"`
	Separator  string `yaml:"sep,omitempty"`
}

// ReadFile decodes a token stream from disk.
func ReadFile(path string) ([]Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a sequence of tokens:
//
//	- {text: "venv1", field: env_name}
//	- {text: "main", field: gitstatus, style: {bg: "#FF6F61"}}
//	- {text: "\n"}
//
// A token without a text key is malformed. Empty input yields no tokens.
func Decode(r io.Reader) ([]Token, error) {
	var wire []wireToken
	if err := yaml.NewDecoder(r).Decode(&wire); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode tokens: %w", err)
	}

	tokens := make([]Token, 0, len(wire))
	for i, w := range wire {
		if w.Text == nil {
			return nil, fmt.Errorf("token %d: %w: missing text", i, ErrMalformedToken)
		}
		tok := Token{Value: Text(*w.Text), Field: w.Field}
		if w.Style != nil {
			tok.Value = Rich{
				Text:       *w.Text,
				Foreground: w.Style.Foreground,
				Background: w.Style.Background,
				Separator:  w.Style.Separator,
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
