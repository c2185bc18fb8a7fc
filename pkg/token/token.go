// Package token defines the prompt token stream consumed by the renderer.
// Field computations produce tokens; renderers decide presentation.
package token

import (
	"errors"
	"fmt"
)

// ErrMalformedToken reports a token that cannot be rendered.
var ErrMalformedToken = errors.New("malformed token")

// Value is the result of a field computation: either bare Text or Rich
// text carrying its own styling. The set of values is closed.
type Value interface {
	String() string
	value()
}

// Text is a bare field value.
type Text string

func (Text) value() {}

func (t Text) String() string { return string(t) }

// Rich is a field value with styling that overrides the field's registered
// style for a single render. Empty attributes defer to the registered style,
// except that a set Background without Foreground derives a contrasting one.
type Rich struct {
	Text       string
	Foreground string
	Background string
	Separator  string
}

func (Rich) value() {}

func (r Rich) String() string { return r.Text }

// Token is one fragment of a prompt template expansion.
type Token struct {
	Value Value
	// Field is the name of the field that produced the value, or empty for
	// literal template text.
	Field string
}

// New returns a bare text token.
func New(text, field string) Token {
	return Token{Value: Text(text), Field: field}
}

// Literal returns a token for template text outside any field.
func Literal(text string) Token {
	return Token{Value: Text(text)}
}

// Text returns the token's text. A malformed token has no text.
func (t Token) Text() string {
	if t.Value == nil {
		return ""
	}
	return t.Value.String()
}

// Validate reports whether the token can be rendered.
func (t Token) Validate() error {
	if t.Value == nil {
		return fmt.Errorf("%w: missing value (field %q)", ErrMalformedToken, t.Field)
	}
	return nil
}

// Validate checks every token of a stream, reporting the first failure with
// its position.
func Validate(tokens []Token) error {
	for i, tok := range tokens {
		if err := tok.Validate(); err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
	}
	return nil
}
