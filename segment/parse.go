package segment

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/iw2rmb/durafield/internal/grapheme"
)

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("segment: malformed duration text")

// ParseError describes where the text stopped following the grammar.
type ParseError struct {
	// Offset is the cluster offset at which parsing failed.
	Offset int
	// Segment is the index of the segment being read, or len(specs) for
	// trailing text.
	Segment int
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: segment %d at offset %d: %s", ErrMalformed, e.Segment, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Parse reads one digit run per spec out of text and returns them in order.
//
// The accepted shape is optional leading whitespace followed by
// "<digits><label>" tokens separated by exactly one whitespace cluster.
// Anything else fails with a *ParseError.
func Parse(text string, specs []Spec) ([]string, error) {
	p := tokenizer{clusters: grapheme.Split(text)}
	p.skipSpace()

	values := make([]string, len(specs))
	for i, s := range specs {
		if i > 0 && !p.space() {
			return nil, p.fail(i, "expected a single space before the value")
		}
		digits := p.digits()
		if digits == "" {
			return nil, p.fail(i, "expected digits")
		}
		if !p.literal(s.Label) {
			return nil, p.fail(i, fmt.Sprintf("expected label %q", s.Label))
		}
		values[i] = digits
	}
	if p.pos != len(p.clusters) {
		return nil, p.fail(len(specs), "unexpected trailing text")
	}
	return values, nil
}

// Value returns the digits of segment i.
func Value(text string, specs []Spec, i int) (string, error) {
	if i < 0 || i >= len(specs) {
		return "", fmt.Errorf("%w: segment index %d out of range", ErrMalformed, i)
	}
	values, err := Parse(text, specs)
	if err != nil {
		return "", err
	}
	return values[i], nil
}

type tokenizer struct {
	clusters []string
	pos      int
}

func (p *tokenizer) fail(seg int, reason string) *ParseError {
	return &ParseError{Offset: p.pos, Segment: seg, Reason: reason}
}

func (p *tokenizer) skipSpace() {
	for p.pos < len(p.clusters) && isSpace(p.clusters[p.pos]) {
		p.pos++
	}
}

func (p *tokenizer) space() bool {
	if p.pos < len(p.clusters) && isSpace(p.clusters[p.pos]) {
		p.pos++
		return true
	}
	return false
}

func (p *tokenizer) digits() string {
	start := p.pos
	for p.pos < len(p.clusters) && isDigit(p.clusters[p.pos]) {
		p.pos++
	}
	return grapheme.Join(p.clusters[start:p.pos])
}

func (p *tokenizer) literal(s string) bool {
	want := grapheme.Split(s)
	if p.pos+len(want) > len(p.clusters) {
		return false
	}
	for i, c := range want {
		if p.clusters[p.pos+i] != c {
			return false
		}
	}
	p.pos += len(want)
	return true
}

func isDigit(c string) bool {
	return len(c) == 1 && c[0] >= '0' && c[0] <= '9'
}

func isSpace(c string) bool {
	return strings.TrimFunc(c, unicode.IsSpace) == ""
}
