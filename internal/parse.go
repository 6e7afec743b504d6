package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a literal that is not a valid 32-bit unsigned number.
type ParseError struct {
	Literal string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid instruction literal %q: %v", e.Literal, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseInt parses a numeric literal with an optional 0b, 0o or 0x prefix,
// decimal otherwise.
func ParseInt(literal string) (Word, error) {
	s := strings.ToLower(strings.TrimSpace(literal))
	base := 10
	switch {
	case strings.HasPrefix(s, "0b"):
		base = 2
	case strings.HasPrefix(s, "0o"):
		base = 8
	case strings.HasPrefix(s, "0x"):
		base = 16
	}
	if base != 10 {
		s = s[2:]
	}
	s = strings.ReplaceAll(s, "_", "")

	v, err := strconv.ParseUint(s, base, WordBits)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &ParseError{Literal: literal, Err: err}
	}
	return Word(v), nil
}

// ParseAll parses literals in order into a queue of words.
func ParseAll(literals []string) (*Queue[Word], error) {
	q := &Queue[Word]{}
	for i, lit := range literals {
		w, err := ParseInt(lit)
		if err != nil {
			return nil, fmt.Errorf("literal #%d: %w", i+1, err)
		}
		q.Push(w)
	}
	return q, nil
}
