package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches a decimal integer or floating point literal.
// Names, hex, nan and inf are rejected.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// closers maps each accepted opening bracket to its closing bracket.
var closers = map[byte]byte{
	'[': ']',
	'(': ')',
}

// ParseNumericList parses a bracketed, comma-separated list of numbers such
// as "[1, 2.5, -3e2]" or "(1, 2)". A single trailing comma is allowed.
// "[]" yields an empty, non-nil slice.
func ParseNumericList(s string) ([]float64, error) {
	lead := len(s) - len(strings.TrimLeft(s, " \t\r\n"))
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, newSyntaxError(lead, "", "empty literal")
	}

	want, ok := closers[s[0]]
	if !ok {
		return nil, newSyntaxError(lead, s[:1], "expected '[' or '('")
	}
	if last := s[len(s)-1]; len(s) < 2 || last != want {
		return nil, newSyntaxError(lead+len(s)-1, string(last), fmt.Sprintf("expected closing %q", want))
	}

	values := []float64{}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return values, nil
	}

	parts := strings.Split(body, ",")
	offset := lead + 1
	for i, part := range parts {
		token := strings.TrimSpace(part)
		pos := offset + len(part) - len(strings.TrimLeft(part, " \t\r\n"))
		offset += len(part) + 1

		if token == "" {
			if i > 0 && i == len(parts)-1 {
				break
			}
			return nil, newSyntaxError(pos, "", "missing element")
		}
		if !numberPattern.MatchString(token) {
			return nil, newSyntaxError(pos, token, "not a number")
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, newSyntaxError(pos, token, "number out of range")
		}
		values = append(values, v)
	}

	return values, nil
}
