// Package parser reads array literals out of configuration-style text files.
package parser

import (
	"errors"
	"fmt"
)

// ErrMarkerNotFound indicates no line contains the marker substring.
var ErrMarkerNotFound = errors.New("marker not found")

// ErrInvalidLiteral indicates the value is not a numeric list literal.
var ErrInvalidLiteral = errors.New("invalid numeric list literal")

// SyntaxError describes where a literal failed to parse.
type SyntaxError struct {
	// Pos is the byte offset of the offending token within the literal.
	Pos int
	// Token is the offending text, empty when an element is missing.
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v at offset %d: %s", ErrInvalidLiteral, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%v at offset %d: %s: %q", ErrInvalidLiteral, e.Pos, e.Msg, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidLiteral
}

func newSyntaxError(pos int, token, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Token: token, Msg: msg}
}
