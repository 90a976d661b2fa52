package tripn

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Cursor tracks the reader's position in the source for diagnostics.
type Cursor struct {
	Filename string
	Line     int
	Col      int
}

func newCursor(name string) Cursor {
	return Cursor{Filename: name, Line: 1, Col: 1}
}

// advance updates the cursor after c has been consumed.
func (c *Cursor) advance(ch byte) {
	if ch == '\n' {
		c.Line++
		c.Col = 0
		return
	}
	c.Col++
}

// ErrorKind classifies a failure the way §7 of the specification does.
type ErrorKind int

const (
	// ErrBadArg classifies bad input to a public call. No function in this
	// package reports it: ToPath's error for an unsupported URI scheme is
	// a plain error value, not a *SyntaxError of this kind.
	ErrBadArg ErrorKind = iota + 1
	// ErrBadSyntax signals a malformed document.
	ErrBadSyntax
	// ErrUnknown signals an I/O failure or sink cancellation.
	ErrUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBadArg:
		return "bad argument"
	case ErrBadSyntax:
		return "bad syntax"
	case ErrUnknown:
		return "unknown"
	default:
		return "unspecified"
	}
}

// SyntaxError is returned for every BAD_SYNTAX and UNKNOWN failure
// encountered while reading. It carries the position and kind so callers
// can distinguish a cancelled sink from a genuine parse failure.
type SyntaxError struct {
	Cursor Cursor
	Kind   ErrorKind
	cause  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Cursor.Filename, e.Cursor.Line, e.Cursor.Col, e.cause)
}

func (e *SyntaxError) Unwrap() error { return e.cause }

// diagnostic logs one error-level entry and returns the corresponding Go
// error. The log entry carries the file, line and column as logrus
// fields rather than in a "<name>:<line>:<col>:" message prefix; the
// returned error's Error() text does have that "<name>:<line>:<col>:
// <message>" form.
func (r *Reader) diagnostic(kind ErrorKind, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	err := &SyntaxError{Cursor: r.cur, Kind: kind, cause: errors.New(msg)}
	r.log.WithFields(logrus.Fields{
		"file": r.cur.Filename,
		"line": r.cur.Line,
		"col":  r.cur.Col,
	}).Errorf("%s: %s", kind, msg)
	return err
}

func (r *Reader) syntaxErr(format string, args ...any) error {
	return r.diagnostic(ErrBadSyntax, format, args...)
}
