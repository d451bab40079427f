// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texerr defines the error kinds raised by the typesetting core.
package texerr

import "fmt"

// Kind classifies a core error.
type Kind int

const (
	// FontNotFound means the metrics oracle could not locate a font.
	FontNotFound Kind = iota
	// MalformedSource means the parser detected a structural violation.
	MalformedSource
	// InvariantViolation means an internal post-condition was broken.
	InvariantViolation
	// DimensionOverflow means sp arithmetic exceeded representable range.
	DimensionOverflow
)

func (k Kind) String() string {
	switch k {
	case FontNotFound:
		return "font not found"
	case MalformedSource:
		return "malformed source"
	case InvariantViolation:
		return "invariant violation"
	case DimensionOverflow:
		return "dimension overflow"
	default:
		return "unknown error kind"
	}
}

// Error is the error type raised throughout the core. All four kinds from
// the design share this type so callers can dispatch with errors.Is against
// an *Error of the wanted Kind (see Is).
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, allowing
// errors.Is(err, texerr.New(FontNotFound, "")) style sentinel matching.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an Error of the given kind wrapping cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
