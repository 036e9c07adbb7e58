// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Terminal error taxonomy

package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies why an invocation stopped
type Kind int

const (
	// KindUsage covers bad or missing arguments
	KindUsage Kind = iota
	// KindEnvironment covers home directory, workspace and path encoding failures
	KindEnvironment
	// KindToolchain covers a missing compiler or a failed compilation
	KindToolchain
	// KindExecution covers a binary that cannot start or cannot be removed
	KindExecution
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindEnvironment:
		return "environment"
	case KindToolchain:
		return "toolchain"
	case KindExecution:
		return "execution"
	default:
		return "unknown"
	}
}

// Error is a terminal error reported once to the user
type Error struct {
	Kind Kind
	Msg  string // user-facing message, e.g. "Compile failed"
	Hint string // optional extra guidance printed after the message
	Arg  string // offending argument quoted in Msg, highlighted when rendered
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithHint returns a copy of e carrying the given hint
func (e *Error) WithHint(hint string) *Error {
	c := *e
	c.Hint = hint
	return &c
}

// WithArg returns a copy of e that marks arg as the offending token
func (e *Error) WithArg(arg string) *Error {
	c := *e
	c.Arg = arg
	return &c
}

// Usagef creates a usage error
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

// Environment creates an environment error wrapping err
func Environment(msg string, err error) *Error {
	return &Error{Kind: KindEnvironment, Msg: msg, Err: err}
}

// Toolchain creates a toolchain error wrapping err
func Toolchain(msg string, err error) *Error {
	return &Error{Kind: KindToolchain, Msg: msg, Err: err}
}

// Execution creates an execution error wrapping err
func Execution(msg string, err error) *Error {
	return &Error{Kind: KindExecution, Msg: msg, Err: err}
}

// As extracts an *Error from err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
