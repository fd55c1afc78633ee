// Package errors provides structured error types for rofi-tmuxp.
// These errors carry which operation failed and what category of failure it
// was, so the session catalog can tell a validation failure from a parse
// failure without string matching.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindParse
	KindIO
	KindConfig
	KindSpawn
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindParse:
		return "parse error"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindSpawn:
		return "spawn error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for rofi-tmuxp.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MissingSessionName is the message attached to configs without a session_name.
const MissingSessionName = "No session name configured"

// Session config errors
func ConfigMissingSessionName() error {
	return E(Op("session.Load"), KindInvalid, MissingSessionName)
}

func ConfigReadFailed(path string, err error) error {
	return E(Op("tmuxp.ReadFile"), KindIO, fmt.Sprintf("failed to read %s", path), err)
}

func ConfigParseFailed(path string, err error) error {
	return E(Op("tmuxp.ReadFile"), KindParse, fmt.Sprintf("failed to parse %s", path), err)
}

// UnsafeTag reports a YAML node carrying a tag outside the core schema.
func UnsafeTag(tag string, line, column int) error {
	return E(Op("tmuxp.checkTags"), KindParse,
		fmt.Sprintf("ConstructorError: could not determine a constructor for the tag %q (line %d, column %d)", tag, line, column))
}

// Lookup errors
func SessionNotFound(name string) error {
	return E(Op("session.Lookup"), KindNotFound, "No such session: "+name)
}

// Settings errors
func SettingsLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load settings from %s", path), err)
}

func SettingsInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Process errors
func SpawnFailed(name string, err error) error {
	return E(Op("process.Start"), KindSpawn, fmt.Sprintf("failed to start %s", name), err)
}
