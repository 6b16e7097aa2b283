// Package textguarderr defines the sentinel error kinds shared across
// textguard's packages, following the same pattern as the regex engine's
// own nfa.ErrInvalidPattern/nfa.CompileError: sentinel values for
// errors.Is, plus wrapper types that attach context for errors.As.
package textguarderr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates non-UTF-8 text or undecodable config bytes.
	// The matcher remains usable after this error; only the failing call
	// fails.
	ErrInvalidInput = errors.New("textguard: invalid input")

	// ErrInvalidConfig indicates a structurally valid but semantically
	// invalid configuration (unknown ProcessType bit, unsupported
	// SimMatchType, a regex that fails to compile, ...). Construction
	// fails outright; no partial matcher is ever returned.
	ErrInvalidConfig = errors.New("textguard: invalid config")

	// ErrInternal indicates an unreachable state, such as a tag-table
	// lookup miss after an automaton hit. Calls fail; callers should not
	// retry.
	ErrInternal = errors.New("textguard: internal error")
)

// ConfigError wraps ErrInvalidConfig with the offending table_id and field.
type ConfigError struct {
	TableID uint32
	Field   string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("textguard: invalid config for table_id=%d field=%s: %v", e.TableID, e.Field, e.Err)
	}
	return fmt.Sprintf("textguard: invalid config for table_id=%d: %v", e.TableID, e.Err)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// InputError wraps ErrInvalidInput with a human-readable reason.
type InputError struct {
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("textguard: invalid input: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("textguard: invalid input: %s", e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// InternalError wraps ErrInternal with the operation during which it
// occurred.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("textguard: internal error during %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return ErrInternal }
