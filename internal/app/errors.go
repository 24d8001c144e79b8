package app

import (
	"errors"
	"fmt"
)

// Service errors.
var (
	// ErrAlreadyWatching indicates Watch was called while a watch is active.
	ErrAlreadyWatching = errors.New("already watching keybindings file")

	// ErrNoKeybindingsPath indicates an operation needs an override file
	// but none is configured.
	ErrNoKeybindingsPath = errors.New("no keybindings file configured")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "reload", "bind")
	Target string // Target of the operation, usually the override file
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
