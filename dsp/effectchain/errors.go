package effectchain

import (
	"errors"
	"fmt"
)

// ErrRenderEngine marks failures inside the processing engine, as opposed
// to invalid input.
var ErrRenderEngine = errors.New("effectchain: render engine failure")

// EngineError reports which stage of a render failed.
type EngineError struct {
	Stage string // "assemble", "process" or "output"
	Node  string // processor name, empty when not tied to a node
	Err   error
}

func (e *EngineError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%v: %s %s: %v", ErrRenderEngine, e.Stage, e.Node, e.Err)
	}

	return fmt.Sprintf("%v: %s: %v", ErrRenderEngine, e.Stage, e.Err)
}

// Unwrap exposes both ErrRenderEngine and the underlying cause to errors.Is.
func (e *EngineError) Unwrap() []error {
	return []error{ErrRenderEngine, e.Err}
}

// IsRetryable reports whether err came from the engine rather than from
// the caller. Invalid buffers, a nil chain and an exceeded frame budget are
// caller errors and fail the same way every time.
func IsRetryable(err error) bool {
	var ee *EngineError
	return errors.As(err, &ee)
}

func engineError(stage, node string, err error) error {
	return &EngineError{Stage: stage, Node: node, Err: err}
}
