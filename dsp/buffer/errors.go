package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidBuffer is the sentinel every ValidationError unwraps to.
var ErrInvalidBuffer = errors.New("buffer: invalid audio buffer")

// Precondition identifies which buffer invariant was violated.
type Precondition int

const (
	PreconditionNone Precondition = iota
	PreconditionNilBuffer
	PreconditionNoChannels
	PreconditionZeroLength
	PreconditionRaggedChannels
	PreconditionSampleRate
	PreconditionNonFinite
)

// String returns a short name for the precondition.
func (p Precondition) String() string {
	switch p {
	case PreconditionNone:
		return "none"
	case PreconditionNilBuffer:
		return "nil-buffer"
	case PreconditionNoChannels:
		return "no-channels"
	case PreconditionZeroLength:
		return "zero-length"
	case PreconditionRaggedChannels:
		return "ragged-channels"
	case PreconditionSampleRate:
		return "sample-rate"
	case PreconditionNonFinite:
		return "non-finite-sample"
	default:
		return fmt.Sprintf("precondition(%d)", int(p))
	}
}

// ValidationError reports a buffer that cannot be processed.
type ValidationError struct {
	Precondition Precondition
	Channel      int
	Frame        int
	Detail       string
}

func (e *ValidationError) Error() string {
	switch e.Precondition {
	case PreconditionRaggedChannels:
		return fmt.Sprintf("buffer: %s: channel %d: %s", e.Precondition, e.Channel, e.Detail)
	case PreconditionNonFinite:
		return fmt.Sprintf("buffer: %s: channel %d frame %d: %s", e.Precondition, e.Channel, e.Frame, e.Detail)
	default:
		return fmt.Sprintf("buffer: %s: %s", e.Precondition, e.Detail)
	}
}

// Unwrap lets errors.Is(err, ErrInvalidBuffer) match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidBuffer
}

// PreconditionOf extracts the violated precondition from err, or
// PreconditionNone if err is not a ValidationError.
func PreconditionOf(err error) Precondition {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Precondition
	}

	return PreconditionNone
}
