// Package errs defines the error values shared by the lerc packages.
//
// Failures fall into three groups:
//   - ErrInvalidArgument: detected locally before any engine call (buffer length mismatches)
//   - *StatusError: a recognized non-zero engine status
//   - *UnknownStatusError: any other non-zero engine status, raw code preserved
//
// Use errors.Is against the sentinels to classify an error and errors.As to
// recover the status code.
package errs

import (
	"errors"
	"fmt"
)

// Status is the wire-stable status code returned by a codec engine primitive.
type Status uint32

const (
	StatusOK             Status = 0 // StatusOK means the call succeeded.
	StatusFailed         Status = 1 // StatusFailed is a generic failure.
	StatusWrongParam     Status = 2 // StatusWrongParam means an invalid parameter was passed.
	StatusBufferTooSmall Status = 3 // StatusBufferTooSmall means the output buffer cannot hold the result.
	StatusNaN            Status = 4 // StatusNaN means a NaN was found where it is not supported.
	StatusHasNoData      Status = 5 // StatusHasNoData means the blob holds only no-data values.
)

var (
	ErrInvalidArgument = errors.New("invalid argument: mismatched dimensions or buffer length")

	ErrFailed         = errors.New("operation failed")
	ErrWrongParam     = errors.New("invalid parameter")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrNaN            = errors.New("input data contains NaN values")
	ErrHasNoData      = errors.New("blob contains only no-data values")
	ErrUnknownStatus  = errors.New("unknown status code")
)

// Wire format errors raised inside the built-in engine. They never leave the
// engine boundary as-is; the engine reports them as StatusFailed.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidBlobSize    = errors.New("blob size does not match header")
	ErrChecksumMismatch   = errors.New("blob checksum mismatch")
	ErrInvalidBody        = errors.New("invalid blob body")
	ErrInvalidMaskRuns    = errors.New("invalid mask run data")
	ErrInvalidPackedData  = errors.New("invalid packed value data")
)

var statusErrors = map[Status]error{
	StatusFailed:         ErrFailed,
	StatusWrongParam:     ErrWrongParam,
	StatusBufferTooSmall: ErrBufferTooSmall,
	StatusNaN:            ErrNaN,
	StatusHasNoData:      ErrHasNoData,
}

// IsKnown reports whether s is one of the recognized status codes.
func (s Status) IsKnown() bool {
	if s == StatusOK {
		return true
	}
	_, ok := statusErrors[s]

	return ok
}

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFailed:
		return "Failed"
	case StatusWrongParam:
		return "WrongParam"
	case StatusBufferTooSmall:
		return "BufferTooSmall"
	case StatusNaN:
		return "NaN"
	case StatusHasNoData:
		return "HasNoData"
	default:
		return fmt.Sprintf("Status(%d)", uint32(s))
	}
}

// StatusError reports a recognized non-zero engine status.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lerc engine error: %s", statusErrors[e.Status])
}

// Is matches the sentinel that corresponds to the status.
func (e *StatusError) Is(target error) bool {
	sentinel, ok := statusErrors[e.Status]

	return ok && target == sentinel
}

// Unwrap returns the sentinel for the status.
func (e *StatusError) Unwrap() error {
	return statusErrors[e.Status]
}

// UnknownStatusError reports a non-zero engine status outside the recognized set.
type UnknownStatusError struct {
	Code uint32
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown lerc status code returned: %d", e.Code)
}

// Is matches ErrUnknownStatus.
func (e *UnknownStatusError) Is(target error) bool {
	return target == ErrUnknownStatus
}

// FromStatus converts a raw engine status code into an error.
//
// Returns nil for StatusOK, a *StatusError for recognized codes and an
// *UnknownStatusError carrying the raw code otherwise.
func FromStatus(code uint32) error {
	s := Status(code)
	if s == StatusOK {
		return nil
	}

	if _, ok := statusErrors[s]; ok {
		return &StatusError{Status: s}
	}

	return &UnknownStatusError{Code: code}
}

// StatusOf extracts the engine status carried by err.
//
// Returns StatusOK and false when err carries no engine status.
func StatusOf(err error) (Status, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}

	var ue *UnknownStatusError
	if errors.As(err, &ue) {
		return Status(ue.Code), true
	}

	return StatusOK, false
}
