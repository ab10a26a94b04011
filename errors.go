package icer

import (
	"errors"
	"strconv"
)

var (
	ErrNotImplemented = errors.New("icer: encoding not implemented")
	ErrNoNativeCodec  = errors.New("icer: native libicer binding not built (requires cgo and the libicer build tag)")
	ErrImageTooLarge  = errors.New("icer: image dimensions exceed limit")
	ErrNilCodec       = errors.New("icer: nil codec")
)

// Status is a result code reported by the codec. The values match the
// libicer return codes; StatusOK is the only non-error value.
type Status int

const (
	StatusOK                  Status = 0
	StatusIntegerOverflow     Status = -1
	StatusOutputBufTooSmall   Status = -2
	StatusTooManySegments     Status = -3
	StatusTooManyStages       Status = -4
	StatusByteQuotaExceeded   Status = -5
	StatusBitplaneOutOfRange  Status = -6
	StatusDecoderOutOfData    Status = -7
	StatusDecodedInvalidData  Status = -8
	StatusPacketCountExceeded Status = -9
	StatusFatalError          Status = -10
	StatusInvalidInput        Status = -11
)

var statusNames = map[Status]string{
	StatusOK:                  "RESULT_OK",
	StatusIntegerOverflow:     "INTEGER_OVERFLOW",
	StatusOutputBufTooSmall:   "OUTPUT_BUF_TOO_SMALL",
	StatusTooManySegments:     "TOO_MANY_SEGMENTS",
	StatusTooManyStages:       "TOO_MANY_STAGES",
	StatusByteQuotaExceeded:   "BYTE_QUOTA_EXCEEDED",
	StatusBitplaneOutOfRange:  "BITPLANE_OUT_OF_RANGE",
	StatusDecoderOutOfData:    "DECODER_OUT_OF_DATA",
	StatusDecodedInvalidData:  "DECODED_INVALID_DATA",
	StatusPacketCountExceeded: "PACKET_COUNT_EXCEEDED",
	StatusFatalError:          "FATAL_ERROR",
	StatusInvalidInput:        "INVALID_INPUT",
}

// String returns the libicer name of the status, or Status(n) for codes
// outside the known set.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) Error() string {
	return "icer: " + s.String()
}

// Known reports whether s belongs to the closed libicer status set.
func (s Status) Known() bool {
	_, ok := statusNames[s]
	return ok
}

// Stage identifies where in the decode pipeline a failure occurred.
// The codec reuses the same status codes across entry points, so the
// stage is the only way to tell a probe failure from a decode failure.
type Stage int

const (
	StageInit Stage = iota
	StageValidate
	StageProbe
	StageAllocate
	StageDecode
	StageConvert
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageValidate:
		return "validate"
	case StageProbe:
		return "image dimensions"
	case StageAllocate:
		return "allocate"
	case StageDecode:
		return "decompression"
	case StageConvert:
		return "convert"
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// Error is returned by every failing decode step. Status is always
// non-OK; Err carries a non-status cause when there is one (for example
// ErrImageTooLarge or a failed native init).
type Error struct {
	Stage  Stage
	Status Status
	Err    error
}

func (e *Error) Error() string {
	msg := "icer: " + e.Stage.String() + " failed: " + e.Status.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the status and the underlying cause, so that
// errors.Is works against either.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Status, e.Err}
	}
	return []error{e.Status}
}

func statusError(stage Stage, st Status) error {
	return &Error{Stage: stage, Status: st}
}
