package icer

import (
	"errors"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "RESULT_OK"},
		{StatusIntegerOverflow, "INTEGER_OVERFLOW"},
		{StatusOutputBufTooSmall, "OUTPUT_BUF_TOO_SMALL"},
		{StatusTooManySegments, "TOO_MANY_SEGMENTS"},
		{StatusTooManyStages, "TOO_MANY_STAGES"},
		{StatusByteQuotaExceeded, "BYTE_QUOTA_EXCEEDED"},
		{StatusBitplaneOutOfRange, "BITPLANE_OUT_OF_RANGE"},
		{StatusDecoderOutOfData, "DECODER_OUT_OF_DATA"},
		{StatusDecodedInvalidData, "DECODED_INVALID_DATA"},
		{StatusPacketCountExceeded, "PACKET_COUNT_EXCEEDED"},
		{StatusFatalError, "FATAL_ERROR"},
		{StatusInvalidInput, "INVALID_INPUT"},
		{Status(-12), "Status(-12)"},
		{Status(3), "Status(3)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
		if known := tt.status.Known(); known != (tt.status >= -11 && tt.status <= 0) {
			t.Errorf("Status(%d).Known() = %v", int(tt.status), known)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{
			err:  &Error{Stage: StageProbe, Status: StatusDecoderOutOfData},
			want: "icer: image dimensions failed: DECODER_OUT_OF_DATA",
		},
		{
			err:  &Error{Stage: StageDecode, Status: StatusTooManyStages},
			want: "icer: decompression failed: TOO_MANY_STAGES",
		},
		{
			err:  &Error{Stage: StageInit, Status: StatusFatalError, Err: ErrNoNativeCodec},
			want: "icer: init failed: FATAL_ERROR: " + ErrNoNativeCodec.Error(),
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorMatching(t *testing.T) {
	err := error(&Error{Stage: StageAllocate, Status: StatusOutputBufTooSmall, Err: ErrImageTooLarge})

	if !errors.Is(err, StatusOutputBufTooSmall) {
		t.Error("errors.Is should match the status")
	}
	if !errors.Is(err, ErrImageTooLarge) {
		t.Error("errors.Is should match the cause")
	}
	if errors.Is(err, StatusInvalidInput) {
		t.Error("errors.Is matched an unrelated status")
	}

	var st Status
	if !errors.As(err, &st) || st != StatusOutputBufTooSmall {
		t.Errorf("errors.As status = %v", st)
	}
}

func TestStageString(t *testing.T) {
	stages := []Stage{StageInit, StageValidate, StageProbe, StageAllocate, StageDecode, StageConvert}
	seen := make(map[string]bool)
	for _, s := range stages {
		name := s.String()
		if seen[name] {
			t.Errorf("duplicate stage name %q", name)
		}
		seen[name] = true
	}
	if got := Stage(42).String(); got != "Stage(42)" {
		t.Errorf("Stage(42).String() = %q", got)
	}
}
