package icer

import (
	"image"
	"io"
)

// EncodeOptions mirrors the parameters an ICER encoder would take.
type EncodeOptions struct {
	Stages    uint8
	Segments  uint8
	Filter    Filter
	Grayscale bool
}

// Encode is not implemented: libicer's compressor is not bound. It always
// returns ErrNotImplemented and writes nothing to w.
func Encode(w io.Writer, img image.Image, opts *EncodeOptions) error {
	return ErrNotImplemented
}
