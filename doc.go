// Package icer decodes images compressed with ICER, the progressive
// wavelet codec used for spacecraft imagery.
//
// The wavelet and bit-plane reconstruction is done by libicer; this
// package probes the stream header, owns the per-channel sample buffers,
// maps libicer status codes to errors, and converts the reconstructed
// planes to 8-bit pixels.
//
// Decoding with the native library (build with -tags libicer):
//
//	img, err := icer.Decompress(data, &icer.DecodeOptions{
//	    Stages:   4,
//	    Segments: 6,
//	    Filter:   icer.FilterA,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Failures carry the pipeline stage and the libicer status:
//
//	var ierr *icer.Error
//	if errors.As(err, &ierr) && ierr.Stage == icer.StageProbe { ... }
//	if errors.Is(err, icer.StatusDecoderOutOfData) { ... }
//
// Any other engine can be plugged in through the Codec interface:
//
//	dec, err := icer.NewRuntime(myCodec).Init()
//	img, err := dec.Decompress(data, nil)
//
// Encoding is not implemented; Encode always returns ErrNotImplemented.
package icer
