//go:build cgo && libicer

package icer

/*
#cgo LDFLAGS: -licer
#include <stddef.h>
#include <stdint.h>

int icer_init(void);
int icer_get_image_dimensions(const uint8_t *datastream, size_t data_length,
                              size_t *image_w, size_t *image_h);
int icer_decompress_image_yuv_uint16(uint16_t *y_channel, uint16_t *u_channel,
                                     uint16_t *v_channel, size_t *image_w,
                                     size_t *image_h, size_t image_bufsize,
                                     const uint8_t *datastream, size_t data_length,
                                     uint8_t stages, int filt, uint8_t segments);
int icer_decompress_image_uint16(uint16_t *image, size_t *image_w, size_t *image_h,
                                 size_t image_bufsize, const uint8_t *datastream,
                                 size_t data_length, uint8_t stages, int filt,
                                 uint8_t segments);
*/
import "C"

import (
	"math"
	"unsafe"
)

// libicer compile-time bounds (ICER_MAX_DECOMP_STAGES, ICER_MAX_SEGMENTS).
const (
	nativeMaxStages   = 6
	nativeMaxSegments = 32
)

type nativeCodec struct{}

// Native returns the codec backed by the libicer shared library.
func Native() Codec {
	return nativeCodec{}
}

func (nativeCodec) Init() error {
	if st := Status(C.icer_init()); st != StatusOK {
		return st
	}
	return nil
}

func (nativeCodec) Limits() Limits {
	return Limits{MaxStages: nativeMaxStages, MaxSegments: nativeMaxSegments}
}

func (nativeCodec) Dimensions(data []byte) (int, int, Status) {
	if len(data) == 0 {
		return 0, 0, StatusDecoderOutOfData
	}
	var w, h C.size_t
	st := Status(C.icer_get_image_dimensions(bytesPtr(data), C.size_t(len(data)), &w, &h))
	if st != StatusOK {
		return 0, 0, st
	}
	return sizeToInt(w, h)
}

func (nativeCodec) DecompressYUV(y, u, v []int16, data []byte, p Params) (int, int, Status) {
	if len(y) == 0 || len(u) != len(y) || len(v) != len(y) {
		return 0, 0, StatusInvalidInput
	}
	if len(data) == 0 {
		return 0, 0, StatusDecoderOutOfData
	}
	var w, h C.size_t
	st := Status(C.icer_decompress_image_yuv_uint16(
		samplesPtr(y), samplesPtr(u), samplesPtr(v),
		&w, &h, C.size_t(len(y)),
		bytesPtr(data), C.size_t(len(data)),
		C.uint8_t(p.Stages), C.int(p.Filter), C.uint8_t(p.Segments),
	))
	if st != StatusOK {
		return 0, 0, st
	}
	return sizeToInt(w, h)
}

func (nativeCodec) Decompress(plane []int16, data []byte, p Params) (int, int, Status) {
	if len(plane) == 0 {
		return 0, 0, StatusInvalidInput
	}
	if len(data) == 0 {
		return 0, 0, StatusDecoderOutOfData
	}
	var w, h C.size_t
	st := Status(C.icer_decompress_image_uint16(
		samplesPtr(plane),
		&w, &h, C.size_t(len(plane)),
		bytesPtr(data), C.size_t(len(data)),
		C.uint8_t(p.Stages), C.int(p.Filter), C.uint8_t(p.Segments),
	))
	if st != StatusOK {
		return 0, 0, st
	}
	return sizeToInt(w, h)
}

// The codec writes signed samples through a uint16_t pointer.
func samplesPtr(s []int16) *C.uint16_t {
	return (*C.uint16_t)(unsafe.Pointer(unsafe.SliceData(s)))
}

func bytesPtr(b []byte) *C.uint8_t {
	return (*C.uint8_t)(unsafe.Pointer(unsafe.SliceData(b)))
}

func sizeToInt(w, h C.size_t) (int, int, Status) {
	if uint64(w) > math.MaxInt32 || uint64(h) > math.MaxInt32 {
		return 0, 0, StatusIntegerOverflow
	}
	return int(w), int(h), StatusOK
}
