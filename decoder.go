package icer

import (
	"image"
	"image/color"
	"io"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

const (
	DefaultStages   = 4
	DefaultSegments = 6
	DefaultFilter   = FilterA
)

// DecodeOptions controls reconstruction. The zero value decodes a colour
// image with the default parameters.
type DecodeOptions struct {
	// Stages is the wavelet decomposition depth used at encode time.
	// 0 means DefaultStages.
	Stages uint8

	// Segments is the number of independently decodable segments the
	// stream was split into. 0 means DefaultSegments.
	Segments uint8

	// Filter is the wavelet kernel used at encode time.
	Filter Filter

	// Grayscale selects the single-plane entry point instead of Y/U/V.
	Grayscale bool

	// MaxPixels rejects streams whose declared area is larger, before any
	// buffer is allocated. 0 means no limit.
	MaxPixels int

	// Pool, when set, splits the colour conversion rows across its
	// workers. The pool is owned by the caller.
	Pool *workerpool.Pool
}

func (o *DecodeOptions) params() Params {
	p := Params{Stages: DefaultStages, Filter: DefaultFilter, Segments: DefaultSegments}
	if o == nil {
		return p
	}
	if o.Stages != 0 {
		p.Stages = o.Stages
	}
	if o.Segments != 0 {
		p.Segments = o.Segments
	}
	p.Filter = o.Filter
	return p
}

// Decoder decodes ICER streams through an initialized codec. Obtain one
// from Runtime.Init or Default. A Decoder keeps no per-call state.
type Decoder struct {
	codec Codec
}

// Dimensions reads the stream header and returns the declared image size
// without allocating reconstruction buffers.
func (d *Decoder) Dimensions(data []byte) (width, height int, err error) {
	if len(data) == 0 {
		return 0, 0, statusError(StageProbe, StatusDecoderOutOfData)
	}
	w, h, st := d.codec.Dimensions(data)
	if st != StatusOK {
		return 0, 0, statusError(StageProbe, st)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, statusError(StageProbe, StatusDecodedInvalidData)
	}
	return w, h, nil
}

// Decompress reconstructs the image in data. On failure no image is
// returned, and the *Error reports the stage and codec status.
func (d *Decoder) Decompress(data []byte, opts *DecodeOptions) (*Image, error) {
	p := opts.params()
	if err := d.validate(p); err != nil {
		return nil, err
	}

	width, height, err := d.Dimensions(data)
	if err != nil {
		return nil, err
	}

	var (
		gray      bool
		maxPixels int
		pool      *workerpool.Pool
	)
	if opts != nil {
		gray = opts.Grayscale
		maxPixels = opts.MaxPixels
		pool = opts.Pool
	}

	planes := 3
	if gray {
		planes = 1
	}
	bufs, err := newChannelBuffers(width, height, planes, maxPixels)
	if err != nil {
		return nil, err
	}

	var (
		actualW, actualH int
		st               Status
	)
	if gray {
		actualW, actualH, st = d.codec.Decompress(bufs.planes[0], data, p)
	} else {
		actualW, actualH, st = d.codec.DecompressYUV(bufs.planes[0], bufs.planes[1], bufs.planes[2], data, p)
	}
	if st != StatusOK {
		return nil, statusError(StageDecode, st)
	}

	view, err := bufs.view(actualW, actualH)
	if err != nil {
		return nil, err
	}

	if gray {
		return newImage(grayToUint8(view[0], actualW, actualH, pool), actualW, actualH, 1)
	}
	return newImage(yuvToRGB(view[0], view[1], view[2], actualW, actualH, pool), actualW, actualH, 3)
}

func (d *Decoder) validate(p Params) error {
	if !p.Filter.Valid() {
		return statusError(StageValidate, StatusInvalidInput)
	}
	l, ok := d.codec.(Limiter)
	if !ok {
		return nil
	}
	lim := l.Limits()
	if lim.MaxStages > 0 && p.Stages > lim.MaxStages {
		return statusError(StageValidate, StatusTooManyStages)
	}
	if lim.MaxSegments > 0 && p.Segments > lim.MaxSegments {
		return statusError(StageValidate, StatusTooManySegments)
	}
	return nil
}

// Dimensions returns the declared size of an ICER stream using the
// native codec.
func Dimensions(data []byte) (width, height int, err error) {
	d, err := Default()
	if err != nil {
		return 0, 0, err
	}
	return d.Dimensions(data)
}

// Decompress decodes an ICER stream using the native codec.
//
//	img, err := icer.Decompress(data, &icer.DecodeOptions{Stages: 4, Segments: 6, Filter: icer.FilterA})
func Decompress(data []byte, opts *DecodeOptions) (*Image, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Decompress(data, opts)
}

// Decode reads a whole ICER stream from r and decodes it with the default
// parameters.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := Decompress(data, nil)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeConfig returns the declared dimensions of the stream in r. The
// colour model assumes the default colour decode.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	w, h, err := Dimensions(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:      w,
		Height:     h,
		ColorModel: color.RGBAModel,
	}, nil
}
