package icer

import (
	"fmt"
	"math"
)

// channelBuffers holds the fixed-capacity sample planes handed to the
// codec for a single decode. Every plane has exactly width*height samples
// of the declared image; the codec may fill less.
type channelBuffers struct {
	planes         [][]int16
	declaredWidth  int
	declaredHeight int
}

// newChannelBuffers allocates n zeroed planes for a declared image of
// width x height. maxPixels <= 0 disables the size limit.
func newChannelBuffers(width, height, n, maxPixels int) (*channelBuffers, error) {
	if width <= 0 || height <= 0 {
		return nil, statusError(StageAllocate, StatusInvalidInput)
	}
	if width > math.MaxInt/height {
		return nil, statusError(StageAllocate, StatusIntegerOverflow)
	}
	samples := width * height
	if maxPixels > 0 && samples > maxPixels {
		return nil, &Error{
			Stage:  StageAllocate,
			Status: StatusOutputBufTooSmall,
			Err:    fmt.Errorf("%w: %dx%d > %d pixels", ErrImageTooLarge, width, height, maxPixels),
		}
	}

	b := &channelBuffers{
		planes:         make([][]int16, n),
		declaredWidth:  width,
		declaredHeight: height,
	}
	for i := range b.planes {
		b.planes[i] = make([]int16, samples)
	}
	return b, nil
}

// capacity returns the number of samples per plane.
func (b *channelBuffers) capacity() int {
	return b.declaredWidth * b.declaredHeight
}

// view returns the logical width*height prefix of each plane, after
// checking the reported dimensions against what was allocated.
func (b *channelBuffers) view(width, height int) ([][]int16, error) {
	if width < 0 || height < 0 ||
		width > b.declaredWidth || height > b.declaredHeight {
		return nil, statusError(StageDecode, StatusOutputBufTooSmall)
	}
	n := width * height
	out := make([][]int16, len(b.planes))
	for i, p := range b.planes {
		out[i] = p[:n:n]
	}
	return out, nil
}
