package icer

import (
	hwyimage "github.com/ajroetker/go-highway/hwy/contrib/image"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// chromaBias is the offset at which the codec centres the U and V planes.
const chromaBias = 128

// yuvToRGB converts row-major Y, U, V planes of width x height samples to
// interleaved 8-bit RGB.
// U and V are re-centred by chromaBias, then
// R = Y + 1.402 * V
// G = Y - 0.344136 * U - 0.714136 * V
// B = Y + 1.772 * U
// and each channel is clamped to [0, 255] and truncated.
func yuvToRGB(y, u, v []int16, width, height int, pool *workerpool.Pool) []uint8 {
	rgb := make([]uint8, width*height*3)
	if width <= 0 || height <= 0 {
		return rgb
	}

	buf := getFloat64Buf(width, height)
	defer putFloat64Buf(buf)

	yImg, uImg, vImg := buf.imgs[0], buf.imgs[1], buf.imgs[2]
	rImg, gImg, bImg := buf.imgs[3], buf.imgs[4], buf.imgs[5]

	planeToImage(y, yImg, pool)
	planeToImage(u, uImg, pool)
	planeToImage(v, vImg, pool)

	hwyimage.Offset(uImg, uImg, -chromaBias)
	hwyimage.Offset(vImg, vImg, -chromaBias)

	// Same coefficients as the JPEG2000 irreversible transform.
	hwyimage.InverseICT(yImg, uImg, vImg, rImg, gImg, bImg)

	hwyimage.ClampImage(rImg, rImg, 0, 255)
	hwyimage.ClampImage(gImg, gImg, 0, 255)
	hwyimage.ClampImage(bImg, bImg, 0, 255)

	forRows(pool, height, func(start, end int) {
		for row := start; row < end; row++ {
			rRow := rImg.Row(row)
			gRow := gImg.Row(row)
			bRow := bImg.Row(row)
			out := rgb[row*width*3 : (row+1)*width*3]
			for x := range width {
				out[3*x+0] = uint8(rRow[x])
				out[3*x+1] = uint8(gRow[x])
				out[3*x+2] = uint8(bRow[x])
			}
		}
	})
	return rgb
}

// grayToUint8 narrows a single reconstructed plane to 8 bits by clipping
// to [0, 255]. This is a display convention, not a colour transform:
// values outside the range are lost.
func grayToUint8(plane []int16, width, height int, pool *workerpool.Pool) []uint8 {
	gray := make([]uint8, width*height)
	if width <= 0 || height <= 0 {
		return gray
	}
	forRows(pool, height, func(start, end int) {
		src := plane[start*width : end*width]
		dst := gray[start*width : end*width]
		for i, s := range src {
			dst[i] = clampToUint8(int32(s))
		}
	})
	return gray
}

// clampToUint8 clamps a value to [0, 255] range
func clampToUint8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
