// Copyright 2025 go-icer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package icer

import (
	"sync"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/image"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// forRows runs fn over [0, height) either inline or split across pool.
func forRows(pool *workerpool.Pool, height int, fn func(start, end int)) {
	if height <= 0 {
		return
	}
	if pool == nil {
		fn(0, height)
		return
	}
	pool.ParallelFor(height, fn)
}

// planeToImage copies a row-major int16 plane of img's dimensions into
// the SIMD-aligned img, converting each sample to T.
func planeToImage[T hwy.Floats](plane []int16, img *image.Image[T], pool *workerpool.Pool) {
	if img == nil {
		return
	}
	width := img.Width()
	forRows(pool, img.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Row(y)
			src := plane[y*width : (y+1)*width]
			for x, s := range src {
				row[x] = T(s)
			}
		}
	})
}

// imageBufFloat64 holds 6 pooled SIMD-aligned images for the inverse
// color transform (Y, U, V in; R, G, B out).
type imageBufFloat64 struct {
	imgs [6]*image.Image[float64]
	w, h int
}

var float64ImagePool = sync.Pool{New: func() any { return new(imageBufFloat64) }}

func getFloat64Buf(w, h int) *imageBufFloat64 {
	buf := float64ImagePool.Get().(*imageBufFloat64)
	if buf.w != w || buf.h != h {
		for i := range buf.imgs {
			buf.imgs[i] = image.NewImage[float64](w, h)
		}
		buf.w = w
		buf.h = h
	}
	return buf
}

func putFloat64Buf(buf *imageBufFloat64) {
	float64ImagePool.Put(buf)
}
