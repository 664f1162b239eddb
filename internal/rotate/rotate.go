// Package rotate turns packed pixel buffers by multiples of 90 degrees.
//
// Rotation is a permutation of pixel positions: every source pixel lands on
// exactly one destination pixel and its bytes are copied verbatim.
package rotate

import (
	"github.com/gogpu/pixbuf/internal/image"
	"github.com/gogpu/pixbuf/internal/parallel"
)

// Normalize reduces any number of counter-clockwise quarter turns to 0..3.
func Normalize(quarterTurns int) int {
	return ((quarterTurns % 4) + 4) % 4
}

// Size returns the destination size for rotating a width x height buffer.
func Size(width, height, quarterTurns int) (int, int) {
	if Normalize(quarterTurns)%2 == 1 {
		return height, width
	}
	return width, height
}

// Into writes src rotated counter-clockwise by quarterTurns into dst.
//
// dst must already have the size reported by Size and src's format; callers
// validate that. With W, H the source size the mapping is:
//
//	0: (x, y) -> (x, y)
//	1: (x, y) -> (y, W-1-x)
//	2: (x, y) -> (W-1-x, H-1-y)
//	3: (x, y) -> (H-1-y, x)
func Into(dst, src *image.Buffer, quarterTurns int, pool *parallel.WorkerPool) {
	const bpp = image.BytesPerPixel
	w, h := src.Width(), src.Height()

	var rows func(y0, y1 int)
	switch Normalize(quarterTurns) {
	case 0:
		rows = func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				copy(dst.Row(y), src.Row(y))
			}
		}
	case 1:
		// Destination row dy holds source column W-1-dy, top to bottom.
		rows = func(y0, y1 int) {
			for dy := y0; dy < y1; dy++ {
				drow := dst.Row(dy)
				sx := (w - 1 - dy) * bpp
				for dx := range h {
					srow := src.Row(dx)
					copy(drow[dx*bpp:dx*bpp+bpp], srow[sx:sx+bpp])
				}
			}
		}
	case 2:
		// Destination row dy is source row H-1-dy reversed.
		rows = func(y0, y1 int) {
			for dy := y0; dy < y1; dy++ {
				drow := dst.Row(dy)
				srow := src.Row(h - 1 - dy)
				for dx := range w {
					sx := (w - 1 - dx) * bpp
					copy(drow[dx*bpp:dx*bpp+bpp], srow[sx:sx+bpp])
				}
			}
		}
	case 3:
		// Destination row dy holds source column dy, bottom to top.
		rows = func(y0, y1 int) {
			for dy := y0; dy < y1; dy++ {
				drow := dst.Row(dy)
				sx := dy * bpp
				for dx := range h {
					srow := src.Row(h - 1 - dx)
					copy(drow[dx*bpp:dx*bpp+bpp], srow[sx:sx+bpp])
				}
			}
		}
	}

	parallel.Rows(pool, dst.Height(), rows)
}
