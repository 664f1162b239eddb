package resample

import "github.com/gogpu/pixbuf/internal/image"

// nearestIndex maps destination index d of n to a source index of m,
// choosing the source pixel that contains the center of d.
func nearestIndex(d, n, m int) int {
	return int((2*uint64(d) + 1) * uint64(m) / (2 * uint64(n)))
}

func nearestRows(dst, src *image.Buffer) func(y0, y1 int) {
	dw, dh := dst.Width(), dst.Height()
	sw, sh := src.Width(), src.Height()

	// Column offsets are the same for every row.
	cols := make([]int, dw)
	for dx := range cols {
		cols[dx] = nearestIndex(dx, dw, sw) * image.BytesPerPixel
	}

	return func(y0, y1 int) {
		for dy := y0; dy < y1; dy++ {
			srow := src.Row(nearestIndex(dy, dh, sh))
			drow := dst.Row(dy)
			for dx, sx := range cols {
				copy(drow[dx*image.BytesPerPixel:dx*image.BytesPerPixel+image.BytesPerPixel], srow[sx:sx+image.BytesPerPixel])
			}
		}
	}
}
