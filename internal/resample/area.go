package resample

import "github.com/gogpu/pixbuf/internal/image"

// span lists the source samples covered by one destination sample.
// weights[k] belongs to source index first+k; the weights sum to total.
type span struct {
	first   int
	weights []int64
	total   int64
}

// areaSpans maps n destination samples onto m source samples.
//
// Coordinates are scaled by n so every boundary is an integer: destination d
// covers [d*m, (d+1)*m) and source i covers [i*n, (i+1)*n). Each weight is the
// exact overlap length, so the spans of one axis always total m.
func areaSpans(n, m int) []span {
	spans := make([]span, n)
	nn, mm := int64(n), int64(m)
	for d := range spans {
		lo := int64(d) * mm
		hi := lo + mm
		first := lo / nn
		last := (hi - 1) / nn

		weights := make([]int64, last-first+1)
		for i := first; i <= last; i++ {
			weights[i-first] = min(hi, (i+1)*nn) - max(lo, i*nn)
		}
		spans[d] = span{first: int(first), weights: weights, total: mm}
	}
	return spans
}

func areaRows(dst, src *image.Buffer) func(y0, y1 int) {
	cols := areaSpans(dst.Width(), src.Width())
	rows := areaSpans(dst.Height(), src.Height())

	return func(y0, y1 int) {
		var acc [image.BytesPerPixel]int64
		for dy := y0; dy < y1; dy++ {
			sy := rows[dy]
			drow := dst.Row(dy)
			for dx, sx := range cols {
				clear(acc[:])
				for ky, wy := range sy.weights {
					srow := src.Row(sy.first + ky)
					for kx, wx := range sx.weights {
						w := wx * wy
						o := (sx.first + kx) * image.BytesPerPixel
						for c := range image.BytesPerPixel {
							acc[c] += int64(srow[o+c]) * w
						}
					}
				}

				total := sx.total * sy.total
				o := dx * image.BytesPerPixel
				for c := range image.BytesPerPixel {
					drow[o+c] = uint8((acc[c] + total/2) / total)
				}
			}
		}
	}
}
