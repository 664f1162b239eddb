package resample

import "github.com/gogpu/pixbuf/internal/image"

// weightOne is the fixed-point representation of 1.0 for bilinear weights.
const weightOne = 256

// tap describes the two source samples and the weight of the second one
// for one destination coordinate along an axis.
type tap struct {
	i0, i1 int
	w      int // weight of i1 in [0, weightOne]; i0 gets weightOne-w
}

// linearTaps computes taps for n destination samples over m source samples.
//
// The sample position of d is (d+0.5)*m/n - 0.5 in source pixel units. It is
// evaluated as the exact fraction ((2d+1)*m - n) / 2n so that 1:1 scaling
// lands on integer positions with zero weight.
func linearTaps(n, m int) []tap {
	taps := make([]tap, n)
	den := 2 * int64(n)
	for d := range taps {
		num := (2*int64(d)+1)*int64(m) - int64(n)

		i0 := num / den
		if num < 0 && num%den != 0 {
			i0--
		}
		frac := num - i0*den
		w := int((frac*weightOne + den/2) / den)

		taps[d] = tap{
			i0: clampIndex(int(i0), m),
			i1: clampIndex(int(i0)+1, m),
			w:  w,
		}
	}
	return taps
}

func clampIndex(i, m int) int {
	if i < 0 {
		return 0
	}
	if i >= m {
		return m - 1
	}
	return i
}

func bilinearRows(dst, src *image.Buffer) func(y0, y1 int) {
	cols := linearTaps(dst.Width(), src.Width())
	rows := linearTaps(dst.Height(), src.Height())

	return func(y0, y1 int) {
		for dy := y0; dy < y1; dy++ {
			ty := rows[dy]
			r0 := src.Row(ty.i0)
			r1 := src.Row(ty.i1)
			wy1 := ty.w
			wy0 := weightOne - wy1

			drow := dst.Row(dy)
			for dx, tx := range cols {
				wx1 := tx.w
				wx0 := weightOne - wx1
				a := tx.i0 * image.BytesPerPixel
				b := tx.i1 * image.BytesPerPixel
				o := dx * image.BytesPerPixel

				for c := range image.BytesPerPixel {
					top := int(r0[a+c])*wx0 + int(r0[b+c])*wx1
					bot := int(r1[a+c])*wx0 + int(r1[b+c])*wx1
					drow[o+c] = uint8((top*wy0 + bot*wy1 + weightOne*weightOne/2) >> 16)
				}
			}
		}
	}
}
