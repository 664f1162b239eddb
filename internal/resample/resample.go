// Package resample scales packed 4-channel pixel buffers.
//
// Every filter samples pixel centers: destination pixel (dx, dy) maps to the
// continuous source position ((dx+0.5)*sw/dw, (dy+0.5)*sh/dh). Taps that fall
// past an edge are clamped to the edge of the source passed in, so resampling
// a view never reads outside that view. Channels are resampled independently,
// which makes the result valid for any channel order.
package resample

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixbuf/internal/image"
	"github.com/gogpu/pixbuf/internal/parallel"
)

// Filter selects the resampling algorithm.
type Filter uint8

const (
	// Bilinear interpolates the 4 nearest source pixels with 8-bit
	// fixed-point weights. It is exact at 1:1 scale. Default.
	Bilinear Filter = iota

	// Nearest copies the source pixel whose area contains the sample point.
	// Output values are always existing source values.
	Nearest

	// Area averages every source pixel the destination pixel covers,
	// weighted by the covered fraction. Best for strong downscaling.
	Area
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case Bilinear:
		return "Bilinear"
	case Nearest:
		return "Nearest"
	case Area:
		return "Area"
	default:
		return "Unknown"
	}
}

// IsValid returns true if f is a known filter.
func (f Filter) IsValid() bool {
	return f <= Area
}

// ParseFilter returns the filter named s, ignoring case.
func ParseFilter(s string) (Filter, error) {
	for f := Bilinear; f <= Area; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("resample: unknown filter %q", s)
}

// Scale resamples all of src into all of dst.
//
// Both buffers must be non-empty and use the same format; callers validate
// that. Rows of dst are distributed over pool when it is non-nil. Scale only
// writes visible pixels of dst, never its stride padding.
func Scale(dst, src *image.Buffer, f Filter, pool *parallel.WorkerPool) {
	var rows func(y0, y1 int)
	switch f {
	case Nearest:
		rows = nearestRows(dst, src)
	case Area:
		rows = areaRows(dst, src)
	default:
		rows = bilinearRows(dst, src)
	}
	parallel.Rows(pool, dst.Height(), rows)
}
