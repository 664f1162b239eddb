package pixbuf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/pixbuf/internal/resample"
	"github.com/gogpu/pixbuf/internal/rotate"
)

// Operation names used in errors and log records.
const (
	opAllocate     = "allocate"
	opCropAndScale = "crop-and-scale"
	opResize       = "resize"
	opResizeInto   = "resize-into"
	opRotate90     = "rotate90"
)

// errBadAllocator is the cause attached when an allocator breaks its contract.
var errBadAllocator = errors.New("allocator returned an unusable buffer")

// CropAndScale extracts the region (cropX, cropY, cropWidth, cropHeight) of
// src and resamples it to exactly scaleWidth x scaleHeight.
//
// The crop is a view into src; nothing outside the rectangle is read, not
// even by the resampling filter at the edges. The result is a new buffer in
// src's format with Stride() == scaleWidth*BytesPerPixel. src is not modified.
//
// Errors:
//   - *GeometryError matching ErrInvalidDimensions for a nil source or any
//     non-positive size.
//   - *GeometryError matching ErrOutOfBounds when the rectangle leaves src.
//     The rectangle is never clamped.
//   - *AllocationError matching ErrAllocation when no destination is available.
func CropAndScale(src *Buffer, cropX, cropY, cropWidth, cropHeight, scaleWidth, scaleHeight int, opts ...Option) (*Buffer, error) {
	crop := Rect{X: cropX, Y: cropY, Width: cropWidth, Height: cropHeight}
	return cropAndScale(opCropAndScale, src, crop, scaleWidth, scaleHeight, newOptions(opts))
}

// Resize scales all of src to width x height.
// It is CropAndScale with the crop covering the whole source.
func Resize(src *Buffer, width, height int, opts ...Option) (*Buffer, error) {
	var crop Rect
	if !src.IsEmpty() {
		crop = src.Bounds()
	}
	return cropAndScale(opResize, src, crop, width, height, newOptions(opts))
}

func cropAndScale(op string, src *Buffer, crop Rect, scaleWidth, scaleHeight int, o options) (*Buffer, error) {
	if src.IsEmpty() {
		return nil, &GeometryError{Op: op, Rect: crop, Err: ErrInvalidDimensions}
	}
	bounds := src.Bounds()
	if crop.Empty() {
		return nil, &GeometryError{Op: op, Rect: crop, Bounds: bounds, Err: ErrInvalidDimensions}
	}
	if scaleWidth <= 0 || scaleHeight <= 0 {
		return nil, &GeometryError{
			Op:     op,
			Rect:   Rect{Width: scaleWidth, Height: scaleHeight},
			Bounds: bounds,
			Err:    ErrInvalidDimensions,
		}
	}
	if !crop.Within(bounds.Width, bounds.Height) {
		return nil, &GeometryError{Op: op, Rect: crop, Bounds: bounds, Err: ErrOutOfBounds}
	}
	if !o.filter.IsValid() {
		return nil, fmt.Errorf("%s: %w: %d", op, ErrInvalidFilter, o.filter)
	}

	view, err := src.View(crop)
	if err != nil {
		return nil, err
	}
	dst, err := allocate(o, op, scaleWidth, scaleHeight, src.Format())
	if err != nil {
		return nil, err
	}

	resample.Scale(dst, view, o.filter, o.pool)

	Logger().Debug("pixbuf: scaled",
		slog.String("op", op),
		slog.String("crop", crop.String()),
		slog.Int("width", scaleWidth),
		slog.Int("height", scaleHeight),
		slog.String("filter", o.filter.String()),
		slog.String("format", src.Format().String()),
	)
	return dst, nil
}

// ResizeInto resamples all of src to fill dst, whatever dst's size.
//
// ResizeInto never allocates: it is the steady-state path for per-frame
// work into a caller-owned destination. Only dst's visible pixels are
// written; its stride padding is left alone. WithAllocator has no effect.
//
// Errors: ErrInvalidDimensions (wrapped in *GeometryError) for a nil or
// zero-value buffer, ErrFormatMismatch when the formats differ, and
// ErrAliasedBuffers when dst shares memory with src.
func ResizeInto(src, dst *Buffer, opts ...Option) error {
	o := newOptions(opts)

	if src.IsEmpty() {
		return &GeometryError{Op: opResizeInto, Err: ErrInvalidDimensions}
	}
	if dst.IsEmpty() {
		return &GeometryError{Op: opResizeInto, Bounds: src.Bounds(), Err: ErrInvalidDimensions}
	}
	if src.Format() != dst.Format() {
		return fmt.Errorf("%s: %w: %s into %s", opResizeInto, ErrFormatMismatch, src.Format(), dst.Format())
	}
	if src.Overlaps(dst) {
		return fmt.Errorf("%s: %w", opResizeInto, ErrAliasedBuffers)
	}
	if !o.filter.IsValid() {
		return fmt.Errorf("%s: %w: %d", opResizeInto, ErrInvalidFilter, o.filter)
	}

	resample.Scale(dst, src, o.filter, o.pool)

	Logger().Debug("pixbuf: scaled",
		slog.String("op", opResizeInto),
		slog.String("src", src.Bounds().String()),
		slog.Int("width", dst.Width()),
		slog.Int("height", dst.Height()),
		slog.String("filter", o.filter.String()),
		slog.String("format", src.Format().String()),
	)
	return nil
}

// Rotate90 rotates src counter-clockwise by quarterTurns * 90 degrees.
//
// Any integer is accepted and reduced modulo 4, so -1 is a clockwise quarter
// turn. Odd turns swap width and height. Pixels are moved, never blended:
// every output byte is a byte of src. The result has a packed stride.
func Rotate90(src *Buffer, quarterTurns int, opts ...Option) (*Buffer, error) {
	o := newOptions(opts)
	if src.IsEmpty() {
		return nil, &GeometryError{Op: opRotate90, Err: ErrInvalidDimensions}
	}

	k := rotate.Normalize(quarterTurns)
	w, h := rotate.Size(src.Width(), src.Height(), k)
	dst, err := allocate(o, opRotate90, w, h, src.Format())
	if err != nil {
		return nil, err
	}

	rotate.Into(dst, src, k, o.pool)

	Logger().Debug("pixbuf: rotated",
		slog.String("op", opRotate90),
		slog.Int("quarter_turns", k),
		slog.Int("width", w),
		slog.Int("height", h),
	)
	return dst, nil
}

// allocate asks o.alloc for a destination and holds it to the Allocator
// contract. Every failure is returned as an *AllocationError.
func allocate(o options, op string, width, height int, format Format) (*Buffer, error) {
	buf, err := o.alloc.Allocate(width, height, format)
	if err == nil && !fits(buf, width, height, format) {
		err = errBadAllocator
		buf = nil
	}
	if err != nil {
		Logger().Warn("pixbuf: allocation failed",
			slog.String("op", op),
			slog.Int("width", width),
			slog.Int("height", height),
			slog.String("format", format.String()),
			slog.Any("error", err),
		)
		var ae *AllocationError
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, &AllocationError{
			Width:  width,
			Height: height,
			Format: format,
			Bytes:  requestBytes(width, height),
			Err:    err,
		}
	}
	return buf, nil
}

// fits reports whether buf is a packed width x height buffer in format.
func fits(buf *Buffer, width, height int, format Format) bool {
	return !buf.IsEmpty() &&
		buf.Width() == width &&
		buf.Height() == height &&
		buf.Format() == format &&
		buf.Stride() == format.RowBytes(width)
}

// requestBytes is the packed size of a width x height buffer, or -1 if it overflows int.
func requestBytes(width, height int) int {
	if width > math.MaxInt/BytesPerPixel/height {
		return -1
	}
	return width * BytesPerPixel * height
}

// Compile-time interface checks.
var (
	_ Allocator = HeapAllocator{}
	_ Allocator = (*Pool)(nil)
)
