package image

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when a width or height is non-positive,
	// or when a nil or zero-value buffer is passed to a transform.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when a region extends outside its buffer.
	ErrOutOfBounds = errors.New("image: region out of bounds")

	// ErrAllocation is matched by every AllocationError.
	ErrAllocation = errors.New("image: allocation failed")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrFormatMismatch is returned when source and destination formats differ.
	ErrFormatMismatch = errors.New("image: pixel format mismatch")

	// ErrAliasedBuffers is returned when a destination shares memory with its source.
	ErrAliasedBuffers = errors.New("image: destination aliases source")
)

// GeometryError reports a malformed crop or scale request.
// Err is ErrOutOfBounds or ErrInvalidDimensions.
type GeometryError struct {
	Op     string
	Rect   Rect // requested region (or target size in Width/Height)
	Bounds Rect // region it had to fit in
	Err    error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %v: rect %v, bounds %v", e.Op, e.Err, e.Rect, e.Bounds)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// AllocationError reports that a destination buffer could not be obtained.
// It always matches ErrAllocation; Err carries the allocator's reason.
type AllocationError struct {
	Width, Height int
	Format        Format
	Bytes         int // requested size, -1 if it overflows int
	Err           error
}

func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("image: allocation failed for %dx%d %s", e.Width, e.Height, e.Format)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AllocationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}
