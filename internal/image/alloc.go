package image

import (
	"errors"
	"fmt"
)

// Allocator provides destination buffers for transforms.
//
// Implementations must return either a zeroed, tightly packed buffer
// (stride == format.RowBytes(width)) of exactly the requested size and
// format, or a nil buffer and an error. Allocation failures should be
// reported as *AllocationError so callers can match ErrAllocation.
type Allocator interface {
	Allocate(width, height int, format Format) (*Buffer, error)
}

// DefaultMaxBytes is the HeapAllocator limit used when MaxBytes is zero.
const DefaultMaxBytes = 1 << 30

// errLimitExceeded is the cause attached to oversize heap requests.
var errLimitExceeded = errors.New("request exceeds allocator limit")

// HeapAllocator allocates buffers on the Go heap.
//
// Go cannot recover from a failed heap allocation, so requests larger than
// MaxBytes (or whose size overflows int) are refused up front with an
// *AllocationError instead.
type HeapAllocator struct {
	// MaxBytes bounds a single buffer. Zero means DefaultMaxBytes.
	MaxBytes int
}

// Allocate implements Allocator.
func (h HeapAllocator) Allocate(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if width > maxInt/BytesPerPixel {
		return nil, &AllocationError{Width: width, Height: height, Format: format, Bytes: -1}
	}

	stride := format.RowBytes(width)
	size, ok := byteSize(stride, height)
	if !ok {
		return nil, &AllocationError{Width: width, Height: height, Format: format, Bytes: -1}
	}

	limit := h.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if size > limit {
		return nil, &AllocationError{
			Width:  width,
			Height: height,
			Format: format,
			Bytes:  size,
			Err:    fmt.Errorf("%w: %d > %d bytes", errLimitExceeded, size, limit),
		}
	}

	return &Buffer{
		data:   make([]byte, size),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// NewBuffer allocates a zeroed, tightly packed buffer with a default HeapAllocator.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	return HeapAllocator{}.Allocate(width, height, format)
}
