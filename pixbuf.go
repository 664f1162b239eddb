package pixbuf

import (
	intImage "github.com/gogpu/pixbuf/internal/image"
	"github.com/gogpu/pixbuf/internal/parallel"
	"github.com/gogpu/pixbuf/internal/resample"
)

// Buffer is a packed, single-plane, 4-channel 8-bit pixel buffer.
// See the internal/image package for the full method set: Width, Height,
// Stride, Format, Data, Row, Pixel, PixelOffset, Clone, Equal, Fill.
type Buffer = intImage.Buffer

// Rect is a pixel region with its origin at (X, Y).
type Rect = intImage.Rect

// Format identifies the channel order of a Buffer.
type Format = intImage.Format

// Pixel formats. Every format stores 4 bytes per pixel.
const (
	// FormatBGRA8 is 32-bit BGRA, the default and the layout of 32BGRA camera frames.
	FormatBGRA8 = intImage.FormatBGRA8

	// FormatRGBA8 is 32-bit RGBA with straight alpha.
	FormatRGBA8 = intImage.FormatRGBA8

	// FormatARGB8 is 32-bit ARGB with straight alpha.
	FormatARGB8 = intImage.FormatARGB8

	// FormatABGR8 is 32-bit ABGR with straight alpha.
	FormatABGR8 = intImage.FormatABGR8

	// FormatBGRAPremul is 32-bit BGRA with premultiplied alpha.
	FormatBGRAPremul = intImage.FormatBGRAPremul

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha.
	FormatRGBAPremul = intImage.FormatRGBAPremul

	// DefaultFormat is the format used by Allocate.
	DefaultFormat = intImage.DefaultFormat

	// BytesPerPixel is the pixel size of every supported format.
	BytesPerPixel = intImage.BytesPerPixel
)

// Filter selects the resampling algorithm for CropAndScale, Resize and ResizeInto.
type Filter = resample.Filter

// Resampling filters.
const (
	// FilterBilinear interpolates the 4 nearest pixels. Default; exact at 1:1.
	FilterBilinear = resample.Bilinear

	// FilterNearest picks the pixel containing each sample point.
	FilterNearest = resample.Nearest

	// FilterArea averages all covered pixels by coverage. Best for downscaling.
	FilterArea = resample.Area
)

// Allocator provides destination buffers. See WithAllocator.
type Allocator = intImage.Allocator

// HeapAllocator allocates on the Go heap and refuses requests above MaxBytes.
type HeapAllocator = intImage.HeapAllocator

// Pool is an Allocator that recycles buffers handed back with Release.
// Use it, or a caller-owned ResizeInto destination, to avoid per-frame allocation.
type Pool = intImage.Pool

// WorkerPool runs row bands of a transform concurrently. See WithWorkerPool.
type WorkerPool = parallel.WorkerPool

// NewPool creates a buffer pool keeping at most maxPerBucket idle buffers per
// size and format. Misses are served by next (a HeapAllocator when nil).
func NewPool(maxPerBucket int, next Allocator) *Pool {
	return intImage.NewPool(maxPerBucket, next)
}

// NewWorkerPool starts a pool of workers (GOMAXPROCS when workers <= 0).
// The caller owns the pool and must Close it.
func NewWorkerPool(workers int) *WorkerPool {
	return parallel.NewWorkerPool(workers)
}

// Allocate returns a zeroed width x height buffer in DefaultFormat with
// Stride() == width*BytesPerPixel.
//
// It fails with an *AllocationError (matching ErrAllocation) when the
// allocator cannot provide the memory; callers must check the error before
// using the result.
func Allocate(width, height int, opts ...Option) (*Buffer, error) {
	return NewBuffer(width, height, DefaultFormat, opts...)
}

// NewBuffer is Allocate with an explicit format.
func NewBuffer(width, height int, format Format, opts ...Option) (*Buffer, error) {
	o := newOptions(opts)
	if width <= 0 || height <= 0 {
		return nil, &GeometryError{
			Op:   opAllocate,
			Rect: Rect{Width: width, Height: height},
			Err:  ErrInvalidDimensions,
		}
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return allocate(o, opAllocate, width, height, format)
}

// NewBufferWithStride allocates a zeroed buffer whose rows are stride bytes apart.
func NewBufferWithStride(width, height int, format Format, stride int) (*Buffer, error) {
	return intImage.NewBufferWithStride(width, height, format, stride)
}

// FromRaw wraps pixel data produced elsewhere, such as a capture subsystem.
// The Buffer takes ownership of data; it is not copied.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	return intImage.FromRaw(data, width, height, format, stride)
}
