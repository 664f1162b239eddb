// Package pixbuf provides crop, scale and rotate operations on packed
// 4-channel 8-bit pixel buffers.
//
// # Overview
//
// pixbuf is the geometric preprocessing layer between a frame source (camera
// capture, decoded image) and a consumer that wants a fixed-size input, such
// as an inference model. It is Pure Go, synchronous, and never modifies its
// inputs: every transform either returns a new buffer or writes into a
// destination the caller owns.
//
// # Quick Start
//
//	import "github.com/gogpu/pixbuf"
//
//	frame, err := pixbuf.FromRaw(data, 1920, 1080, pixbuf.FormatBGRA8, stride)
//	if err != nil {
//	    return err
//	}
//
//	// Centre square, scaled to the model input size
//	input, err := pixbuf.CropAndScale(frame, 420, 0, 1080, 1080, 224, 224)
//	if err != nil {
//	    return err
//	}
//
//	// Device held in landscape: one counter-clockwise quarter turn
//	upright, err := pixbuf.Rotate90(input, 1)
//
// # Buffers
//
// A Buffer is single-plane, row-major, top row first, with 4 bytes per pixel
// in the channel order named by its Format. Rows may be padded: Stride is the
// distance in bytes between row starts and is at least Width*4. Every
// operation honours the source stride; every buffer it allocates is packed.
// Padding bytes are never read as pixels and never written.
//
// # Errors
//
// Geometry mistakes are reported, never clamped: a crop rectangle outside
// the source yields a *GeometryError matching ErrOutOfBounds, a non-positive
// size one matching ErrInvalidDimensions. A destination that cannot be
// obtained yields an *AllocationError matching ErrAllocation. No function
// returns a buffer together with an error.
//
// # Allocation
//
// By default destinations come from a HeapAllocator, which refuses requests
// above 1 GiB instead of letting the runtime abort. WithAllocator swaps in a
// Pool (or any Allocator) so steady-state frame processing recycles memory;
// ResizeInto avoids allocation altogether.
//
// # Concurrency
//
// Calls are independent and may run on any goroutines as long as no two of
// them write the same destination. WithWorkerPool splits one call's rows
// across a caller-owned WorkerPool; the output is byte-identical to the
// serial result.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation is counter-clockwise in quarter turns
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
