package pixbuf

import (
	"errors"

	intImage "github.com/gogpu/pixbuf/internal/image"
)

// Errors returned by pixbuf. Match them with errors.Is.
var (
	// ErrInvalidDimensions reports a non-positive size, or a nil or
	// zero-value buffer passed to a transform.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrOutOfBounds reports a crop rectangle that leaves the source.
	ErrOutOfBounds = intImage.ErrOutOfBounds

	// ErrAllocation is matched by every *AllocationError.
	ErrAllocation = intImage.ErrAllocation

	// ErrInvalidFormat reports an unknown pixel format.
	ErrInvalidFormat = intImage.ErrInvalidFormat

	// ErrInvalidStride reports a stride shorter than one row of pixels.
	ErrInvalidStride = intImage.ErrInvalidStride

	// ErrDataTooSmall reports raw data shorter than stride*height.
	ErrDataTooSmall = intImage.ErrDataTooSmall

	// ErrFormatMismatch reports a ResizeInto destination in another format.
	ErrFormatMismatch = intImage.ErrFormatMismatch

	// ErrAliasedBuffers reports a ResizeInto destination sharing memory with its source.
	ErrAliasedBuffers = intImage.ErrAliasedBuffers

	// ErrUnsupportedFormat reports an image container that cannot be decoded or encoded.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrEmptyData reports an empty encoded image.
	ErrEmptyData = intImage.ErrEmptyData

	// ErrInvalidFilter reports an unknown resampling filter.
	ErrInvalidFilter = errors.New("pixbuf: invalid filter")
)

// GeometryError reports malformed crop or scale parameters. It unwraps to
// ErrOutOfBounds or ErrInvalidDimensions. Geometry errors are caller bugs:
// the operation refuses to run rather than clamp.
type GeometryError = intImage.GeometryError

// AllocationError reports that a destination buffer could not be obtained.
// It matches ErrAllocation and is recoverable by the caller.
type AllocationError = intImage.AllocationError
