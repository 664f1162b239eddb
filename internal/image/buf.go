package image

import (
	"bytes"
	"unsafe"
)

// Buffer is a packed, single-plane pixel buffer.
//
// Buffer stores pixel data in a contiguous byte slice, row-major from top to
// bottom, with Stride bytes between the starts of consecutive rows. Stride may
// be larger than Width*BytesPerPixel; padding bytes are never read as pixels.
//
// A Buffer is owned by whoever holds it. Transforms never modify their input
// buffers and always return freshly allocated ones, except ResizeInto, which
// writes into a caller-owned destination.
//
// Thread safety: Buffer is safe for concurrent read access. Writes through
// Data() or as a ResizeInto destination require external synchronization.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBufferWithStride creates a zeroed buffer with a custom stride for alignment.
// Stride must be at least format.RowBytes(width).
func NewBufferWithStride(width, height int, format Format, stride int) (*Buffer, error) {
	if err := checkLayout(width, height, format, stride); err != nil {
		return nil, err
	}
	size, ok := byteSize(stride, height)
	if !ok {
		return nil, &AllocationError{Width: width, Height: height, Format: format, Bytes: -1}
	}
	return &Buffer{
		data:   make([]byte, size),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// Ownership of data moves to the returned Buffer: the caller must not keep
// writing to it. Stride must be at least format.RowBytes(width) and data must
// hold at least stride*height bytes; extra trailing bytes are dropped.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if err := checkLayout(width, height, format, stride); err != nil {
		return nil, err
	}
	size, ok := byteSize(stride, height)
	if !ok || len(data) < size {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		data:   data[:size:size],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func checkLayout(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if width > maxInt/BytesPerPixel || stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)

// byteSize returns stride*height, or false if the product overflows int.
func byteSize(stride, height int) (int, bool) {
	if stride <= 0 || height <= 0 || stride > maxInt/height {
		return 0, false
	}
	return stride * height, true
}

// Clone creates a deep copy of the buffer with a tightly packed stride.
func (b *Buffer) Clone() *Buffer {
	rowBytes := b.format.RowBytes(b.width)
	c := &Buffer{
		data:   make([]byte, rowBytes*b.height),
		width:  b.width,
		height: b.height,
		stride: rowBytes,
		format: b.format,
	}
	for y := range b.height {
		copy(c.Row(y), b.Row(y))
	}
	return c
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Bounds returns the full buffer as a Rect at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true for nil or zero-value buffers.
func (b *Buffer) IsEmpty() bool {
	return b == nil || b.width <= 0 || b.height <= 0 || len(b.data) == 0
}

// Row returns the visible bytes of row y, excluding stride padding.
// Returns nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// Pixel returns the 4 raw bytes of pixel (x, y), or nil when out of bounds.
func (b *Buffer) Pixel(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+BytesPerPixel]
}

// View returns a buffer that shares memory with the region r of b.
//
// The view keeps b's stride, so the first pixel of r is at offset 0 and its
// data slice ends at the last byte of r's bottom row. A view does not satisfy
// len(Data()) == Stride()*Height() and is meant for reading inside transforms.
func (b *Buffer) View(r Rect) (*Buffer, error) {
	if r.Empty() {
		return nil, &GeometryError{Op: "view", Rect: r, Bounds: b.Bounds(), Err: ErrInvalidDimensions}
	}
	if !r.Within(b.width, b.height) {
		return nil, &GeometryError{Op: "view", Rect: r, Bounds: b.Bounds(), Err: ErrOutOfBounds}
	}

	offset := r.Y*b.stride + r.X*BytesPerPixel
	end := (r.Y+r.Height-1)*b.stride + (r.X+r.Width)*BytesPerPixel

	return &Buffer{
		data:   b.data[offset:end:end],
		width:  r.Width,
		height: r.Height,
		stride: b.stride,
		format: b.format,
	}, nil
}

// Equal reports whether a and b have the same size, format and visible pixels.
// Stride padding is ignored.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height || b.format != o.format {
		return false
	}
	for y := range b.height {
		if !bytes.Equal(b.Row(y), o.Row(y)) {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and o share any backing memory.
func (b *Buffer) Overlaps(o *Buffer) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	o0 := uintptr(unsafe.Pointer(unsafe.SliceData(o.data)))
	return b0 < o0+uintptr(len(o.data)) && o0 < b0+uintptr(len(b.data))
}

// Fill sets every visible pixel to the given color, leaving padding untouched.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	var px [BytesPerPixel]byte
	b.format.PackRGBA(px[:], r, g, bl, a)
	for y := range b.height {
		row := b.Row(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			copy(row[i:i+BytesPerPixel], px[:])
		}
	}
}

// Clear sets all bytes, including padding, to zero.
func (b *Buffer) Clear() {
	clear(b.data)
}
