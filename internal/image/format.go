// Package image provides the pixel buffer type shared by every pixbuf transform.
//
// Buffers are single-plane, packed, row-major and stride aware. All supported
// formats carry four 8-bit channels, so transforms can treat a pixel as four
// opaque bytes and only interop code needs to know the channel order.
package image

// Format represents a packed 4-channel pixel storage format.
type Format uint8

const (
	// FormatBGRA8 is 32-bit BGRA (blue in the lowest byte).
	// This is the default format and matches 32BGRA camera frames.
	FormatBGRA8 Format = iota

	// FormatRGBA8 is 32-bit RGBA, the layout of image.NRGBA.
	FormatRGBA8

	// FormatARGB8 is 32-bit ARGB (alpha first).
	FormatARGB8

	// FormatABGR8 is 32-bit ABGR (alpha first, reversed color order).
	FormatABGR8

	// FormatBGRAPremul is 32-bit BGRA with premultiplied alpha.
	FormatBGRAPremul

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha, the layout of image.RGBA.
	FormatRGBAPremul

	// formatCount is the number of formats (for internal use).
	formatCount
)

// DefaultFormat is used by Allocate when no format is given.
const DefaultFormat = FormatBGRA8

// BytesPerPixel is the pixel size shared by every supported format.
const BytesPerPixel = 4

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the short display name.
	Name string

	// R, G, B, A are the byte offsets of each channel within a pixel.
	R, G, B, A int

	// IsPremultiplied indicates if color channels are premultiplied by alpha.
	IsPremultiplied bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatBGRA8:      {Name: "BGRA8", R: 2, G: 1, B: 0, A: 3},
	FormatRGBA8:      {Name: "RGBA8", R: 0, G: 1, B: 2, A: 3},
	FormatARGB8:      {Name: "ARGB8", R: 1, G: 2, B: 3, A: 0},
	FormatABGR8:      {Name: "ABGR8", R: 3, G: 2, B: 1, A: 0},
	FormatBGRAPremul: {Name: "BGRAPremul", R: 2, G: 1, B: 0, A: 3, IsPremultiplied: true},
	FormatRGBAPremul: {Name: "RGBAPremul", R: 0, G: 1, B: 2, A: 3, IsPremultiplied: true},
}

// Info returns the FormatInfo for this format.
// Unknown formats return the zero FormatInfo.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for unknown formats.
func (f Format) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return BytesPerPixel
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// PackRGBA writes r, g, b, a into px using the channel order of f.
// px must be at least 4 bytes long.
func (f Format) PackRGBA(px []byte, r, g, b, a uint8) {
	info := f.Info()
	px[info.R] = r
	px[info.G] = g
	px[info.B] = b
	px[info.A] = a
}

// UnpackRGBA reads a pixel in f's channel order.
// px must be at least 4 bytes long.
func (f Format) UnpackRGBA(px []byte) (r, g, b, a uint8) {
	info := f.Info()
	return px[info.R], px[info.G], px[info.B], px[info.A]
}
