package pixbuf

import (
	"image"
	"io"

	intImage "github.com/gogpu/pixbuf/internal/image"
	"github.com/gogpu/pixbuf/internal/resample"
)

// FromImage copies img into a new packed buffer in the given format.
// Straight-alpha formats receive straight values, premultiplied formats
// premultiplied ones.
func FromImage(img image.Image, format Format) (*Buffer, error) {
	return intImage.FromStdImage(img, format)
}

// ToImage copies buf into an *image.NRGBA, or an *image.RGBA for
// premultiplied formats, reordering channels as needed.
func ToImage(buf *Buffer) image.Image {
	return buf.ToStdImage()
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image and converts it to
// the given format. The container is detected from the content.
func Decode(r io.Reader, format Format) (*Buffer, error) {
	return intImage.Decode(r, format)
}

// Encode writes buf to w as "png", "jpeg", "bmp" or "tiff".
func Encode(w io.Writer, buf *Buffer, container string) error {
	return intImage.Encode(w, buf, container)
}

// LoadFile decodes the image stored at path.
func LoadFile(path string, format Format) (*Buffer, error) {
	return intImage.LoadFile(path, format)
}

// SaveFile encodes buf to path, choosing the container from its extension.
func SaveFile(path string, buf *Buffer) error {
	return intImage.SaveFile(path, buf)
}

// ParseFilter returns the filter with the given name, ignoring case:
// "bilinear", "nearest" or "area".
func ParseFilter(name string) (Filter, error) {
	return resample.ParseFilter(name)
}
