package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the container format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported container format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// decodable lists the MIME types Decode accepts.
var decodable = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

// Decode reads an encoded image and converts it to a buffer in the given format.
// The container is detected from content, not from any file name.
func Decode(r io.Reader, format Format) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("image: read: %w", err)
	}
	return DecodeBytes(data, format)
}

// DecodeBytes is Decode for an in-memory encoded image.
func DecodeBytes(data []byte, format Format) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	mt := mimetype.Detect(data)
	if !decodable[mt.String()] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt.String())
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", mt.Extension(), err)
	}
	return FromStdImage(img, format)
}

// LoadFile decodes the image stored at path.
func LoadFile(path string, format Format) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// Encode writes b to w in the named container: "png", "jpeg"/"jpg",
// "bmp" or "tiff"/"tif".
func Encode(w io.Writer, b *Buffer, container string) error {
	img := b.ToStdImage()

	var err error
	switch strings.ToLower(container) {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, container)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", container, err)
	}
	return nil
}

// SaveFile encodes b to path, choosing the container from the file extension.
func SaveFile(path string, b *Buffer) error {
	container := strings.TrimPrefix(filepath.Ext(path), ".")

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, b, container); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// FromStdImage copies img into a new, tightly packed buffer in the given format.
// Non-premultiplied formats receive straight-alpha values, premultiplied ones
// receive premultiplied values.
func FromStdImage(img image.Image, format Format) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	premul := format.IsPremultiplied()

	// Fast paths: the Pix layout already matches, only the order may differ.
	switch src := img.(type) {
	case *image.NRGBA:
		if !premul {
			copyOrdered(buf, src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):], src.Stride, FormatRGBA8)
			return buf, nil
		}
	case *image.RGBA:
		if premul {
			copyOrdered(buf, src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y):], src.Stride, FormatRGBAPremul)
			return buf, nil
		}
	}

	for y := range buf.height {
		row := buf.Row(y)
		for x := range buf.width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			px := row[x*BytesPerPixel : x*BytesPerPixel+BytesPerPixel]
			if premul {
				r, g, b, a := c.RGBA()
				format.PackRGBA(px, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
			} else {
				n := color.NRGBAModel.Convert(c).(color.NRGBA)
				format.PackRGBA(px, n.R, n.G, n.B, n.A)
			}
		}
	}
	return buf, nil
}

// copyOrdered copies rows laid out in srcFormat with srcStride into dst,
// reordering channels to dst's format.
func copyOrdered(dst *Buffer, pix []byte, srcStride int, srcFormat Format) {
	for y := range dst.height {
		row := dst.Row(y)
		src := pix[y*srcStride : y*srcStride+len(row)]
		if srcFormat == dst.format {
			copy(row, src)
			continue
		}
		for i := 0; i < len(row); i += BytesPerPixel {
			r, g, b, a := srcFormat.UnpackRGBA(src[i:])
			dst.format.PackRGBA(row[i:], r, g, b, a)
		}
	}
}

// ToStdImage converts the buffer to a standard library image.
// Premultiplied formats yield *image.RGBA, the rest *image.NRGBA.
func (b *Buffer) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	var (
		pix       []byte
		stride    int
		out       image.Image
		dstFormat Format
	)
	if b.format.IsPremultiplied() {
		rgba := image.NewRGBA(rect)
		pix, stride, out, dstFormat = rgba.Pix, rgba.Stride, rgba, FormatRGBAPremul
	} else {
		nrgba := image.NewNRGBA(rect)
		pix, stride, out, dstFormat = nrgba.Pix, nrgba.Stride, nrgba, FormatRGBA8
	}

	for y := range b.height {
		src := b.Row(y)
		dst := pix[y*stride : y*stride+len(src)]
		if b.format == dstFormat {
			copy(dst, src)
			continue
		}
		for i := 0; i < len(src); i += BytesPerPixel {
			r, g, bl, a := b.format.UnpackRGBA(src[i:])
			dstFormat.PackRGBA(dst[i:], r, g, bl, a)
		}
	}
	return out
}
