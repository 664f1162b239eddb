package image

import (
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid BGRA8", 100, 100, FormatBGRA8, nil},
		{"valid RGBA8", 50, 20, FormatRGBA8, nil},
		{"1x1 minimum", 1, 1, FormatARGB8, nil},
		{"zero width", 0, 100, FormatBGRA8, ErrInvalidDimensions},
		{"zero height", 100, 0, FormatBGRA8, ErrInvalidDimensions},
		{"negative width", -1, 100, FormatBGRA8, ErrInvalidDimensions},
		{"negative height", 100, -1, FormatBGRA8, ErrInvalidDimensions},
		{"invalid format", 100, 100, Format(255), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuffer(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBuffer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				if buf != nil {
					t.Error("NewBuffer() returned a buffer together with an error")
				}
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", buf.Format(), tt.format)
			}
			if buf.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.width*4)
			}
			if len(buf.Data()) != buf.Stride()*tt.height {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), buf.Stride()*tt.height)
			}
			for i, v := range buf.Data() {
				if v != 0 {
					t.Fatalf("Data()[%d] = %d, want zeroed buffer", i, v)
				}
			}
		})
	}
}

func TestNewBufferWithStride(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		stride  int
		wantErr error
	}{
		{"aligned stride", 100, 10, 512, nil},
		{"minimum stride", 100, 10, 400, nil},
		{"stride too small", 100, 10, 399, ErrInvalidStride},
		{"zero stride", 100, 10, 0, ErrInvalidStride},
		{"zero width", 0, 10, 400, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBufferWithStride(tt.width, tt.height, FormatBGRA8, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBufferWithStride() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Stride() != tt.stride {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.stride)
			}
			if buf.ByteSize() != tt.stride*tt.height {
				t.Errorf("ByteSize() = %d, want %d", buf.ByteSize(), tt.stride*tt.height)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		dataLen int
		stride  int
		wantErr error
	}{
		{"exact", 4 * 4 * 3, 16, nil},
		{"trailing bytes dropped", 100, 16, nil},
		{"padded stride", 20 * 3, 20, nil},
		{"data too small", 47, 16, ErrDataTooSmall},
		{"stride too small", 48, 12, ErrInvalidStride},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.dataLen)
			buf, err := FromRaw(data, 4, 3, FormatRGBA8, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(buf.Data()) != tt.stride*3 {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), tt.stride*3)
			}
			// FromRaw must not copy.
			buf.Data()[0] = 7
			if data[0] != 7 {
				t.Error("FromRaw copied the data slice")
			}
		})
	}
}

func TestBuffer_RowIgnoresPadding(t *testing.T) {
	buf, err := NewBufferWithStride(3, 2, FormatBGRA8, 16)
	if err != nil {
		t.Fatal(err)
	}
	for i := range buf.Data() {
		buf.Data()[i] = byte(i)
	}

	row := buf.Row(1)
	if len(row) != 12 {
		t.Fatalf("len(Row(1)) = %d, want 12", len(row))
	}
	if row[0] != 16 || row[11] != 27 {
		t.Errorf("Row(1) = [%d..%d], want [16..27]", row[0], row[11])
	}
	if buf.Row(-1) != nil || buf.Row(2) != nil {
		t.Error("Row() out of range should return nil")
	}
}

func TestBuffer_PixelOffset(t *testing.T) {
	buf, _ := NewBufferWithStride(4, 3, FormatBGRA8, 20)

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{3, 0, 12},
		{0, 1, 20},
		{2, 2, 48},
		{-1, 0, -1},
		{4, 0, -1},
		{0, 3, -1},
	}
	for _, tt := range tests {
		if got := buf.PixelOffset(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if buf.Pixel(4, 0) != nil {
		t.Error("Pixel() out of bounds should return nil")
	}
}

func TestBuffer_View(t *testing.T) {
	buf, _ := NewBufferWithStride(6, 5, FormatRGBA8, 32)
	for y := range 5 {
		for x := range 6 {
			buf.Pixel(x, y)[0] = byte(y*10 + x)
		}
	}

	view, err := buf.View(Rect{X: 2, Y: 1, Width: 3, Height: 4})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if view.Width() != 3 || view.Height() != 4 || view.Stride() != 32 {
		t.Errorf("view = %dx%d stride %d, want 3x4 stride 32", view.Width(), view.Height(), view.Stride())
	}
	if got := view.Pixel(0, 0)[0]; got != 12 {
		t.Errorf("view(0,0) = %d, want 12", got)
	}
	if got := view.Pixel(2, 3)[0]; got != 44 {
		t.Errorf("view(2,3) = %d, want 44", got)
	}
	// The view ends at the last byte of its bottom row.
	if want := 3*32 + 3*4; len(view.Data()) != want {
		t.Errorf("len(view.Data()) = %d, want %d", len(view.Data()), want)
	}
	if !view.Overlaps(buf) {
		t.Error("view should overlap its parent")
	}
}

func TestBuffer_ViewErrors(t *testing.T) {
	buf, _ := NewBuffer(10, 10, FormatBGRA8)

	tests := []struct {
		name string
		r    Rect
		want error
	}{
		{"zero width", Rect{0, 0, 0, 5}, ErrInvalidDimensions},
		{"negative height", Rect{0, 0, 5, -1}, ErrInvalidDimensions},
		{"negative x", Rect{-1, 0, 5, 5}, ErrOutOfBounds},
		{"past right edge", Rect{6, 0, 5, 5}, ErrOutOfBounds},
		{"past bottom edge", Rect{0, 8, 5, 3}, ErrOutOfBounds},
		{"overflowing sum", Rect{1, 0, maxInt, 1}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := buf.View(tt.r)
			if !errors.Is(err, tt.want) {
				t.Fatalf("View(%v) error = %v, want %v", tt.r, err, tt.want)
			}
			var geo *GeometryError
			if !errors.As(err, &geo) {
				t.Fatalf("View(%v) error type = %T, want *GeometryError", tt.r, err)
			}
			if view != nil {
				t.Error("View() returned a buffer together with an error")
			}
		})
	}
}

func TestBuffer_CloneAndEqual(t *testing.T) {
	buf, _ := NewBufferWithStride(3, 3, FormatBGRA8, 16)
	for i := range buf.Data() {
		buf.Data()[i] = byte(i * 3)
	}

	c := buf.Clone()
	if c.Stride() != 12 {
		t.Errorf("Clone().Stride() = %d, want 12", c.Stride())
	}
	if !buf.Equal(c) || !c.Equal(buf) {
		t.Error("clone should equal its source ignoring padding")
	}
	if c.Overlaps(buf) {
		t.Error("clone must not share memory")
	}

	c.Pixel(1, 1)[2]++
	if buf.Equal(c) {
		t.Error("Equal() missed a changed pixel")
	}

	other, _ := NewBuffer(3, 3, FormatRGBA8)
	same, _ := NewBuffer(3, 3, FormatBGRA8)
	if other.Equal(same) {
		t.Error("Equal() should compare formats")
	}
	var nilBuf *Buffer
	if nilBuf.Equal(same) || !nilBuf.Equal(nil) {
		t.Error("Equal() nil handling is wrong")
	}
}

func TestBuffer_FillKeepsPadding(t *testing.T) {
	buf, _ := NewBufferWithStride(2, 2, FormatBGRA8, 12)
	buf.Fill(10, 20, 30, 40)

	if px := buf.Pixel(1, 1); px[0] != 30 || px[1] != 20 || px[2] != 10 || px[3] != 40 {
		t.Errorf("Pixel(1,1) = %v, want BGRA [30 20 10 40]", px)
	}
	for _, off := range []int{8, 9, 10, 11, 20, 21, 22, 23} {
		if buf.Data()[off] != 0 {
			t.Errorf("padding byte %d = %d, want 0", off, buf.Data()[off])
		}
	}

	buf.Clear()
	if buf.Pixel(0, 0)[0] != 0 {
		t.Error("Clear() left pixel data")
	}
}

func TestBuffer_IsEmpty(t *testing.T) {
	var nilBuf *Buffer
	if !nilBuf.IsEmpty() {
		t.Error("nil buffer should be empty")
	}
	if !(&Buffer{}).IsEmpty() {
		t.Error("zero-value buffer should be empty")
	}
	buf, _ := NewBuffer(1, 1, FormatBGRA8)
	if buf.IsEmpty() {
		t.Error("allocated buffer should not be empty")
	}
}
