package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gogpu/pixbuf"
)

func validConfig() config {
	return config{
		Input:   "in.png",
		Output:  "out.png",
		Filter:  "bilinear",
		Repeat:  1,
		MaxMB:   64,
		Workers: 0,
	}
}

func TestConfigCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config)
		wantErr bool
	}{
		{"valid", func(*config) {}, false},
		{"filter case-insensitive", func(c *config) { c.Filter = "AREA" }, false},
		{"valid crop", func(c *config) { c.Crop = []int{0, 0, 10, 10} }, false},
		{"missing input", func(c *config) { c.Input = "" }, true},
		{"missing output", func(c *config) { c.Output = "" }, true},
		{"unknown filter", func(c *config) { c.Filter = "lanczos" }, true},
		{"short crop", func(c *config) { c.Crop = []int{1, 2, 3} }, true},
		{"negative workers", func(c *config) { c.Workers = -1 }, true},
		{"zero repeat", func(c *config) { c.Repeat = 0 }, true},
		{"zero max-mb", func(c *config) { c.MaxMB = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.check()
			if (err != nil) != tt.wantErr {
				t.Errorf("check() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv("PIXBUF_FILTER", "nearest")
	t.Setenv("PIXBUF_WORKERS", "3")
	t.Setenv("PIXBUF_REPEAT", "not-a-number")
	t.Setenv("PIXBUF_VERBOSE", "true")

	cfg := defaultConfig()
	if cfg.Filter != "nearest" || cfg.Workers != 3 || !cfg.Verbose {
		t.Errorf("defaultConfig() = %+v", cfg)
	}
	if cfg.Repeat != 1 {
		t.Errorf("Repeat = %d, want fallback 1", cfg.Repeat)
	}
}

func TestLoadEnv(t *testing.T) {
	const key = "PIXBUF_DEMO_TEST_KEY"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}
	if got := getString(key, ""); got != "from-dotenv" {
		t.Errorf("%s = %q, want from-dotenv", key, got)
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("loadEnv() error = %v, want nil for a missing file", err)
	}
}

func TestZapHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := slog.New(newZapHandler(zap.New(core)))

	log.Debug("dropped")
	log.With("op", "resize").Warn("pixbuf: allocation failed",
		"width", 640,
		"error", errors.New("out of memory"),
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (debug must be filtered)", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "pixbuf: allocation failed" {
		t.Errorf("entry = %v %q", e.Level, e.Message)
	}
	fields := e.ContextMap()
	if fields["op"] != "resize" {
		t.Errorf("op = %v, want resize", fields["op"])
	}
	if fields["width"] != int64(640) {
		t.Errorf("width = %v (%T), want 640", fields["width"], fields["width"])
	}
	if fields["error"] != "out of memory" {
		t.Errorf("error = %v, want out of memory", fields["error"])
	}
}

func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()
	buf, err := pixbuf.Allocate(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			copy(buf.Pixel(x, y), []byte{byte(x), byte(y), 90, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	if err := pixbuf.SaveFile(path, buf); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRootCmd_CropScaleRotate(t *testing.T) {
	in := writeTestImage(t, 64, 48)
	out := filepath.Join(t.TempDir(), "out.png")

	err := execute(t,
		"-i", in, "-o", out,
		"--crop", "8,0,48,48",
		"--size", "24x16",
		"--rotate", "1",
		"--filter", "area",
		"--workers", "2",
		"--repeat", "3",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := pixbuf.LoadFile(out, pixbuf.FormatBGRA8)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 16 || got.Height() != 24 {
		t.Errorf("output size = %dx%d, want 16x24", got.Width(), got.Height())
	}
}

func TestRootCmd_OutOfBoundsCrop(t *testing.T) {
	in := writeTestImage(t, 32, 32)
	out := filepath.Join(t.TempDir(), "out.png")

	err := execute(t, "-i", in, "-o", out, "--crop", "16,16,32,32")
	if !errors.Is(err, pixbuf.ErrOutOfBounds) {
		t.Errorf("Execute() error = %v, want ErrOutOfBounds", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("output written despite the failed crop")
	}
}

func TestRootCmd_BadSize(t *testing.T) {
	in := writeTestImage(t, 8, 8)
	err := execute(t, "-i", in, "-o", filepath.Join(t.TempDir(), "o.png"), "--size", "big")
	if err == nil {
		t.Error("Execute() accepted --size big")
	}
}
