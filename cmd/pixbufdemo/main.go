// Command pixbufdemo crops, scales and rotates an image file with pixbuf.
//
// Usage:
//
//	pixbufdemo -i frame.png -o input.png --crop 420,0,1080,1080 --size 224x224 --rotate 1
//
// Flag defaults can be set through PIXBUF_FILTER, PIXBUF_WORKERS,
// PIXBUF_REPEAT, PIXBUF_MAX_MB and PIXBUF_VERBOSE, or a .env file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/pixbuf"
)

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var size string

	cmd := &cobra.Command{
		Use:   "pixbufdemo",
		Short: "Crop, scale and rotate an image with pixbuf",
		Long: `pixbufdemo loads an image as a BGRA pixel buffer, optionally crops it,
scales it to --size and rotates it counter-clockwise by --rotate quarter
turns, then writes the result. The output container follows the extension
of --output (png, jpg, bmp, tiff).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size != "" {
				if _, err := fmt.Sscanf(size, "%dx%d", &cfg.Width, &cfg.Height); err != nil {
					return fmt.Errorf("invalid --size %q: want WxH", size)
				}
			}
			if err := cfg.check(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Input, "input", "i", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	f.StringVarP(&cfg.Output, "output", "o", "", "output image; container from extension")
	f.IntSliceVar(&cfg.Crop, "crop", nil, "crop rectangle x,y,width,height")
	f.StringVar(&size, "size", "", "output size WxH (default: crop or source size)")
	f.IntVar(&cfg.Rotate, "rotate", 0, "counter-clockwise quarter turns")
	f.StringVar(&cfg.Filter, "filter", cfg.Filter, "resampling filter: bilinear, nearest, area")
	f.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker goroutines per transform (0: serial)")
	f.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "run the pipeline this many times and report timing")
	f.IntVar(&cfg.MaxMB, "max-mb", cfg.MaxMB, "largest buffer the allocator may hand out, in MiB")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log every transform")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pixbuf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("pixbuf", pixbuf.Version)
		},
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config) error {
	zl, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	logger := zl.Sugar()

	pixbuf.SetLogger(slog.New(newZapHandler(zl)))
	defer pixbuf.SetLogger(nil)

	src, err := pixbuf.LoadFile(cfg.Input, pixbuf.FormatBGRA8)
	if err != nil {
		return err
	}
	logger.Infow("loaded", "path", cfg.Input, "width", src.Width(), "height", src.Height())

	pool := pixbuf.NewPool(2, pixbuf.HeapAllocator{MaxBytes: cfg.MaxMB << 20})

	var workers *pixbuf.WorkerPool
	if cfg.Workers > 0 {
		workers = pixbuf.NewWorkerPool(cfg.Workers)
		defer workers.Close()
	}

	opts, err := cfg.options(pool, workers)
	if err != nil {
		return err
	}

	var out *pixbuf.Buffer
	start := time.Now()
	for i := range cfg.Repeat {
		if i > 0 {
			pool.Release(out)
		}
		out, err = process(src, cfg, opts, pool)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	logger.Infow("processed",
		"width", out.Width(),
		"height", out.Height(),
		"filter", cfg.Filter,
		"workers", workers.Workers(),
		"runs", cfg.Repeat,
		"per_run", elapsed/time.Duration(cfg.Repeat),
	)

	if err := pixbuf.SaveFile(cfg.Output, out); err != nil {
		return err
	}
	logger.Infow("saved", "path", cfg.Output)
	return nil
}

// process runs crop-and-scale (or resize) followed by rotation.
// The intermediate buffer goes back to pool once rotated.
func process(src *pixbuf.Buffer, cfg config, opts []pixbuf.Option, pool *pixbuf.Pool) (*pixbuf.Buffer, error) {
	x, y, w, h := 0, 0, src.Width(), src.Height()
	if len(cfg.Crop) == 4 {
		x, y, w, h = cfg.Crop[0], cfg.Crop[1], cfg.Crop[2], cfg.Crop[3]
	}
	sw, sh := w, h
	if cfg.Width > 0 && cfg.Height > 0 {
		sw, sh = cfg.Width, cfg.Height
	}

	scaled, err := pixbuf.CropAndScale(src, x, y, w, h, sw, sh, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Rotate == 0 {
		return scaled, nil
	}

	rotated, err := pixbuf.Rotate90(scaled, cfg.Rotate, opts...)
	if err != nil {
		return nil, err
	}
	pool.Release(scaled)
	return rotated, nil
}
