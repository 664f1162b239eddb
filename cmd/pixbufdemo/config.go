package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/gogpu/pixbuf"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// config holds one demo run. Flag defaults come from PIXBUF_* variables,
// which may be set in a .env file next to the binary's working directory.
type config struct {
	Input   string `validate:"required"`
	Output  string `validate:"required"`
	Crop    []int  `validate:"omitempty,len=4"`
	Width   int    `validate:"gte=0"`
	Height  int    `validate:"gte=0"`
	Rotate  int
	Filter  string `validate:"oneof=bilinear nearest area"`
	Workers int    `validate:"gte=0,lte=256"`
	Repeat  int    `validate:"gte=1,lte=10000"`
	MaxMB   int    `validate:"gte=1"`
	Verbose bool
}

// loadEnv reads .env if present. A missing file is not an error.
func loadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return val
}

func getInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

// defaultConfig builds the flag defaults from the environment.
func defaultConfig() config {
	return config{
		Filter:  getString("PIXBUF_FILTER", "bilinear"),
		Workers: getInt("PIXBUF_WORKERS", 0),
		Repeat:  getInt("PIXBUF_REPEAT", 1),
		MaxMB:   getInt("PIXBUF_MAX_MB", 1024),
		Verbose: getBool("PIXBUF_VERBOSE", false),
	}
}

// check validates the flag values and normalizes the filter name.
func (c *config) check() error {
	c.Filter = strings.ToLower(c.Filter)
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid --%s: failed %q check", strings.ToLower(fe.Field()), fe.Tag())
		}
		return err
	}
	return nil
}

// options translates the config into pixbuf call options.
func (c *config) options(pool *pixbuf.Pool, workers *pixbuf.WorkerPool) ([]pixbuf.Option, error) {
	filter, err := pixbuf.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}
	opts := []pixbuf.Option{
		pixbuf.WithFilter(filter),
		pixbuf.WithAllocator(pool),
	}
	if workers != nil {
		opts = append(opts, pixbuf.WithWorkerPool(workers))
	}
	return opts, nil
}
