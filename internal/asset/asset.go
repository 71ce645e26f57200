// Package asset fetches and decodes the texture atlas image.
package asset

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/OCharnyshevich/voxel-terrain/pkg/atlas"
)

// Loader fetches atlas images into a local cache directory.
type Loader struct {
	cacheDir string
	grid     int
	log      *slog.Logger
}

// NewLoader creates a Loader caching into cacheDir and slicing images into
// grid×grid tiles.
func NewLoader(cacheDir string, grid int, log *slog.Logger) *Loader {
	return &Loader{cacheDir: cacheDir, grid: grid, log: log}
}

// Fetch copies src into the cache and returns the local file path. src is any
// go-getter source: a local path, an http(s) URL, an s3:: or gcs:: address.
// A source that already is the cached file is returned as is. Otherwise the
// download lands in a temporary file that replaces the cached one only once
// it is complete.
func (l *Loader) Fetch(ctx context.Context, src string) (string, error) {
	if err := os.MkdirAll(l.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory %s: %w", l.cacheDir, err)
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	dst := filepath.Join(l.cacheDir, cacheName(src))
	if samePath(src, dst) {
		return dst, nil
	}

	tmp := dst + ".download"
	if err := os.RemoveAll(tmp); err != nil {
		return "", fmt.Errorf("clear %s: %w", tmp, err)
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  tmp,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.RemoveAll(tmp)
		return "", fmt.Errorf("rename %s: %w", tmp, err)
	}
	return dst, nil
}

// samePath reports whether the local path src names the file dst. Sources
// that are not local paths never match.
func samePath(src, dst string) bool {
	a, err := filepath.Abs(src)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(dst)
	if err != nil {
		return false
	}
	if a == b {
		return true
	}
	sa, errA := os.Stat(a)
	sb, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(sa, sb)
}

// cacheName derives the cached file name from the last path element of src.
func cacheName(src string) string {
	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(filepath.ToSlash(p))
	if name == "." || name == "/" {
		return "atlas"
	}
	return name
}

// Decode reads a PNG, BMP or WebP image file.
func Decode(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", file, err)
	}
	return img, nil
}

// Load fetches and decodes src into a textured atlas.
func (l *Loader) Load(ctx context.Context, src string) (*atlas.Atlas, error) {
	file, err := l.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	img, err := Decode(file)
	if err != nil {
		return nil, err
	}
	return atlas.WithImage(l.grid, img)
}

// LoadAtlas is Load with fallback: any failure is logged and an untextured
// atlas is returned, so terrain renders with block colors instead.
func (l *Loader) LoadAtlas(ctx context.Context, src string) *atlas.Atlas {
	if src == "" {
		l.log.Info("no atlas configured, using block colors")
		return atlas.New(l.grid)
	}
	at, err := l.Load(ctx, src)
	if err != nil {
		l.log.Warn("atlas unavailable, using block colors", "source", src, "error", err)
		return atlas.New(l.grid)
	}
	b := at.Image().Bounds()
	l.log.Info("loaded atlas", "source", src, "size", b.Dx(), "grid", at.Grid())
	return at
}
