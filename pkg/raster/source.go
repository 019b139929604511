package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/redmarklab/redmark/pkg/geom"
)

// BackupDirName is the sibling directory untouched originals are copied
// into before the first save.
const BackupDirName = "rawdatas"

// Source is a loaded image together with the file it came from.
type Source struct {
	Path     string
	Original *image.NRGBA
}

// Load decodes the image at path, honoring EXIF orientation.
func Load(path string) (*Source, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Source{Path: path, Original: imaging.Clone(img)}, nil
}

// Save encodes img to path, with format chosen by extension. JPEG output
// uses quality 90.
func Save(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("save %s: nil image", path)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// BackupOriginal copies the source file into a sibling rawdatas/ directory,
// creating it if needed. An existing backup is left alone. Returns the
// backup path. The copy is byte-for-byte, not a re-encode.
func (s *Source) BackupOriginal() (string, error) {
	if s.Path == "" {
		return "", fmt.Errorf("backup: source has no path")
	}
	dir := filepath.Join(filepath.Dir(s.Path), BackupDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	dst := filepath.Join(dir, filepath.Base(s.Path))
	if _, err := os.Stat(dst); err == nil {
		return dst, nil
	}
	in, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("backup: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("backup: %w", err)
	}
	return dst, nil
}

// Crop extracts the region r from src. The float rect is rounded to pixel
// edges and clamped to the image bounds; an empty result yields a 0x0
// image rather than an error.
func Crop(src *image.NRGBA, r geom.Rect) *image.NRGBA {
	if src == nil {
		return nil
	}
	x0 := int(math.Round(r.Min.X))
	y0 := int(math.Round(r.Min.Y))
	x1 := int(math.Round(r.Min.X + r.W))
	y1 := int(math.Round(r.Min.Y + r.H))
	return imaging.Crop(src, image.Rect(x0, y0, x1, y1))
}

// FullBounds returns the image extent as a float rect anchored at origin.
func FullBounds(img *image.NRGBA) geom.Rect {
	if img == nil {
		return geom.Rect{}
	}
	b := img.Bounds()
	return geom.R(0, 0, float64(b.Dx()), float64(b.Dy()))
}
