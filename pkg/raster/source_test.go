package raster

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/redmarklab/redmark/pkg/geom"
)

func TestBackupOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("original-bytes"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := &Source{Path: path}
	backup, err := src.BackupOriginal()
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	want := filepath.Join(dir, BackupDirName, "photo.jpg")
	if backup != want {
		t.Fatalf("got %s, want %s", backup, want)
	}
	data, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(data) != "original-bytes" {
		t.Fatalf("backup content got %q", data)
	}

	// A second backup must not overwrite the first.
	if err := os.WriteFile(path, []byte("edited-bytes"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if _, err := src.BackupOriginal(); err != nil {
		t.Fatalf("second backup: %v", err)
	}
	data, _ = os.ReadFile(backup)
	if string(data) != "original-bytes" {
		t.Fatalf("backup was overwritten: %q", data)
	}
}

func TestBackupOriginalNoPath(t *testing.T) {
	src := &Source{}
	if _, err := src.BackupOriginal(); err == nil {
		t.Fatalf("expected error for source without path")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	img := solidNRGBA(8, 6, 200, 10, 10, 255)
	if err := Save(img, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	src, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b := src.Original.Bounds()
	if b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("got %dx%d, want 8x6", b.Dx(), b.Dy())
	}
	if px := src.Original.NRGBAAt(3, 3); px.R != 200 {
		t.Fatalf("pixel R got %d, want 200", px.R)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveNil(t *testing.T) {
	if err := Save(nil, "x.png"); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestCrop(t *testing.T) {
	img := solidNRGBA(10, 10, 0, 0, 0, 255)
	img.SetNRGBA(5, 5, color.NRGBA{R: 250, A: 255})
	out := Crop(img, geom.R(2, 2, 6, 6))
	b := out.Bounds()
	if b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("got %dx%d, want 6x6", b.Dx(), b.Dy())
	}
	// (5,5) in the original lands at (3,3) in the crop.
	if px := out.NRGBAAt(3, 3); px.R != 250 {
		t.Fatalf("pixel moved: got R=%d at (3,3)", px.R)
	}
}

func TestCropClampsToBounds(t *testing.T) {
	img := solidNRGBA(10, 10, 1, 2, 3, 255)
	out := Crop(img, geom.R(-5, -5, 100, 100))
	b := out.Bounds()
	if b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("got %dx%d, want 10x10", b.Dx(), b.Dy())
	}
}

func TestFullBounds(t *testing.T) {
	img := solidNRGBA(7, 3, 0, 0, 0, 255)
	if got := FullBounds(img); got != geom.R(0, 0, 7, 3) {
		t.Fatalf("got %+v", got)
	}
	if got := FullBounds(nil); !got.Empty() {
		t.Fatalf("nil image bounds should be empty, got %+v", got)
	}
}
