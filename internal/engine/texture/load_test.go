package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{200, 10, 10, 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{10, 10, 200, 255})
			}
		}
	}
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_Formats(t *testing.T) {
	src := checker(4, 3)

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	tga := tgaHeader(TGATypeUncompressed, 4, 3, 32, 0x20)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := src.RGBAAt(x, y)
			tga = append(tga, c.B, c.G, c.R, c.A)
		}
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"terrain.png", pngBuf.Bytes()},
		{"terrain.bmp", bmpBuf.Bytes()},
		{"terrain.TGA", tga},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := LoadFile(writeFile(t, tt.name, tt.data))
			if err != nil {
				t.Fatalf("LoadFile failed: %v", err)
			}
			if img.Bounds() != src.Bounds() {
				t.Fatalf("expected bounds %v, got %v", src.Bounds(), img.Bounds())
			}
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					if got, want := img.RGBAAt(x, y), src.RGBAAt(x, y); got != want {
						t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("expected ErrTextureNotFound, got %v", err)
	}
}

func TestLoadFile_Undecodable(t *testing.T) {
	path := writeFile(t, "garbage.png", []byte("definitely not an image"))
	_, err := LoadFile(path)
	if !errors.Is(err, ErrTextureDecode) {
		t.Errorf("expected ErrTextureDecode, got %v", err)
	}
	if errors.Is(err, ErrTextureNotFound) {
		t.Error("decode failure must not look like a missing file")
	}
}

func TestToRGBA_Rebases(t *testing.T) {
	src := checker(4, 4).SubImage(image.Rect(1, 1, 3, 3))
	rgba := ToRGBA(src)
	if rgba.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("expected rebased 2x2 bounds, got %v", rgba.Bounds())
	}
	if got, want := rgba.RGBAAt(0, 0), src.At(1, 1); got != want {
		t.Errorf("expected %v at origin, got %v", want, got)
	}
}

func TestFitToSize(t *testing.T) {
	img := checker(64, 16)

	if got := FitToSize(img, 128); got != img {
		t.Error("image within limit should be returned unchanged")
	}

	got := FitToSize(img, 32)
	if got.Bounds().Dx() != 32 || got.Bounds().Dy() != 8 {
		t.Errorf("expected 32x8, got %v", got.Bounds())
	}

	tall := FitToSize(checker(3, 300), 30)
	if tall.Bounds().Dx() != 1 || tall.Bounds().Dy() != 30 {
		t.Errorf("expected 1x30, got %v", tall.Bounds())
	}
}
