package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// createTestBMP creates a heightmap BMP whose pixel (i, j) brightness is f(i, j).
func createTestBMP(t *testing.T, width, height int, f func(i, j int) uint8) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := EncodeBMP(buf, width, height, f); err != nil {
		t.Fatalf("EncodeBMP failed: %v", err)
	}
	return buf.Bytes()
}

func TestParseBMP_ValidFile(t *testing.T) {
	data := createTestBMP(t, 4, 3, func(i, j int) uint8 { return uint8(j*10 + i) })

	bmp, err := ParseBMP(data)
	if err != nil {
		t.Fatalf("ParseBMP failed: %v", err)
	}

	if bmp.Width != 4 {
		t.Errorf("expected width 4, got %d", bmp.Width)
	}
	if bmp.Height != 3 {
		t.Errorf("expected height 3, got %d", bmp.Height)
	}
	if bmp.PixelOffset != BMPHeaderSize {
		t.Errorf("expected pixel offset %d, got %d", BMPHeaderSize, bmp.PixelOffset)
	}
	if len(bmp.Pixels) != 4*3*3 {
		t.Errorf("expected %d pixel bytes, got %d", 4*3*3, len(bmp.Pixels))
	}

	for j := 0; j < 3; j++ {
		for i := 0; i < 4; i++ {
			if got, want := bmp.Brightness(i, j), uint8(j*10+i); got != want {
				t.Errorf("brightness(%d,%d): expected %d, got %d", i, j, want, got)
			}
		}
	}
}

func TestParseBMP_FirstChannelOnly(t *testing.T) {
	data := createTestBMP(t, 2, 1, func(i, j int) uint8 { return 0 })
	// Write distinct values into the second and third channels of pixel 0.
	data[BMPHeaderSize] = 200
	data[BMPHeaderSize+1] = 7
	data[BMPHeaderSize+2] = 9

	bmp, err := ParseBMP(data)
	if err != nil {
		t.Fatalf("ParseBMP failed: %v", err)
	}
	if got := bmp.Brightness(0, 0); got != 200 {
		t.Errorf("expected first channel 200, got %d", got)
	}
	if got := bmp.Brightness(1, 0); got != 0 {
		t.Errorf("expected pixel 1 brightness 0, got %d", got)
	}
}

func TestParseBMP_HonorsPixelOffset(t *testing.T) {
	data := createTestBMP(t, 2, 2, func(i, j int) uint8 { return 50 })

	// Insert a 6-byte gap between headers and pixels and move bfOffBits.
	gap := make([]byte, 6)
	shifted := append(append(append([]byte{}, data[:BMPHeaderSize]...), gap...), data[BMPHeaderSize:]...)
	binary.LittleEndian.PutUint32(shifted[10:], BMPHeaderSize+6)

	bmp, err := ParseBMP(shifted)
	if err != nil {
		t.Fatalf("ParseBMP failed: %v", err)
	}
	if got := bmp.Brightness(1, 1); got != 50 {
		t.Errorf("expected brightness 50 after offset, got %d", got)
	}
}

func TestParseBMP_Errors(t *testing.T) {
	valid := createTestBMP(t, 3, 3, func(i, j int) uint8 { return 128 })

	withInfo := func(off int, v uint32, size int) []byte {
		d := append([]byte{}, valid...)
		switch size {
		case 2:
			binary.LittleEndian.PutUint16(d[off:], uint16(v))
		case 4:
			binary.LittleEndian.PutUint32(d[off:], v)
		}
		return d
	}

	// 0x7FFFFFFF x 0x7FFFFFFF overflows a 64-bit byte count
	huge := withInfo(18, 0x7FFFFFFF, 4)
	binary.LittleEndian.PutUint32(huge[22:], 0x7FFFFFFF)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedBMPHeader},
		{"short file header", valid[:10], ErrTruncatedBMPHeader},
		{"short info header", valid[:BMPHeaderSize-1], ErrTruncatedBMPHeader},
		{"bad magic", append([]byte("XX"), valid[2:]...), ErrInvalidBMPMagic},
		{"zero width", withInfo(18, 0, 4), ErrInvalidBMPDimensions},
		{"negative height", withInfo(22, 0xFFFFFFFD, 4), ErrInvalidBMPDimensions},
		{"8 bit", withInfo(28, 8, 2), ErrUnsupportedBMPDepth},
		{"compressed", withInfo(30, 1, 4), ErrUnsupportedBMPDepth},
		{"short pixels", valid[:len(valid)-1], ErrTruncatedBMPPixels},
		{"offset past end", withInfo(10, 1<<20, 4), ErrTruncatedBMPPixels},
		{"wide header on tiny file", withInfo(18, 0x7FFFFFFF, 4), ErrTruncatedBMPPixels},
		{"huge dimensions", huge, ErrTruncatedBMPPixels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBMP(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseBMPFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heightmap.bmp")
	data := createTestBMP(t, 2, 2, func(i, j int) uint8 { return uint8(i + j) })
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	bmp, err := ParseBMPFile(path)
	if err != nil {
		t.Fatalf("ParseBMPFile failed: %v", err)
	}
	if bmp.Brightness(1, 1) != 2 {
		t.Errorf("expected brightness 2, got %d", bmp.Brightness(1, 1))
	}

	_, err = ParseBMPFile(filepath.Join(dir, "missing.bmp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestEncodeBMP_InvalidDimensions(t *testing.T) {
	err := EncodeBMP(new(bytes.Buffer), 0, 4, func(i, j int) uint8 { return 0 })
	if !errors.Is(err, ErrInvalidBMPDimensions) {
		t.Errorf("expected ErrInvalidBMPDimensions, got %v", err)
	}
}
