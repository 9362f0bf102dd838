package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// BMP format errors.
var (
	ErrInvalidBMPMagic      = errors.New("invalid BMP magic: expected 'BM'")
	ErrInvalidBMPDimensions = errors.New("invalid BMP dimensions")
	ErrUnsupportedBMPDepth  = errors.New("unsupported BMP pixel format")
	ErrTruncatedBMPHeader   = errors.New("truncated BMP header")
	ErrTruncatedBMPPixels   = errors.New("truncated BMP pixel data")
)

// BMP header sizes.
const (
	BMPFileHeaderSize = 14
	BMPInfoHeaderSize = 40
	BMPHeaderSize     = BMPFileHeaderSize + BMPInfoHeaderSize
)

// BMPBytesPerPixel is the only pixel stride accepted for heightmaps (24-bit).
const BMPBytesPerPixel = 3

type bmpFileHeader struct {
	Magic     [2]byte
	FileSize  uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

type bmpInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// BMP is an uncompressed 24-bit raster used as a heightmap source.
// Pixels holds Width*Height tightly packed 3-byte pixels in file order.
type BMP struct {
	Width       int
	Height      int
	PixelOffset uint32
	Pixels      []byte
}

// Size returns the raster dimensions in pixels.
func (b *BMP) Size() (width, height int) {
	return b.Width, b.Height
}

// Brightness returns the first channel of pixel (i, j), where i is the
// column and j the row in file order.
func (b *BMP) Brightness(i, j int) uint8 {
	return b.Pixels[(j*b.Width+i)*BMPBytesPerPixel]
}

// ParseBMP parses a heightmap BMP from raw bytes.
func ParseBMP(data []byte) (*BMP, error) {
	if len(data) < BMPHeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedBMPHeader, len(data), BMPHeaderSize)
	}

	r := bytes.NewReader(data)

	var fh bmpFileHeader
	if err := binary.Read(r, binary.LittleEndian, &fh); err != nil {
		return nil, fmt.Errorf("%w: reading file header", ErrTruncatedBMPHeader)
	}
	if fh.Magic != [2]byte{'B', 'M'} {
		return nil, ErrInvalidBMPMagic
	}

	var ih bmpInfoHeader
	if err := binary.Read(r, binary.LittleEndian, &ih); err != nil {
		return nil, fmt.Errorf("%w: reading info header", ErrTruncatedBMPHeader)
	}

	if ih.Width < 1 || ih.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBMPDimensions, ih.Width, ih.Height)
	}
	if ih.BitCount != 24 || ih.Compression != 0 {
		return nil, fmt.Errorf("%w: %d bpp, compression %d", ErrUnsupportedBMPDepth, ih.BitCount, ih.Compression)
	}

	offset := int64(fh.OffBits)
	avail := int64(0)
	if offset < int64(len(data)) {
		avail = int64(len(data)) - offset
	}

	// Both dimensions fit in int32, so the pixel count cannot overflow int64.
	pixels := int64(ih.Width) * int64(ih.Height)
	if pixels > avail/BMPBytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d pixels", ErrTruncatedBMPPixels, avail, ih.Width, ih.Height)
	}

	width := int(ih.Width)
	height := int(ih.Height)
	size := int(pixels) * BMPBytesPerPixel

	return &BMP{
		Width:       width,
		Height:      height,
		PixelOffset: fh.OffBits,
		Pixels:      data[int(offset) : int(offset)+size],
	}, nil
}

// ParseBMPFile parses a heightmap BMP from disk.
func ParseBMPFile(path string) (*BMP, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading BMP file: %w", err)
	}
	return ParseBMP(data)
}

// EncodeBMP writes a grayscale heightmap in the layout ParseBMP reads:
// 24-bit, uncompressed, rows tightly packed with no stride padding.
func EncodeBMP(w io.Writer, width, height int, brightness func(i, j int) uint8) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBMPDimensions, width, height)
	}

	size := width * height * BMPBytesPerPixel
	fh := bmpFileHeader{
		Magic:    [2]byte{'B', 'M'},
		FileSize: uint32(BMPHeaderSize + size),
		OffBits:  BMPHeaderSize,
	}
	ih := bmpInfoHeader{
		Size:      BMPInfoHeaderSize,
		Width:     int32(width),
		Height:    int32(height),
		Planes:    1,
		BitCount:  24,
		SizeImage: uint32(size),
	}

	buf := new(bytes.Buffer)
	buf.Grow(BMPHeaderSize + size)
	if err := binary.Write(buf, binary.LittleEndian, fh); err != nil {
		return fmt.Errorf("writing BMP file header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, ih); err != nil {
		return fmt.Errorf("writing BMP info header: %w", err)
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			b := brightness(i, j)
			buf.Write([]byte{b, b, b})
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
