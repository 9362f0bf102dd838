// Package texture decodes the terrain's colour and bump images into RGBA
// pixels ready for GPU upload.
package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// DecodeTGA decodes a TGA image.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10)
// images at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("%w: TGA header needs %d bytes, got %d", ErrTextureDecode, tgaHeaderSize, len(data))
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped TGA not supported", ErrTextureDecode)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: unsupported TGA type %d", ErrTextureDecode, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: unsupported TGA bit depth %d", ErrTextureDecode, bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty TGA image %dx%d", ErrTextureDecode, width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("%w: TGA id field truncated", ErrTextureDecode)
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0, // Bit 5: origin at top
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	width       int
	height      int
	bpp         int
	topToBottom bool
}

// pixel reads one BGR(A) pixel from the source.
func (d *tgaDecoder) pixel() (color.RGBA, bool) {
	if d.pos+d.bpp > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c, true
}

// set stores the n-th pixel in file order.
func (d *tgaDecoder) set(n int, c color.RGBA) {
	x := n % d.width
	y := n / d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) raw() error {
	total := d.width * d.height
	if need := total * d.bpp; len(d.src) < need {
		return fmt.Errorf("%w: TGA pixel data has %d bytes, need %d", ErrTextureDecode, len(d.src), need)
	}
	for n := 0; n < total; n++ {
		c, _ := d.pixel()
		d.set(n, c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.width * d.height
	n := 0

	for n < total {
		if d.pos >= len(d.src) {
			return fmt.Errorf("%w: TGA RLE data ends after %d of %d pixels", ErrTextureDecode, n, total)
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run: one pixel repeated
			c, ok := d.pixel()
			if !ok {
				return fmt.Errorf("%w: TGA RLE run truncated", ErrTextureDecode)
			}
			for i := 0; i < count && n < total; i++ {
				d.set(n, c)
				n++
			}
			continue
		}

		// Raw packet
		for i := 0; i < count && n < total; i++ {
			c, ok := d.pixel()
			if !ok {
				return fmt.Errorf("%w: TGA RLE raw packet truncated", ErrTextureDecode)
			}
			d.set(n, c)
			n++
		}
	}
	return nil
}
