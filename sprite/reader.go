package sprite

import (
	"encoding/binary"
	"errors"
	"image"
)

var (
	// ErrTruncated is returned when the sprite data runs past its block.
	ErrTruncated = errors.New("sprite: not enough image data")
	// ErrTooWide is returned when a row holds more pixels than the width.
	ErrTooWide = errors.New("sprite: row exceeds sprite width")
)

// Sprite is a decoded sprite.
type Sprite struct {
	// Image holds the pixels, Background where nothing was drawn.
	Image *image.Paletted
	// XOffset and YOffset position the sprite relative to its base point.
	XOffset int
	YOffset int
}

// Width returns the width of the sprite in pixels.
func (s *Sprite) Width() int {
	return s.Image.Rect.Dx()
}

// Height returns the height of the sprite in pixels.
func (s *Sprite) Height() int {
	return s.Image.Rect.Dy()
}

type decoder struct {
	b []byte

	width, height int
	xOffset       int
	yOffset       int

	image *image.Paletted
}

func (d *decoder) uint8(off int) (uint8, error) {
	if off < 0 || off >= len(d.b) {
		return 0, ErrTruncated
	}
	return d.b[off], nil
}

func (d *decoder) uint16(off int) (uint16, error) {
	if off < 0 || off+2 > len(d.b) {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint16(d.b[off:]), nil
}

func (d *decoder) uint32(off int) (uint32, error) {
	if off < 0 || off+4 > len(d.b) {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(d.b[off:]), nil
}

func (d *decoder) readHeader() error {
	if len(d.b) < rowTable {
		return ErrTruncated
	}
	d.width = int(binary.LittleEndian.Uint16(d.b[widthOffset:]))
	d.height = int(binary.LittleEndian.Uint16(d.b[heightOffset:]))
	d.xOffset = int(int16(binary.LittleEndian.Uint16(d.b[xOffset:])))
	d.yOffset = int(int16(binary.LittleEndian.Uint16(d.b[yOffset:])))
	return nil
}

func (d *decoder) readRow(y int) error {
	ptr, err := d.uint32(rowTable + y*4)
	if err != nil {
		return err
	}
	if ptr == 0 {
		return nil
	}

	i := rowTable + int(ptr)
	x := 0
	for {
		control, err := d.uint8(i)
		if err != nil {
			return err
		}
		count, err := d.uint8(i + 1)
		if err != nil {
			return err
		}
		i += 2

		x += int(control & skipMask)
		if count > 0 && x+int(count) > d.width {
			return ErrTooWide
		}
		if i+int(count) > len(d.b) {
			return ErrTruncated
		}
		copy(d.image.Pix[y*d.image.Stride+x:], d.b[i:i+int(count)])
		i += int(count)
		x += int(count)

		if control&lastMask != 0 {
			return nil
		}
	}
}

func (d *decoder) decode(b []byte, configOnly bool) error {
	d.b = b

	if err := d.readHeader(); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), Palette)

	for y := 0; y < d.height; y++ {
		if err := d.readRow(y); err != nil {
			return err
		}
	}

	return nil
}

// Decode decodes the sprite in block, which holds the complete block
// including its 12 byte header.
func Decode(block []byte) (*Sprite, error) {
	var d decoder
	if err := d.decode(block, false); err != nil {
		return nil, err
	}
	return &Sprite{
		Image:   d.image,
		XOffset: d.xOffset,
		YOffset: d.yOffset,
	}, nil
}

// DecodeConfig returns the color model and dimensions of the sprite in
// block without decoding the pixels.
func DecodeConfig(block []byte) (image.Config, error) {
	var d decoder
	if err := d.decode(block, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: Palette,
		Width:      d.width,
		Height:     d.height,
	}, nil
}
