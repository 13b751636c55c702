package page

import (
	"errors"
	"image"

	"github.com/bodgit/rcd/sprite"
)

// ErrTooLarge is returned for a sprite that does not fit on an empty page.
var ErrTooLarge = errors.New("page: sprite does not fit on a page")

// Writer receives each completed page.
type Writer interface {
	WritePage(m *image.Paletted) error
}

// Compositor collects sprites onto pages. At most one page is held in
// memory, it is passed to the Writer once it is full or on Flush.
type Compositor struct {
	w Writer

	page    *image.Paletted
	x, y    int
	ybottom int
}

// New returns a Compositor handing completed pages to w.
func New(w Writer) *Compositor {
	return &Compositor{w: w}
}

func (c *Compositor) newPage() {
	c.page = image.NewPaletted(image.Rect(0, 0, Width, Height), sprite.Palette)
	c.x = margin
	c.y = margin
	c.ybottom = margin
}

// Add places s on the current page, labelled with number.
func (c *Compositor) Add(s *sprite.Sprite, number int) error {
	w, h := s.Width(), s.Height()
	if lw := labelWidth(number); lw > w {
		w = lw
	}
	if margin+w > Width-margin || margin+h >= Height-margin {
		return ErrTooLarge
	}

	if c.page == nil {
		c.newPage()
	}

	if c.x+w > Width-margin {
		c.x = margin
		c.y = c.ybottom + margin
		c.ybottom = c.y
	}

	if c.y+h >= Height-margin {
		if err := c.Flush(); err != nil {
			return err
		}
		c.newPage()
	}

	if c.y+h > c.ybottom {
		c.ybottom = c.y + h
	}

	for i, row := range label(number) {
		y := c.y - labelTop + i
		for j := range row {
			if row[j] != ' ' {
				c.page.SetColorIndex(c.x+j, y, sprite.Label)
			}
		}
	}

	for y := 0; y < s.Height(); y++ {
		src := s.Image.Pix[y*s.Image.Stride : y*s.Image.Stride+s.Width()]
		dst := c.page.PixOffset(c.x, c.y+y)
		copy(c.page.Pix[dst:dst+len(src)], src)
	}

	c.x += w + margin

	return nil
}

// Pending reports whether there is a page not yet written.
func (c *Compositor) Pending() bool {
	return c.page != nil
}

// Flush writes the current page, if any, and releases it.
func (c *Compositor) Flush() error {
	if c.page == nil {
		return nil
	}
	m := c.page
	c.page = nil
	return c.w.WritePage(m)
}
