package page

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
)

// Encode writes m to w as a PNG image. If colors is between 1 and 255 the
// palette is first reduced to that many colors.
func Encode(w io.Writer, m *image.Paletted, colors int) error {
	if colors > 0 && colors < len(m.Palette) {
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}
	return png.Encode(w, m)
}

// FileWriter writes pages to numbered PNG files in a directory. Numbering
// starts at 1 and carries on across all pages written through the same
// FileWriter.
type FileWriter struct {
	Dir    string // Output directory, the working directory if empty
	Prefix string // Filename prefix, "img" if empty
	Colors int    // Reduce pages to this many colors if between 1 and 255

	number int
}

// Next returns the path the next page will be written to.
func (fw *FileWriter) Next() string {
	prefix := fw.Prefix
	if prefix == "" {
		prefix = "img"
	}
	return filepath.Join(fw.Dir, fmt.Sprintf("%s%02d.png", prefix, fw.number+1))
}

// WritePage writes m to the next file.
func (fw *FileWriter) WritePage(m *image.Paletted) (err error) {
	f, err := os.Create(fw.Next())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err = Encode(f, m, fw.Colors); err != nil {
		return err
	}
	fw.number++

	return nil
}

// Written returns the number of pages written so far.
func (fw *FileWriter) Written() int {
	return fw.number
}
