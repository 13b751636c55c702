/*
Package rcd is a library for inspecting the RCD data files of FreeRCT.

An RCD file is an 8 byte header followed by a flat sequence of blocks, each
with a 4 byte tag, a 32-bit version, a 32-bit payload length and the
payload. All numbers are little-endian.
*/
package rcd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/bodgit/rcd/page"
	"github.com/bodgit/rcd/sprite"
	"github.com/cespare/xxhash/v2"
)

var spriteKey = newKey(sprite.Tag, sprite.Version)

// Inspector prints a report of RCD files and renders their sprites onto
// pages.
type Inspector struct {
	w      io.Writer
	pages  page.Writer
	logger *log.Logger
}

// New returns an Inspector printing to w and handing sprite pages to pages.
// If pages is nil sprites are decoded but not rendered.
func New(w io.Writer, pages page.Writer, logger *log.Logger) *Inspector {
	return &Inspector{
		w:      w,
		pages:  pages,
		logger: logger,
	}
}

// InspectFile reads file, decompressing it if required, and inspects it.
func (in *Inspector) InspectFile(file string) error {
	b, compression, err := readFile(file)
	if err != nil {
		return err
	}
	if compression != "" {
		in.logger.Printf("Decompressed \"%s\" (%s), %d bytes\n", file, compression, len(b))
	} else {
		in.logger.Printf("Read \"%s\", %d bytes\n", file, len(b))
	}

	if _, err := in.Inspect(b); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return nil
}

// Inspect prints the report for the RCD file held in data and returns the
// per tag block counts. A file with an unexpected header is reported and
// ErrSignature returned without looking at any blocks.
func (in *Inspector) Inspect(data []byte) (stats *Statistics, err error) {
	bw := bufio.NewWriter(in.w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	r := NewReader(data)
	walker, err := NewWalker(r)
	var truncated *TruncatedError
	if errors.As(err, &truncated) {
		return nil, err
	}

	tag, version := walker.Header()
	fmt.Fprintf(bw, "%06X: (file header)\n", 0)
	fmt.Fprintf(bw, "    Name: %q\n", tag.String())
	fmt.Fprintf(bw, "    Version: %d\n", version)
	fmt.Fprintln(bw)
	if err != nil {
		fmt.Fprintln(bw, "ERROR")
		return nil, err
	}

	stats = NewStatistics()
	var compositor *page.Compositor
	if in.pages != nil {
		compositor = page.New(in.pages)
	}

	for walker.Next() {
		b := walker.Block()

		fmt.Fprintf(bw, "%06X (block %d)\n", b.Offset, b.Number)
		fmt.Fprintf(bw, "    Name: %q\n", b.Tag.String())
		fmt.Fprintf(bw, "    Version: %d\n", b.Version)
		fmt.Fprintf(bw, "    Length: %d(+12)\n", b.Length)
		stats.Add(b.Tag)

		if b.End() <= len(data) {
			in.logger.Printf("Block %d payload digest %016x\n", b.Number, xxhash.Sum64(data[b.Payload():b.End()]))
		}

		var lines []string
		if b.Key() == spriteKey {
			lines, err = in.addSprite(r, b, compositor)
		} else if decode := LookupDecoder(b.Key()); decode != nil {
			lines, err = decode(r, b.Offset)
		}
		if err != nil {
			return stats, fmt.Errorf("block %d at 0x%06X: %w", b.Number, b.Offset, err)
		}

		for _, line := range lines {
			fmt.Fprintln(bw, line)
		}
		fmt.Fprintln(bw)
	}
	if err := walker.Err(); err != nil {
		return stats, err
	}

	if compositor != nil {
		if err := compositor.Flush(); err != nil {
			return stats, err
		}
	}

	if _, err := stats.WriteTo(bw); err != nil {
		return stats, err
	}

	return stats, nil
}

func (in *Inspector) addSprite(r *Reader, b Block, compositor *page.Compositor) ([]string, error) {
	block := r.Bytes(b.Offset, blockHeaderSize+int(b.Length))
	if err := r.Err(); err != nil {
		return nil, err
	}

	s, err := sprite.Decode(block)
	if err != nil {
		return nil, err
	}

	rp := report{prefix: sprite.Tag}
	rp.add("width: %d", s.Width())
	rp.add("height: %d", s.Height())
	rp.add("x-offset: %d", s.XOffset)
	rp.add("y-offset: %d", s.YOffset)

	if compositor != nil {
		if err := compositor.Add(s, b.Number); err != nil {
			return nil, err
		}
	}

	return rp.lines, nil
}
