package rcd

import "fmt"

const (
	// FileSignature is the tag expected at the start of an RCD file.
	FileSignature = "RCDF"
	// FileVersion is the only supported file version.
	FileVersion = 1

	headerSize      = 8
	blockHeaderSize = 12
)

// Block describes a single block found by a Walker.
type Block struct {
	Offset  int // Offset of the block header in the file
	Number  int // 1-based position of the block in the file
	Tag     Tag
	Version uint32
	Length  uint32 // Length of the payload, excluding the block header
}

// Payload returns the offset of the first byte after the block header.
func (b Block) Payload() int {
	return b.Offset + blockHeaderSize
}

// End returns the offset of the first byte after the block.
func (b Block) End() int {
	return b.Offset + blockHeaderSize + int(b.Length)
}

// Key returns the tag and version used to select a decoder.
func (b Block) Key() Key {
	return Key{Tag: b.Tag, Version: b.Version}
}

// Walker iterates over the blocks of an RCD file. Successive calls to Next
// step through the blocks until the end of the file or an error.
type Walker struct {
	r       *Reader
	tag     Tag
	version uint32
	offset  int
	block   Block
	started bool
	done    bool
	err     error
}

// NewWalker checks the file header and returns a Walker positioned before
// the first block. The header is returned by Header even if the signature
// is rejected.
func NewWalker(r *Reader) (*Walker, error) {
	w := &Walker{
		r:       r,
		tag:     r.Tag(0),
		version: r.Uint32(4),
		offset:  headerSize,
	}
	if err := r.Err(); err != nil {
		return w, err
	}
	if w.tag.String() != FileSignature || w.version != FileVersion {
		return w, fmt.Errorf("%w: %q version %d", ErrSignature, w.tag.String(), w.version)
	}
	return w, nil
}

// Header returns the tag and version found at the start of the file.
func (w *Walker) Header() (Tag, uint32) {
	return w.tag, w.version
}

// Next advances to the next block, which is then available through Block.
// It returns false at the end of the file or after an error.
func (w *Walker) Next() bool {
	if w.done {
		return false
	}

	if w.started {
		if w.block.Length == 0 {
			return w.fail(fmt.Errorf("%w: block %d at 0x%06X is empty", ErrBlockLength, w.block.Number, w.block.Offset))
		}
		w.offset = w.block.End()
	}

	size := w.r.Size()
	if w.offset >= size {
		w.done = true
		if w.offset != size {
			w.err = fmt.Errorf("%w: last block ends at 0x%06X, file size is 0x%06X", ErrIntegrity, w.offset, size)
		}
		return false
	}
	if size-w.offset < blockHeaderSize {
		return w.fail(fmt.Errorf("%w: %d dangling byte(s) at 0x%06X", ErrIntegrity, size-w.offset, w.offset))
	}

	w.block = Block{
		Offset:  w.offset,
		Number:  w.block.Number + 1,
		Tag:     w.r.Tag(w.offset),
		Version: w.r.Uint32(w.offset + 4),
		Length:  w.r.Uint32(w.offset + 8),
	}
	if err := w.r.Err(); err != nil {
		return w.fail(err)
	}
	w.started = true

	return true
}

func (w *Walker) fail(err error) bool {
	w.done = true
	w.err = err
	return false
}

// Block returns the current block.
func (w *Walker) Block() Block {
	return w.block
}

// Err returns the first error encountered by the Walker.
func (w *Walker) Err() error {
	return w.err
}
