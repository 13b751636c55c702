package rcd

import (
	"encoding/binary"
	"fmt"
)

// Tag is the four byte identifier at the start of the file and of every
// block.
type Tag [4]byte

func (t Tag) String() string {
	return string(t[:])
}

// TruncatedError is returned when a read runs past the end of the input.
type TruncatedError struct {
	Offset int
	Want   int
	Size   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("rcd: truncated input: %d byte(s) wanted at offset 0x%06X, size is 0x%06X", e.Want, e.Offset, e.Size)
}

// Reader provides little-endian accessors at arbitrary offsets of an RCD
// file. The first out of range access is remembered and returned by Err,
// that and any later access return zero.
type Reader struct {
	data []byte
	err  error
}

// NewReader returns a Reader over data. The data is not copied and must not
// be modified while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Size returns the size of the underlying data.
func (r *Reader) Size() int {
	return len(r.data)
}

// Err returns the first out of range access, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) slice(off, n int) []byte {
	if r.err != nil {
		return nil
	}
	if off < 0 || n > len(r.data) || off > len(r.data)-n {
		r.err = &TruncatedError{Offset: off, Want: n, Size: len(r.data)}
		return nil
	}
	return r.data[off : off+n]
}

// Bytes returns n bytes starting at off.
func (r *Reader) Bytes(off, n int) []byte {
	return r.slice(off, n)
}

// Tag returns the four byte tag at off.
func (r *Reader) Tag(off int) (t Tag) {
	if b := r.slice(off, len(t)); b != nil {
		copy(t[:], b)
	}
	return
}

// Uint8 returns the byte at off.
func (r *Reader) Uint8(off int) uint8 {
	if b := r.slice(off, 1); b != nil {
		return b[0]
	}
	return 0
}

// Uint16 returns the unsigned 16-bit value at off.
func (r *Reader) Uint16(off int) uint16 {
	if b := r.slice(off, 2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// Int16 returns the two's complement 16-bit value at off.
func (r *Reader) Int16(off int) int16 {
	return int16(r.Uint16(off))
}

// Uint32 returns the unsigned 32-bit value at off.
func (r *Reader) Uint32(off int) uint32 {
	if b := r.slice(off, 4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// Int32 returns the two's complement 32-bit value at off.
func (r *Reader) Int32(off int) int32 {
	return int32(r.Uint32(off))
}
