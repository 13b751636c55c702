package rcd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{'T', 'E', 'S', 'T', 0x34, 0x12, 0xfe, 0xff, 0x78, 0x56, 0x34, 0x12})

	assert.Equal(t, 12, r.Size())
	assert.Equal(t, "TEST", r.Tag(0).String())
	assert.Equal(t, uint8(0x34), r.Uint8(4))
	assert.Equal(t, uint16(0x1234), r.Uint16(4))
	assert.Equal(t, int16(-2), r.Int16(6))
	assert.Equal(t, uint16(0xfffe), r.Uint16(6))
	assert.Equal(t, uint32(0x12345678), r.Uint32(8))
	assert.Equal(t, int32(0x12345678), r.Int32(8))
	assert.NoError(t, r.Err())
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader(make([]byte, 6))

	assert.Equal(t, uint32(0), r.Uint32(4))

	var truncated *TruncatedError
	require.True(t, errors.As(r.Err(), &truncated))
	assert.Equal(t, 4, truncated.Offset)
	assert.Equal(t, 4, truncated.Want)
	assert.Equal(t, 6, truncated.Size)

	// The first failure is kept and later reads return zero
	assert.Equal(t, uint8(0), r.Uint8(0))
	assert.Equal(t, uint16(0), r.Uint16(-1))
	assert.Same(t, truncated, r.Err())
}
