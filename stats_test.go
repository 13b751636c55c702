package rcd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics(t *testing.T) {
	s := NewStatistics()
	for _, tag := range []string{"ABCD", "WXYZ", "ABCD", "ABCD"} {
		s.Add(newKey(tag, 0).Tag)
	}

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.Count(newKey("ABCD", 0).Tag))
	assert.Equal(t, 1, s.Count(newKey("WXYZ", 0).Tag))
	assert.Equal(t, 0, s.Count(newKey("NONE", 0).Tag))

	b := new(bytes.Buffer)
	n, err := s.WriteTo(b)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), n)
	assert.Equal(t, "Statistics\n\"ABCD\" 3\n\"WXYZ\" 1\n", b.String())
}
