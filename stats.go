package rcd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v3"
)

// Statistics counts the blocks seen per tag, remembering the order in which
// each tag was first seen.
type Statistics struct {
	counts *orderedmap.OrderedMap[Tag, int]
}

// NewStatistics returns an empty Statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		counts: orderedmap.NewOrderedMap[Tag, int](),
	}
}

// Add counts one more block with tag t.
func (s *Statistics) Add(t Tag) {
	n, _ := s.counts.Get(t)
	s.counts.Set(t, n+1)
}

// Count returns the number of blocks seen with tag t.
func (s *Statistics) Count(t Tag) int {
	n, _ := s.counts.Get(t)
	return n
}

// Len returns the number of distinct tags.
func (s *Statistics) Len() int {
	return s.counts.Len()
}

// WriteTo writes the summary to w.
func (s *Statistics) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintln(bw, "Statistics")
	total += int64(n)
	if err != nil {
		return total, err
	}
	for el := s.counts.Front(); el != nil; el = el.Next() {
		n, err := fmt.Fprintf(bw, "%q %d\n", el.Key.String(), el.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
