package page

import "strconv"

const labelRows = 5

var digits = [10][labelRows]string{
	{" xxx", " x x", " x x", " x x", " xxx"},
	{" x", " x", " x", " x", " x"},
	{" xx ", "   x", "  x ", " x  ", " xxx"},
	{" xxx", "   x", "  xx", "   x", " xxx"},
	{"   x ", "  xx ", " x x ", " xxxx", "   x "},
	{" xxx", " x  ", " xx ", "   x", " xx "},
	{"  xx", " x  ", " xxx", " x x", " xxx"},
	{" xxx", "   x", "  x ", "  x ", "  x "},
	{" xxx", " x x", " xxx", " x x", " xxx"},
	{" xxx", " x x", " xxx", "   x", " xx "},
}

// label returns the glyph rows spelling number, a set pixel is 'x'.
func label(number int) [labelRows]string {
	var rows [labelRows]string
	for _, c := range strconv.Itoa(number) {
		if c < '0' || c > '9' {
			continue
		}
		for i, row := range digits[c-'0'] {
			rows[i] += row
		}
	}
	return rows
}

func labelWidth(number int) int {
	return len(label(number)[0])
}
