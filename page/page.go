/*
Package page lays decoded sprites out onto fixed size paletted pages, each
sprite labelled with its block number, and writes the pages as PNG images.

Pages are 1200 by 6000 pixels. Sprites are placed left to right with a 10
pixel margin, wrapping to a new band below the tallest sprite of the current
band and moving on to a new page once the page is full.
*/
package page

const (
	// Width and Height are the dimensions of a page.
	Width  = 1200
	Height = 6000

	margin = 10

	// Labels are drawn above the sprite, ending one row above it.
	labelTop = 6
)
