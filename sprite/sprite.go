/*
Package sprite implements a decoder for the 8bpp run-length encoded sprites
stored in RCD "8PXL" blocks.

A sprite block starts with the common 12 byte block header followed by the
16-bit width and height and the signed 16-bit x and y offsets of the sprite.
Then there is one 32-bit pointer per row, relative to the start of the
pointer table. A zero pointer marks an empty row, any other points at a
sequence of groups: a control byte, a pixel count and that many palette
indices. The low 7 bits of the control byte are the number of transparent
pixels before the group, the high bit marks the last group of the row.
*/
package sprite

const (
	// Tag is the block tag of a sprite.
	Tag = "8PXL"
	// Version is the supported sprite block version.
	Version = 2

	blockHeader  = 12
	widthOffset  = blockHeader
	heightOffset = blockHeader + 2
	xOffset      = blockHeader + 4
	yOffset      = blockHeader + 6
	rowTable     = blockHeader + 8

	skipMask = 0x7f
	lastMask = 0x80
)
