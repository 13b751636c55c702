package rcd

import (
	"fmt"
	"strings"
)

// Bank is the banking of a track piece.
type Bank int

const (
	BankNone Bank = iota
	BankLeft
	BankRight
)

var bankNames = [...]string{"no banking", "bank left", "bank right"}

func (b Bank) String() string {
	if b < 0 || int(b) >= len(bankNames) {
		return fmt.Sprintf("%d:unknown banking", int(b))
	}
	return fmt.Sprintf("%d:%s", int(b), bankNames[b])
}

// Slope is the signed slope of a track piece.
type Slope int

const (
	SlopeVerticalDown Slope = iota - 3
	SlopeSteepDown
	SlopeGentleDown
	SlopeLevel
	SlopeGentleUp
	SlopeSteepUp
	SlopeVerticalUp
)

var slopeNames = [...]string{
	"vertical down",
	"steep down",
	"gentle down",
	"level",
	"gentle up",
	"steep up",
	"vertical up",
}

func (s Slope) String() string {
	if s < SlopeVerticalDown || s > SlopeVerticalUp {
		return fmt.Sprintf("%d:unknown slope", int(s))
	}
	return fmt.Sprintf("%d:%s", int(s), slopeNames[s-SlopeVerticalDown])
}

// Bend is the signed bend of a track piece, negative values turn left.
type Bend int

const (
	BendWideLeft Bend = iota - 3
	BendAverageLeft
	BendSmallLeft
	BendStraight
	BendSmallRight
	BendAverageRight
	BendLargeRight
)

var bendNames = [...]string{
	"wide left bend",
	"average left bend",
	"small left bend",
	"straight",
	"small right bend",
	"average right bend",
	"large right bend",
}

func (b Bend) String() string {
	if b < BendWideLeft || b > BendLargeRight {
		return fmt.Sprintf("%d:unknown bend", int(b))
	}
	return fmt.Sprintf("%d:%s", int(b), bendNames[b-BendWideLeft])
}

// DecodeSigned maps the unsigned value v of a field with n distinct values
// onto a signed value, values from n/2 upwards become negative.
func DecodeSigned(v, n int) int {
	if v >= n/2 {
		return v - n
	}
	return v
}

// TrackFlags is the packed 16-bit flags field of a track piece.
type TrackFlags uint16

// PlatformDirection returns the edge of the platform, if the piece has one.
func (f TrackFlags) PlatformDirection() (int, bool) {
	return int(f>>1) & 3, f&0x1 != 0
}

// InitialDirection returns the edge of an initial piece, if the piece is one.
func (f TrackFlags) InitialDirection() (int, bool) {
	return int(f>>4) & 3, f&0x8 != 0
}

// Bank returns the banking of the piece.
func (f TrackFlags) Bank() Bank {
	return Bank(f>>6) & 3
}

// Slope returns the slope of the piece.
func (f TrackFlags) Slope() Slope {
	return Slope(DecodeSigned(int(f>>8)&7, 8))
}

// Bend returns the bend of the piece.
func (f TrackFlags) Bend() Bend {
	return Bend(DecodeSigned(int(f>>11)&7, 8))
}

func (f TrackFlags) String() string {
	text := []string{fmt.Sprintf("0x%02x", uint16(f))}
	if edge, ok := f.PlatformDirection(); ok {
		text = append(text, fmt.Sprintf("platform direction: %d", edge))
	}
	if edge, ok := f.InitialDirection(); ok {
		text = append(text, fmt.Sprintf("initial piece direction: %d", edge))
	}
	text = append(text, f.Bank().String(), f.Slope().String(), f.Bend().String())
	return strings.Join(text, ", ")
}

// DecodeTrackFlags returns the textual form of a packed track flags value.
func DecodeTrackFlags(v uint16) string {
	return TrackFlags(v).String()
}
