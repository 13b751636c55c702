package rcd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSigned(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := v
		if v >= 128 {
			want = v - 256
		}
		assert.Equal(t, want, DecodeSigned(v, 256), fmt.Sprintf("DecodeSigned(%d, 256)", v))
	}
}

func TestTrackFlagsBank(t *testing.T) {
	tables := []struct {
		bank uint16
		want string
	}{
		{0, "0:no banking"},
		{1, "1:bank left"},
		{2, "2:bank right"},
	}

	for _, table := range tables {
		f := TrackFlags(table.bank << 6)
		assert.Equal(t, table.want, f.Bank().String())
		assert.Equal(t, fmt.Sprintf("0x%02x, %s, 0:level, 0:straight", uint16(f), table.want), DecodeTrackFlags(uint16(f)))
	}
}

func TestTrackFlagsSlope(t *testing.T) {
	tables := []struct {
		slope int
		want  string
	}{
		{-3, "-3:vertical down"},
		{-2, "-2:steep down"},
		{-1, "-1:gentle down"},
		{0, "0:level"},
		{1, "1:gentle up"},
		{2, "2:steep up"},
		{3, "3:vertical up"},
	}

	for _, table := range tables {
		f := TrackFlags(uint16(table.slope&7) << 8)
		assert.Equal(t, Slope(table.slope), f.Slope())
		assert.Equal(t, table.want, f.Slope().String())
		assert.Equal(t, fmt.Sprintf("0x%02x, 0:no banking, %s, 0:straight", uint16(f), table.want), DecodeTrackFlags(uint16(f)))
	}
}

func TestTrackFlagsBend(t *testing.T) {
	tables := []struct {
		bend int
		want string
	}{
		{-3, "-3:wide left bend"},
		{-2, "-2:average left bend"},
		{-1, "-1:small left bend"},
		{0, "0:straight"},
		{1, "1:small right bend"},
		{2, "2:average right bend"},
		{3, "3:large right bend"},
	}

	for _, table := range tables {
		f := TrackFlags(uint16(table.bend&7) << 11)
		assert.Equal(t, Bend(table.bend), f.Bend())
		assert.Equal(t, fmt.Sprintf("0x%02x, 0:no banking, 0:level, %s", uint16(f), table.want), DecodeTrackFlags(uint16(f)))
	}
}

func TestTrackFlagsDirections(t *testing.T) {
	// Direction bits are ignored unless their enable bit is set
	assert.Equal(t, "0x36, 0:no banking, 0:level, 0:straight", DecodeTrackFlags(0x36))

	assert.Equal(t, "0x07, platform direction: 3, 0:no banking, 0:level, 0:straight", DecodeTrackFlags(0x07))
	assert.Equal(t, "0x28, initial piece direction: 2, 0:no banking, 0:level, 0:straight", DecodeTrackFlags(0x28))

	f := TrackFlags(0x1a83)
	edge, ok := f.PlatformDirection()
	assert.True(t, ok)
	assert.Equal(t, 1, edge)
	_, ok = f.InitialDirection()
	assert.False(t, ok)
	assert.Equal(t, BankRight, f.Bank())
	assert.Equal(t, SlopeSteepUp, f.Slope())
	assert.Equal(t, BendLargeRight, f.Bend())
	assert.Equal(t, "0x1a83, platform direction: 1, 2:bank right, 2:steep up, 3:large right bend", f.String())
}
