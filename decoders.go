package rcd

import (
	"fmt"
	"strings"
)

// Key selects a Decoder by the exact tag and version of a block.
type Key struct {
	Tag     Tag
	Version uint32
}

func newKey(tag string, version uint32) (k Key) {
	copy(k.Tag[:], tag)
	k.Version = version
	return
}

// A Decoder returns the report lines for the block starting at off. Reads
// run through r so a short block surfaces as r.Err().
type Decoder func(r *Reader, off int) ([]string, error)

var decoders = map[Key]Decoder{
	newKey("FUND", 1): decodeFoundation,
	newKey("TCOR", 1): decodeTrackCorners,
	newKey("ANIM", 2): decodeAnimation,
	newKey("ANSP", 1): decodeAnimationSprites,
	newKey("RCST", 3): decodeCoasterType,
	newKey("TRCK", 3): decodeTrackPiece,
	newKey("CSPL", 2): decodeCoasterPlatform,
	newKey("CARS", 2): decodeCoasterCars,
	newKey("SHOP", 5): decodeShop,
}

// LookupDecoder returns the Decoder registered for k, or nil.
func LookupDecoder(k Key) Decoder {
	return decoders[k]
}

type report struct {
	prefix string
	lines  []string
}

func (rp *report) add(format string, a ...interface{}) {
	rp.lines = append(rp.lines, "    "+rp.prefix+" "+fmt.Sprintf(format, a...))
}

func decodeFoundation(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "FUND"}
	rp.add("type: %d", r.Uint16(off+12))
	rp.add("width: %d", r.Uint16(off+14))
	rp.add("height: %d", r.Uint16(off+16))
	for i, name := range []string{"se_e", "se_s", "se_es", "ws_s", "ws_w", "ws_ws"} {
		rp.add("%s: %d", name, r.Uint32(off+18+i*4))
	}
	return rp.lines, r.Err()
}

// Slope sprites of a corner overlay, per view direction.
var cornerSprites = strings.Fields("flat n e ne s ns es nes w wn we wne ws wns wes steepN steepE steepS steepW")

func decodeTrackCorners(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "TCOR"}
	rp.add("width: %d", r.Uint16(off+12))
	rp.add("height: %d", r.Uint16(off+14))
	off += 16
	for _, view := range []string{"n", "e", "s", "w"} {
		for _, sprite := range cornerSprites {
			rp.add("%s#%s: %d", view, sprite, r.Uint32(off))
			off += 4
		}
	}
	return rp.lines, r.Err()
}

const (
	maxAnimationFrames  = 5
	maxAnimationSprites = 16
)

func decodeAnimation(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "ANIM"}
	rp.add("person-type: %d", r.Uint8(off+12))
	rp.add("anim-type: %d", r.Uint16(off+13))
	count := int(r.Uint16(off + 15))
	rp.add("frame-count: %d", count)

	off += 17
	i := 0
	for ; i < count && i < maxAnimationFrames; i++ {
		rp.add("frame %d: duration=%d, dx=%d, dy=%d", i, r.Uint16(off), r.Int16(off+2), r.Int16(off+4))
		off += 6
	}
	if i < count {
		rp.lines = append(rp.lines, fmt.Sprintf("    ANIM: Skipped %d frames", count-i))
	}
	return rp.lines, r.Err()
}

func decodeAnimationSprites(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "ANSP"}
	rp.add("zoom-width: %d", r.Uint16(off+12))
	rp.add("person-type: %d", r.Uint8(off+14))
	rp.add("anim-type: %d", r.Uint16(off+15))
	count := int(r.Uint16(off + 17))
	rp.add("frame-count: %d", count)

	off += 19
	var blocks []string
	i := 0
	for ; i < count && i < maxAnimationSprites; i++ {
		blocks = append(blocks, fmt.Sprint(r.Uint32(off)))
		off += 4
	}
	if i < count {
		blocks = append(blocks, "...")
	}
	rp.add("sprites: %s", strings.Join(blocks, ", "))
	return rp.lines, r.Err()
}

func decodeCoasterType(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "RCST"}
	rp.add("coaster_type: %d", r.Uint16(off+12))
	rp.add("platform_type: %d", r.Uint8(off+14))
	count := int(r.Uint16(off + 19))
	for i := 0; i < count && r.Err() == nil; i++ {
		rp.add("piece %d: block #%d", i, r.Uint32(off+21+4*i))
	}
	return rp.lines, r.Err()
}

func signedByte(v uint8) int {
	return DecodeSigned(int(v), 256)
}

const voxelSize = 36

func decodeTrackPiece(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "TRCK"}
	rp.add("entry/exit connections: 0x%02x/0x%02x", r.Uint8(off+12), r.Uint8(off+13))
	rp.add("exit dx/dy/dz: %d/%d/%d", signedByte(r.Uint8(off+14)), signedByte(r.Uint8(off+15)), signedByte(r.Uint8(off+16)))
	rp.add("speed: %d", r.Uint8(off+17))
	rp.add("flags: %s", DecodeTrackFlags(r.Uint16(off+18)))
	rp.add("cost: %d", r.Uint32(off+20))

	count := int(r.Uint16(off + 24))
	for i := 0; i < count && r.Err() == nil; i++ {
		v := off + 26 + i*voxelSize
		rp.add("voxel %d back n/e/s/w sprites %d/%d/%d/%d", i, r.Uint32(v), r.Uint32(v+4), r.Uint32(v+8), r.Uint32(v+12))
		v += 16
		rp.add("voxel %d front n/e/s/w sprites %d/%d/%d/%d", i, r.Uint32(v), r.Uint32(v+4), r.Uint32(v+8), r.Uint32(v+12))
		v += 16
		rp.add("voxel %d dx/dy/dz = %d/%d/%d", i, signedByte(r.Uint8(v)), signedByte(r.Uint8(v+1)), signedByte(r.Uint8(v+2)))
		rp.add("voxel %d space: 0x%02x", i, r.Uint8(v+3))
	}
	return rp.lines, r.Err()
}

func decodeCoasterPlatform(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "CSPL"}
	rp.add("width: %d", r.Uint16(off+12))
	rp.add("type: %d", r.Uint8(off+14))
	for i, name := range []string{"ne_sw_back", "ne_sw_front", "se_nw_back", "se_nw_front", "sw_ne_back", "sw_ne_front", "nw_se_back", "nw_se_front"} {
		rp.add("%s: %d", name, r.Uint32(off+15+i*4))
	}
	return rp.lines, r.Err()
}

const carSprites = 4096

func decodeCoasterCars(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "CARS"}
	rp.add("tile-width: %d", r.Uint16(off+12))
	rp.add("z-height: %d", r.Uint16(off+14))
	rp.add("car-length: %d", r.Uint32(off+16))
	rp.add("inter-car-length: %d", r.Uint32(off+20))
	rp.add("passengers: %d", r.Uint16(off+24))
	rp.add("entrances: %d", r.Uint16(off+26))

	// One sprite per pitch/roll/yaw combination, most are usually absent
	var used int
	for i := 0; i < carSprites && r.Err() == nil; i++ {
		if r.Uint32(off+28+i*4) != 0 {
			used++
		}
	}
	rp.add("sprites: %d of %d used", used, carSprites)
	return rp.lines, r.Err()
}

func decodeShop(r *Reader, off int) ([]string, error) {
	rp := report{prefix: "SHOP"}
	rp.add("width: %d", r.Uint16(off+12))
	rp.add("height: %d", r.Uint8(off+14))
	rp.add("flags: 0x%02x", r.Uint8(off+15)&0xf)
	rp.add("views n/e/s/w sprites %d/%d/%d/%d", r.Uint32(off+16), r.Uint32(off+20), r.Uint32(off+24), r.Uint32(off+28))
	rp.add("recolours: 0x%08x, 0x%08x, 0x%08x", r.Uint32(off+32), r.Uint32(off+36), r.Uint32(off+40))
	rp.add("item costs: %d/%d", r.Int32(off+44), r.Int32(off+48))
	rp.add("monthly costs closed/open: %d/%d", r.Int32(off+52), r.Int32(off+56))
	rp.add("item types: %d/%d", r.Uint8(off+60), r.Uint8(off+61))
	rp.add("text: block #%d", r.Uint32(off+62))
	return rp.lines, r.Err()
}
