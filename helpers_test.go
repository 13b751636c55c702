package rcd

import (
	"bytes"
	"encoding/binary"
)

// le packs fixed size values little-endian, every value must be typed.
func le(values ...interface{}) []byte {
	var b bytes.Buffer
	for _, v := range values {
		if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return b.Bytes()
}

func blockBytes(tag string, version uint32, payload []byte) []byte {
	b := append([]byte(tag), le(version, uint32(len(payload)))...)
	return append(b, payload...)
}

type fileBuilder struct {
	bytes.Buffer
}

func newFile() *fileBuilder {
	return newFileWithHeader(FileSignature, FileVersion)
}

func newFileWithHeader(tag string, version uint32) *fileBuilder {
	f := new(fileBuilder)
	f.WriteString(tag)
	f.Write(le(version))
	return f
}

func (f *fileBuilder) block(tag string, version uint32, payload []byte) *fileBuilder {
	f.Write(blockBytes(tag, version, payload))
	return f
}
