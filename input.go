package rcd

import (
	"bytes"
	"io/ioutil"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Decompress returns b unchanged unless it is gzip or zstd compressed, in
// which case the decompressed data is returned along with the name of the
// compression.
func Decompress(b []byte) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(b, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, "", err
		}
		defer zr.Close()
		out, err := ioutil.ReadAll(zr)
		if err != nil {
			return nil, "", err
		}
		return out, "gzip", nil
	case bytes.HasPrefix(b, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, "", err
		}
		defer dec.Close()
		out, err := dec.DecodeAll(b, nil)
		if err != nil {
			return nil, "", err
		}
		return out, "zstd", nil
	default:
		return b, "", nil
	}
}

func readFile(file string) ([]byte, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return Decompress(b)
}
