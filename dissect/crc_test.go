package dissect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrcSingleByte(t *testing.T) {
	assert.Equal(t, uint32(0x76cc8c81), CalcCrc([]byte{0xa0}))
}

// crcBytewise is the plain byte-at-a-time formulation; the sliced hot loop
// must agree with it on every length.
func crcBytewise(data []byte) uint32 {
	crc := ^uint32(0x01f2cbef) // seed byte-swapped
	for _, x := range data {
		crc = crc>>8 ^ crcTable[0][(uint32(x)^crc)&0xff]
	}
	crc = ^crc
	return crc>>24 | crc>>8&0xff00 | crc<<8&0xff0000 | crc<<24
}

func TestCrcSlicingMatchesBytewise(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	for n := 0; n <= len(data); n++ {
		assert.Equal(t, crcBytewise(data[:n]), CalcCrc(data[:n]), "length %d", n)
	}
}

func TestCrcDetectsSingleByteFlip(t *testing.T) {
	data := []byte("length prefixed replay header bytes")
	orig := CalcCrc(data)
	data[10] ^= 0x40
	assert.NotEqual(t, orig, CalcCrc(data))
}
