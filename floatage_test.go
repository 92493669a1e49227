package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatageInvolution(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		key  uint32
	}{
		{"empty", nil, 0x12345678},
		{"zeros", []byte{0, 0, 0, 0}, 0xDEADBEEF},
		{"mixed", []byte{0x00, 0x01, 0xFF, 0x80, 0x7F}, 0xCAFEBABE},
		{"zero key", []byte{0x01, 0x02, 0x03}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			once := floatage(tc.data, tc.key, 16)
			twice := floatage(once, tc.key, 16)
			assert.Equal(t, tc.data, twice)
		})
	}
}

func TestFloatageIdentityOnZeroAndMask(t *testing.T) {
	key := uint32(0x11223344)
	mask := floatageKeyByte(key, 16)

	data := []byte{0x00, mask}
	out := floatage(data, key, 16)
	assert.Equal(t, data, out)
}

func TestFloatageChangesOtherBytes(t *testing.T) {
	key := uint32(0x11223344)
	mask := floatageKeyByte(key, 16)
	if mask == 0x55 {
		t.Skip("mask collides with probe byte")
	}

	out := floatage([]byte{0x55}, key, 16)
	assert.NotEqual(t, byte(0x55), out[0])
	assert.Equal(t, byte(0x55)^mask, out[0])
}
