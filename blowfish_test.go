package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlowfishRoundTrip(t *testing.T) {
	key := []byte{0x01, 0x02, 0x03, 0x04}

	cases := [][]byte{
		nil,
		{},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A},
		make([]byte, 0x19000),
	}

	for i, data := range cases {
		enc, err := blowfishEncrypt(data, key)
		require.NoError(t, err)

		dec, err := blowfishDecrypt(enc, key)
		require.NoError(t, err)

		assert.Equal(t, data, dec, "case %d", i)
	}
}

func TestBlowfishTailPassthrough(t *testing.T) {
	key := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xDE, 0xAD}

	enc, err := blowfishEncrypt(data, key)
	require.NoError(t, err)

	// Tail (the last 2 bytes, beyond the 8-byte-aligned head) is untouched.
	assert.Equal(t, data[8:], enc[8:])
}

func TestBlowfishRejectsBadKey(t *testing.T) {
	_, err := blowfishEncrypt([]byte{1, 2, 3, 4, 5, 6, 7, 8}, nil)
	assert.Error(t, err)
}
