package ice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRSRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":          {},
		"single byte":    {0x42},
		"no repetition":  []byte("the quick brown fox jumps over the lazy dog"),
		"run of zeros":   bytes.Repeat([]byte{0x00}, 256),
		"run of 0xff":    bytes.Repeat([]byte{0xFF}, 256),
		"repeated chunk": bytes.Repeat([]byte("abcdefgh"), 64),
		"long window":    append(bytes.Repeat([]byte{0x01, 0x02, 0x03}, 3000), []byte{0x09, 0x08, 0x07}...),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			compressed := prsCompress(data)
			decoded, err := prsDecompress(compressed, len(data))
			assert.NoError(t, err)
			assert.Equal(t, data, decoded)
		})
	}
}

func TestPRSDecompressRespectsOutSize(t *testing.T) {
	data := []byte("hello world, this is a longer literal run of bytes")
	compressed := prsCompress(data)

	decoded, err := prsDecompress(compressed, 5)
	assert.NoError(t, err)
	assert.Equal(t, data[:5], decoded)
}

func TestPRSSelfOverlappingBackReference(t *testing.T) {
	data := bytes.Repeat([]byte{0x7A}, 300)
	compressed := prsCompress(data)

	decoded, err := prsDecompress(compressed, len(data))
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}
