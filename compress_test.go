package ice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressPayloadNoneIsIdentity(t *testing.T) {
	plain := []byte("some plaintext payload")

	stored, err := compressPayload(plain, CompressOptions{Mode: CompressNone})
	require.NoError(t, err)
	assert.Equal(t, plain, stored)
}

func TestCompressPayloadKrakenRoundTrip(t *testing.T) {
	plain := bytes.Repeat([]byte("abcdefgh"), 512)

	stored, err := compressPayload(plain, CompressOptions{Mode: CompressKraken, Level: 5})
	require.NoError(t, err)

	back, err := decompressPayload(stored, len(plain), true)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

func TestCompressPayloadPRSRoundTrip(t *testing.T) {
	plain := append(bytes.Repeat([]byte{0x00}, 64), []byte("mixed content here")...)

	stored, err := compressPayload(plain, CompressOptions{Mode: CompressPRS})
	require.NoError(t, err)

	back, err := decompressPayload(stored, len(plain), false)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

func TestPRSStoredBytesAreXORObfuscated(t *testing.T) {
	plain := []byte("short payload")

	stored, err := compressPayload(plain, CompressOptions{Mode: CompressPRS})
	require.NoError(t, err)

	raw := xorByte(stored, prsObfuscationKey)
	restored, err := prsDecompress(raw, len(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, restored)
}

func TestCompressPayloadRejectsUnknownMode(t *testing.T) {
	_, err := compressPayload([]byte("x"), CompressOptions{Mode: CompressMode(99)})
	assert.Error(t, err)
}
