package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveHeaderRoundTrip(t *testing.T) {
	h := ArchiveHeader{
		Version:  4,
		Magic80:  archiveMagic80,
		MagicFF:  archiveMagicFF,
		CRC32:    0xDEADBEEF,
		Flags:    flagEncrypted,
		FileSize: 0x1000,
	}

	encoded := h.encode()
	require.Len(t, encoded, archiveHeaderSize)

	decoded, err := decodeArchiveHeader(encoded)
	require.NoError(t, err)
	assert.Equal(t, h, decoded)
	assert.True(t, decoded.Encrypted())
	assert.False(t, decoded.Kraken())
}

func TestArchiveHeaderRejectsBadSignature(t *testing.T) {
	b := make([]byte, archiveHeaderSize)
	copy(b[0:4], []byte("XXXX"))

	_, err := decodeArchiveHeader(b)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindNotAnArchive))
}

func TestArchiveHeaderRejectsBadMagic(t *testing.T) {
	h := ArchiveHeader{Version: 4, Magic80: 0x99, MagicFF: archiveMagicFF}
	b := h.encode()

	_, err := decodeArchiveHeader(b)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(KindMalformedHeader))
}

func TestArchiveHeaderRejectsShortInput(t *testing.T) {
	_, err := decodeArchiveHeader([]byte{1, 2, 3})
	assert.Error(t, err)
}
