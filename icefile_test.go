package ice

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripUncompressedV4(t *testing.T) {
	f := &IceFile{
		Group2: []DataFile{
			{Name: "a.bin", Data: []byte("hello")},
			{Name: "b.txt", Data: []byte("world!")},
		},
	}

	encoded, err := f.Write(4, CompressOptions{Mode: CompressNone}, false)
	require.NoError(t, err)
	assert.Equal(t, v4DataStart+len(combineGroup(f.Group2)), len(encoded))

	read, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, read.Group2, 2)
	assert.Equal(t, f.Group2[0].Name, read.Group2[0].Name)
	assert.Equal(t, f.Group2[0].Data, read.Group2[0].Data)
	assert.Equal(t, f.Group2[1].Name, read.Group2[1].Name)
	assert.Equal(t, f.Group2[1].Data, read.Group2[1].Data)
	assert.Empty(t, read.Group1)
}

func TestRoundTripKrakenV4(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 251)
	}

	f := &IceFile{Group2: []DataFile{{Name: "x.dat", Data: data}}}

	encoded, err := f.Write(4, CompressOptions{Mode: CompressKraken, Level: 3}, false)
	require.NoError(t, err)

	read, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, read.Group2, 1)
	assert.Equal(t, data, read.Group2[0].Data)
}

func TestRoundTripPRSV4(t *testing.T) {
	data := append(bytes.Repeat([]byte{0x00}, 256), bytes.Repeat([]byte{0xFF}, 256)...)

	f := &IceFile{Group2: []DataFile{{Name: "p.bin", Data: data}}}

	encoded, err := f.Write(4, CompressOptions{Mode: CompressPRS}, false)
	require.NoError(t, err)

	read, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, read.Group2, 1)
	assert.Equal(t, data, read.Group2[0].Data)
}

func TestRoundTripUncompressedV3(t *testing.T) {
	f := &IceFile{
		Group1: []DataFile{{Name: "only.bin", Data: []byte("v3 data")}},
	}

	encoded, err := f.Write(3, CompressOptions{Mode: CompressNone}, false)
	require.NoError(t, err)

	read, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, read.Group1, 1)
	assert.Equal(t, f.Group1[0].Data, read.Group1[0].Data)
}

func TestWriteRefusesEncryption(t *testing.T) {
	f := &IceFile{Group2: []DataFile{{Name: "a.bin", Data: []byte("x")}}}

	_, err := f.Write(4, CompressOptions{Mode: CompressNone}, true)
	assert.ErrorIs(t, err, ErrKind(KindEncryptionNotSupported))

	_, err = f.Write(3, CompressOptions{Mode: CompressNone}, true)
	assert.ErrorIs(t, err, ErrKind(KindEncryptionNotSupported))
}

func TestReadRejectsUnsupportedVersion(t *testing.T) {
	h := ArchiveHeader{Version: 2, Magic80: archiveMagic80, MagicFF: archiveMagicFF}
	_, err := Read(bytes.NewReader(h.encode()))
	assert.ErrorIs(t, err, ErrKind(KindUnsupportedVersion))
}

func TestReadRecognizesButRejectsVersions5To9(t *testing.T) {
	h := ArchiveHeader{Version: 7, Magic80: archiveMagic80, MagicFF: archiveMagicFF}
	_, err := Read(bytes.NewReader(h.encode()))
	assert.ErrorIs(t, err, ErrKind(KindUnsupportedVersion))
}

func TestEmptyGroupRoundTrips(t *testing.T) {
	f := &IceFile{}

	encoded, err := f.Write(4, CompressOptions{Mode: CompressNone}, false)
	require.NoError(t, err)

	read, err := Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Empty(t, read.Group1)
	assert.Empty(t, read.Group2)
}
