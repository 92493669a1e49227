package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataFileHeaderRoundTrip(t *testing.T) {
	cases := []DataFile{
		{Name: "a.bin", Data: []byte("hello")},
		{Name: "b.txt", Data: []byte("world!")},
		{Name: "no-extension", Data: nil},
		{Name: "x.dat", Data: make([]byte, 4096)},
	}

	for _, f := range cases {
		record := encodeDataFileRecord(f)

		assert.Zero(t, len(record)%dataFileHeaderAlign, "file_size must be 16-aligned")

		headerSize := int(readU32LE(record, 12))
		assert.Zero(t, headerSize%dataFileHeaderAlign, "header_size must be 16-aligned")

		decoded, n, err := decodeDataFileRecord(record)
		require.NoError(t, err)
		assert.Equal(t, len(record), n)
		assert.Equal(t, f.Name, decoded.Name)
		assert.Equal(t, f.Data, decoded.Data)
	}
}

func TestDataFileHeaderRejectsShortHeaderSize(t *testing.T) {
	f := DataFile{Name: "a.bin", Data: []byte("hi")}
	record := encodeDataFileRecord(f)
	putU32LE(record, 12, 0x10) // header_size below the 0x50 minimum

	_, _, err := decodeDataFileRecord(record)
	assert.Error(t, err)
}

func TestDataFileHeaderRejectsOversizedData(t *testing.T) {
	f := DataFile{Name: "a.bin", Data: []byte("hi")}
	record := encodeDataFileRecord(f)
	putU32LE(record, 8, 0xFFFF) // data_size impossibly large for file_size

	_, _, err := decodeDataFileRecord(record)
	assert.Error(t, err)
}

func TestIsHeaderlessBoundary(t *testing.T) {
	assert.False(t, isHeaderless('a'))
	assert.False(t, isHeaderless('z'))
	assert.True(t, isHeaderless(0x1F))
	assert.True(t, isHeaderless(0x41))
	assert.True(t, isHeaderless(0x5A))
	assert.False(t, isHeaderless(0x7E))
	assert.True(t, isHeaderless(0x7F))
}
