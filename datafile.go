package ice

import (
	"bytes"
	"path/filepath"
	"strings"
)

const (
	dataFileHeaderFixedSize = 0x40
	dataFileHeaderMinSize   = 0x50
	dataFileHeaderAlign     = 0x10
)

// DataFile is a single in-memory archive member: its name and payload
// bytes. It is the unit of work for pack, unpack, and repack.
type DataFile struct {
	Name string
	Data []byte
}

// dataFileHeader is the on-disk fixed-size record header preceding a
// normal-shape file's payload.
type dataFileHeader struct {
	ext          [4]byte
	fileSize     uint32
	dataSize     uint32
	headerSize   uint32
	filenameSize uint32
	one          uint32
	filename     string
}

// extensionOf returns the NUL-padded, leading-dot-stripped, 4-byte
// extension field for name.
func extensionOf(name string) [4]byte {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	var out [4]byte
	copy(out[:], ext)
	return out
}

// encodeDataFileHeader builds the header+padding bytes for a DataFile.
func encodeDataFileHeader(f DataFile) []byte {
	nameBytes := append([]byte(f.Name), 0)
	headerSize := padUpTo(dataFileHeaderFixedSize+len(nameBytes), dataFileHeaderAlign)
	fileSize := padUpTo(len(f.Data)+headerSize, dataFileHeaderAlign)

	buf := make([]byte, headerSize)
	ext := extensionOf(f.Name)
	copy(buf[0:4], ext[:])
	putU32LE(buf, 4, uint32(fileSize))
	putU32LE(buf, 8, uint32(len(f.Data)))
	putU32LE(buf, 12, uint32(headerSize))
	putU32LE(buf, 16, uint32(len(nameBytes)))
	putU32LE(buf, 20, 1)
	// offsets 24..64 are 40 reserved zero bytes
	copy(buf[dataFileHeaderFixedSize:], nameBytes)
	return buf
}

// encodeDataFileRecord encodes a single normal-shape record: header,
// payload, and zero padding out to the header's file_size.
func encodeDataFileRecord(f DataFile) []byte {
	header := encodeDataFileHeader(f)
	headerSize := len(header)
	fileSize := padUpTo(len(f.Data)+headerSize, dataFileHeaderAlign)

	buf := make([]byte, fileSize)
	copy(buf, header)
	copy(buf[headerSize:], f.Data)
	return buf
}

// decodeDataFileRecord decodes a single normal-shape record starting at
// offset 0 of b. It returns the DataFile and the number of bytes the
// record occupies (its file_size).
func decodeDataFileRecord(b []byte) (DataFile, int, error) {
	if len(b) < dataFileHeaderMinSize {
		return DataFile{}, 0, newErr(KindUnexpectedEOF, "data file header")
	}

	fileSize := int(readU32LE(b, 4))
	dataSize := int(readU32LE(b, 8))
	headerSize := int(readU32LE(b, 12))
	filenameSize := int(readU32LE(b, 16))

	if headerSize < dataFileHeaderMinSize {
		return DataFile{}, 0, newErr(KindMalformedRecord, "header_size")
	}
	if dataSize > fileSize-headerSize {
		return DataFile{}, 0, newErr(KindMalformedRecord, "data_size")
	}
	if len(b) < fileSize {
		return DataFile{}, 0, newErr(KindUnexpectedEOF, "data file body")
	}

	nameStart := dataFileHeaderFixedSize
	nameEnd := nameStart + filenameSize
	if nameEnd > headerSize || nameEnd > len(b) {
		return DataFile{}, 0, newErr(KindMalformedRecord, "filename_size")
	}
	name := string(bytes.TrimRight(b[nameStart:nameEnd], "\x00"))

	var data []byte
	if dataSize > 0 {
		data = make([]byte, dataSize)
		copy(data, b[headerSize:headerSize+dataSize])
	}

	return DataFile{Name: name, Data: data}, fileSize, nil
}

// isHeaderless reports whether the first byte of a group payload
// indicates a shape with no per-record header (NIFL framing or a single
// opaque blob), as opposed to a normal DataFileHeader-prefixed payload.
func isHeaderless(c byte) bool {
	return (c < 0x20 || c > 0x40) && (c < 0x5B || c > 0x7E)
}
