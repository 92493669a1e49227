package ice

import (
	"io"
	"os"
)

// IceFile is an archive loaded into memory: the decoded header plus the
// two ordered file lists. It is the unit callers read, inspect, modify,
// and write back.
type IceFile struct {
	Header ArchiveHeader
	Group1 []DataFile
	Group2 []DataFile
}

// ReadFile opens path and reads it as an ICE archive.
func ReadFile(path string) (*IceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses an ICE archive fully into memory from r. The whole archive
// is read before any parsing begins; this package has no streaming mode.
func Read(r io.Reader) (*IceFile, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	header, err := decodeArchiveHeader(b)
	if err != nil {
		return nil, err
	}

	var group1, group2 []DataFile
	switch header.Version {
	case 3:
		group1, group2, err = readV3(header, b)
	case 4:
		group1, group2, err = readV4(header, b)
	case 5, 6, 7, 8, 9:
		return nil, newErr(KindUnsupportedVersion, "version 5-9 recognized but not implemented")
	default:
		return nil, newErr(KindUnsupportedVersion, "version")
	}
	if err != nil {
		return nil, err
	}

	return &IceFile{Header: header, Group1: group1, Group2: group2}, nil
}

// Write serializes the archive's current group1/group2 contents in the
// given version with the given compression and encryption options and
// returns the encoded bytes. It does not mutate f.
func (f *IceFile) Write(version uint32, opts CompressOptions, encrypt bool) ([]byte, error) {
	switch version {
	case 3:
		return writeV3(f.Group1, f.Group2, opts, encrypt)
	case 4:
		return writeV4(f.Group1, f.Group2, opts, encrypt)
	default:
		return nil, newErr(KindInvalidInput, "version")
	}
}

// WriteFile serializes the archive and writes it to path, atomically
// replacing any existing file.
func (f *IceFile) WriteFile(path string, version uint32, opts CompressOptions, encrypt bool) error {
	b, err := f.Write(version, opts, encrypt)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, b)
}

// Repack reads an archive from src and re-encodes it under the requested
// version and options, writing the result to dst. The file lists are
// copied through unchanged; only the container layout and compression
// are allowed to differ.
func Repack(src, dst string, version uint32, opts CompressOptions, encrypt bool) error {
	f, err := ReadFile(src)
	if err != nil {
		return err
	}
	return f.WriteFile(dst, version, opts, encrypt)
}
