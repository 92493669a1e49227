package ice

import "bytes"

const (
	archiveHeaderSize = 0x20
	archiveMagic80     = 0x80
	archiveMagicFF     = 0xFF

	flagEncrypted = 1 << 0
	flagKraken    = 1 << 3
)

var archiveSignature = [4]byte{'I', 'C', 'E', 0}

// ArchiveHeader is the fixed 0x20-byte prefix of every ICE archive.
type ArchiveHeader struct {
	Version  uint32
	Magic80  uint32
	MagicFF  uint32
	CRC32    uint32
	Flags    uint32
	FileSize uint32
}

func (h ArchiveHeader) Encrypted() bool {
	return h.Flags&flagEncrypted != 0
}

func (h ArchiveHeader) Kraken() bool {
	return h.Flags&flagKraken != 0
}

// decodeArchiveHeader parses and validates the fixed header, returning
// KindNotAnArchive if the signature does not match and KindMalformedHeader
// if the two magic constants are wrong.
func decodeArchiveHeader(b []byte) (ArchiveHeader, error) {
	if len(b) < archiveHeaderSize {
		return ArchiveHeader{}, newErr(KindUnexpectedEOF, "archive header")
	}
	if !bytes.Equal(b[0:4], archiveSignature[:]) {
		return ArchiveHeader{}, newErrAt(KindNotAnArchive, 0, "signature")
	}

	h := ArchiveHeader{
		Version:  readU32LE(b, 8),
		Magic80:  readU32LE(b, 12),
		MagicFF:  readU32LE(b, 16),
		CRC32:    readU32LE(b, 20),
		Flags:    readU32LE(b, 24),
		FileSize: readU32LE(b, 28),
	}

	if h.Magic80 != archiveMagic80 {
		return ArchiveHeader{}, newErrAt(KindMalformedHeader, 12, "magic80")
	}
	if h.MagicFF != archiveMagicFF {
		return ArchiveHeader{}, newErrAt(KindMalformedHeader, 16, "magicFF")
	}

	return h, nil
}

func (h ArchiveHeader) encode() []byte {
	b := make([]byte, archiveHeaderSize)
	copy(b[0:4], archiveSignature[:])
	// bytes 4:8 are the reserved pad field, left zero
	putU32LE(b, 8, h.Version)
	putU32LE(b, 12, h.Magic80)
	putU32LE(b, 16, h.MagicFF)
	putU32LE(b, 20, h.CRC32)
	putU32LE(b, 24, h.Flags)
	putU32LE(b, 28, h.FileSize)
	return b
}

func compressModeToFlags(mode CompressMode) uint32 {
	if mode == CompressKraken {
		return flagKraken
	}
	return 0
}
