package ice

const (
	v3GroupInfoSize = 0x10
	v3MetadataSize  = 0x10
	v3PaddingSize   = 0x30
	v3DataStart     = archiveHeaderSize + 2*0x10 + v3GroupInfoSize + v3MetadataSize + v3PaddingSize // 0x90
)

// v3GroupInfo is the version-3-only struct sitting between the two group
// headers and the embedded metadata block.
type v3GroupInfo struct {
	Group1Size uint32
	Group2Size uint32
	Key        uint32
}

func decodeV3GroupInfo(b []byte) v3GroupInfo {
	return v3GroupInfo{
		Group1Size: readU32LE(b, 0),
		Group2Size: readU32LE(b, 4),
		// bytes 8:12 are reserved
		Key: readU32LE(b, 12),
	}
}

func (info v3GroupInfo) encode() []byte {
	b := make([]byte, v3GroupInfoSize)
	putU32LE(b, 0, info.Group1Size)
	putU32LE(b, 4, info.Group2Size)
	putU32LE(b, 12, info.Key)
	return b
}

// v3Keys derives the single Blowfish key used by a version-3 archive.
// Unlike v4, there is no 256-byte magic-numbers region: the key comes
// either directly from GroupInfo.Group1Size (when nonzero) or, for
// archives where that field is zero, from a XOR of both groups' original
// sizes with GroupInfo.Group2Size, GroupInfo.Key, and a fixed constant.
func v3Keys(info v3GroupInfo, g1, g2 GroupHeader, encrypted bool) groupKeys {
	if info.Group1Size != 0 {
		return groupKeys{le32(info.Group1Size), nil}
	}
	if !encrypted {
		return groupKeys{}
	}
	key := g1.OriginalSize ^ g2.OriginalSize ^ info.Group2Size ^ info.Key ^ 0xC8D7469A
	return groupKeys{le32(key), nil}
}

// readV3 parses the version-3 layout following the archive header: two
// GroupHeaders, the GroupInfo struct, an embedded metadata block (mostly
// redundant with the outer archive header), padding, then the two group
// payloads. Encryption, when present, is a single Blowfish pass under k1
// with no floatage stage and no second pass.
func readV3(header ArchiveHeader, b []byte) (group1, group2 []DataFile, err error) {
	if len(b) < v3DataStart {
		return nil, nil, newErr(KindUnexpectedEOF, "v3 layout")
	}

	pos := archiveHeaderSize
	h1 := decodeGroupHeader(b[pos : pos+0x10])
	pos += 0x10
	h2 := decodeGroupHeader(b[pos : pos+0x10])
	pos += 0x10

	info := decodeV3GroupInfo(b[pos : pos+v3GroupInfoSize])
	pos += v3GroupInfoSize
	pos += v3MetadataSize // embedded IceFileMetadata, redundant with header
	pos += v3PaddingSize

	encrypted := header.Encrypted()
	kraken := header.Kraken()
	keys := v3Keys(info, h1, h2, encrypted)

	stored1 := b[pos : pos+int(h1.StoredSize())]
	pos += int(h1.StoredSize())
	stored2 := b[pos : pos+int(h2.StoredSize())]

	payload1, err := extractGroup(h1, stored1, kraken, encrypted, keys, 0, true)
	if err != nil {
		return nil, nil, err
	}
	payload2, err := extractGroup(h2, stored2, kraken, encrypted, keys, 0, true)
	if err != nil {
		return nil, nil, err
	}

	group1, err = splitGroup(h1, payload1)
	if err != nil {
		return nil, nil, err
	}
	group2, err = splitGroup(h2, payload2)
	if err != nil {
		return nil, nil, err
	}

	return group1, group2, nil
}

// writeV3 serializes group1/group2 in version-3 layout. Encrypted writes
// are refused: the original key-dependent GroupInfo fields (Group1Size,
// Key) cannot be reproduced without knowing the algorithm that produced
// them on a real client, which is unspecified (see DESIGN.md).
func writeV3(group1, group2 []DataFile, opts CompressOptions, encrypt bool) ([]byte, error) {
	if encrypt {
		return nil, newErr(KindEncryptionNotSupported, "v3 write with encryption")
	}

	plain1 := combineGroup(group1)
	plain2 := combineGroup(group2)

	stored1, err := compressPayload(plain1, opts)
	if err != nil {
		return nil, err
	}
	stored2, err := compressPayload(plain2, opts)
	if err != nil {
		return nil, err
	}

	compressedSize := func(stored []byte) uint32 {
		if opts.Mode == CompressNone {
			return 0
		}
		return uint32(len(stored))
	}

	h1 := GroupHeader{
		OriginalSize:   uint32(len(plain1)),
		CompressedSize: compressedSize(stored1),
		FileCount:      uint32(len(group1)),
		CRC32:          crc32Of(stored1),
	}
	h2 := GroupHeader{
		OriginalSize:   uint32(len(plain2)),
		CompressedSize: compressedSize(stored2),
		FileCount:      uint32(len(group2)),
		CRC32:          crc32Of(stored2),
	}

	fileSize := v3DataStart + len(stored1) + len(stored2)

	header := ArchiveHeader{
		Version:  3,
		Magic80:  archiveMagic80,
		MagicFF:  archiveMagicFF,
		CRC32:    crc32Of(stored1, stored2),
		Flags:    compressModeToFlags(opts.Mode),
		FileSize: uint32(fileSize),
	}

	metadata := make([]byte, v3MetadataSize)
	putU32LE(metadata, 0, header.MagicFF)
	putU32LE(metadata, 4, header.CRC32)
	putU32LE(metadata, 8, header.Flags)
	putU32LE(metadata, 12, header.FileSize)

	info := v3GroupInfo{}

	out := make([]byte, 0, fileSize)
	out = append(out, header.encode()...)
	out = append(out, h1.encode()...)
	out = append(out, h2.encode()...)
	out = append(out, info.encode()...)
	out = append(out, metadata...)
	out = append(out, make([]byte, v3PaddingSize)...)
	out = append(out, stored1...)
	out = append(out, stored2...)

	return out, nil
}
