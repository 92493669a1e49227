package ice

const (
	v4MagicNumbersSize = 0x100
	v4GroupHeadersSize = 0x30
	v4DataStart        = archiveHeaderSize + v4MagicNumbersSize + v4GroupHeadersSize // 0x150
)

// readV4 parses the version-4 layout following the already-decoded
// archive header: the magic-numbers region, the (possibly encrypted)
// group-headers blob, and the two stored group payloads.
func readV4(header ArchiveHeader, b []byte) (group1, group2 []DataFile, err error) {
	if len(b) < v4DataStart {
		return nil, nil, newErr(KindUnexpectedEOF, "v4 layout")
	}

	magicNumbers := b[archiveHeaderSize : archiveHeaderSize+v4MagicNumbersSize]
	headersBlob := b[archiveHeaderSize+v4MagicNumbersSize : v4DataStart]

	var keys KeySet
	encrypted := header.Encrypted()
	if encrypted {
		keys = deriveKeys(magicNumbers, header.FileSize)
		headersBlob, err = blowfishDecrypt(headersBlob, keys.GroupHeadersKey)
		if err != nil {
			return nil, nil, wrapErr(KindDecryptionFailed, "group headers", err)
		}
	}

	h1 := decodeGroupHeader(headersBlob[0x00:0x10])
	h2 := decodeGroupHeader(headersBlob[0x10:0x20])

	pos := v4DataStart
	stored1 := b[pos : pos+int(h1.StoredSize())]
	pos += int(h1.StoredSize())
	stored2 := b[pos : pos+int(h2.StoredSize())]

	kraken := header.Kraken()
	payload1, err := extractGroup(h1, stored1, kraken, encrypted, groupKeys(keys.Group1Keys), secondPassThreshold, false)
	if err != nil {
		return nil, nil, err
	}
	payload2, err := extractGroup(h2, stored2, kraken, encrypted, groupKeys(keys.Group2Keys), secondPassThreshold, false)
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

// writeV4 serializes group1/group2 in version-4 layout. Encrypted writes
// are refused: synthesizing a magic-numbers region that derives back to
// a usable KeySet is an unspecified part of the format (see DESIGN.md).
func writeV4(group1, group2 []DataFile, opts CompressOptions, encrypt bool) ([]byte, error) {
	if encrypt {
		return nil, newErr(KindEncryptionNotSupported, "v4 write with encryption")
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

	compressedSize := func(stored, plain []byte) uint32 {
		if opts.Mode == CompressNone {
			return 0
		}
		_ = plain
		return uint32(len(stored))
	}

	h1 := GroupHeader{
		OriginalSize:   uint32(len(plain1)),
		CompressedSize: compressedSize(stored1, plain1),
		FileCount:      uint32(len(group1)),
		CRC32:          crc32Of(stored1),
	}
	h2 := GroupHeader{
		OriginalSize:   uint32(len(plain2)),
		CompressedSize: compressedSize(stored2, plain2),
		FileCount:      uint32(len(group2)),
		CRC32:          crc32Of(stored2),
	}

	fileSize := v4DataStart + len(stored1) + len(stored2)

	header := ArchiveHeader{
		Version:  4,
		Magic80:  archiveMagic80,
		MagicFF:  archiveMagicFF,
		CRC32:    crc32Of(stored1, stored2),
		Flags:    compressModeToFlags(opts.Mode),
		FileSize: uint32(fileSize),
	}

	out := make([]byte, 0, fileSize)
	out = append(out, header.encode()...)
	out = append(out, make([]byte, v4MagicNumbersSize)...)
	out = append(out, h1.encode()...)
	out = append(out, h2.encode()...)
	tail := make([]byte, 0x10)
	putU32LE(tail, 0, h1.OriginalSize)
	putU32LE(tail, 4, h2.OriginalSize)
	out = append(out, tail...) // remaining 8 bytes are reserved zero, see DESIGN.md
	out = append(out, stored1...)
	out = append(out, stored2...)

	return out, nil
}
