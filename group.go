package ice

import "fmt"

// secondPassThreshold is the stored-size boundary (v4 only) at or below which
// decrypt_group/encrypt_group apply a second Blowfish pass under k2.
const secondPassThreshold = 0x19000

// GroupHeader precedes each group's stored payload: the plaintext size,
// the compressed size (0 meaning "stored uncompressed"), the number of
// file records, and a CRC-32 over the stored (post-compress) bytes.
type GroupHeader struct {
	OriginalSize   uint32
	CompressedSize uint32
	FileCount      uint32
	CRC32          uint32
}

// StoredSize is the number of bytes actually written to disk for the
// group: CompressedSize when the group is compressed, else OriginalSize.
func (h GroupHeader) StoredSize() uint32 {
	if h.CompressedSize != 0 {
		return h.CompressedSize
	}
	return h.OriginalSize
}

func decodeGroupHeader(b []byte) GroupHeader {
	return GroupHeader{
		OriginalSize:   readU32LE(b, 0),
		CompressedSize: readU32LE(b, 4),
		FileCount:      readU32LE(b, 8),
		CRC32:          readU32LE(b, 12),
	}
}

func (h GroupHeader) encode() []byte {
	b := make([]byte, 0x10)
	putU32LE(b, 0, h.OriginalSize)
	putU32LE(b, 4, h.CompressedSize)
	putU32LE(b, 8, h.FileCount)
	putU32LE(b, 12, h.CRC32)
	return b
}

// groupKeys is the pair of Blowfish keys (k1, k2) a single group is
// encrypted or decrypted under.
type groupKeys [2][]byte

// decryptGroup reverses encryptGroup. When v3 is true the floatage stage
// and the second Blowfish pass are both skipped, matching the version-3
// layout's single-pass encryption.
func decryptGroup(data []byte, keys groupKeys, threshold int, v3 bool) ([]byte, error) {
	k1, k2 := keys[0], keys[1]
	var err error

	if !v3 {
		data = floatageKey(data, k1)
	}

	data, err = blowfishDecrypt(data, k1)
	if err != nil {
		return nil, err
	}

	if !v3 && len(data) <= threshold {
		data, err = blowfishDecrypt(data, k2)
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}

// encryptGroup is the mirror of decryptGroup for the v4 (non-v3) layout;
// v3 writers do not call this (see v3.go).
func encryptGroup(data []byte, keys groupKeys, threshold int) ([]byte, error) {
	k1, k2 := keys[0], keys[1]
	var err error

	if len(data) <= threshold {
		data, err = blowfishEncrypt(data, k2)
		if err != nil {
			return nil, err
		}
	}

	data, err = blowfishEncrypt(data, k1)
	if err != nil {
		return nil, err
	}

	return floatageKey(data, k1), nil
}

// extractGroup turns a group's raw stored bytes into its plaintext
// payload: optional decryption, then optional decompression.
func extractGroup(header GroupHeader, stored []byte, kraken bool, encrypted bool, keys groupKeys, threshold int, v3 bool) ([]byte, error) {
	if header.StoredSize() == 0 {
		return nil, nil
	}

	data := stored
	var err error
	if encrypted {
		data, err = decryptGroup(data, keys, threshold, v3)
		if err != nil {
			return nil, wrapErr(KindDecryptionFailed, "group", err)
		}
	}

	if header.CompressedSize != 0 {
		data, err = decompressPayload(data, int(header.OriginalSize), kraken)
		if err != nil {
			return nil, wrapErr(KindDecompressionFailed, "group", err)
		}
		if len(data) != int(header.OriginalSize) {
			return nil, newErr(KindDecompressionFailed, "group original_size")
		}
	}

	return data, nil
}

// splitGroup dispatches on the decompressed payload's shape and returns
// its member files in order.
func splitGroup(header GroupHeader, data []byte) ([]DataFile, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if isNIFL(data) {
		return splitHeaderlessNIFL(header, data)
	}
	if isHeaderless(data[0]) {
		return splitHeaderlessFile(header, data)
	}
	return splitNormalGroup(header, data)
}

func isNIFL(data []byte) bool {
	return len(data) >= 4 && string(data[0:4]) == "NIFL"
}

func splitHeaderlessFile(header GroupHeader, data []byte) ([]DataFile, error) {
	if header.FileCount != 1 {
		return nil, newErr(KindMalformedRecord, fmt.Sprintf("headerless group expects file_count 1, got %d", header.FileCount))
	}
	return []DataFile{{Name: "unnamed_0.bin", Data: data}}, nil
}

func splitNormalGroup(header GroupHeader, data []byte) ([]DataFile, error) {
	files := make([]DataFile, 0, header.FileCount)
	pos := 0
	for i := uint32(0); i < header.FileCount; i++ {
		f, n, err := decodeDataFileRecord(data[pos:])
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		pos += n
	}
	return files, nil
}

// splitHeaderlessNIFL walks a payload of concatenated NIFL chunks. Each
// chunk's extent is computed from its own length fields (a body-length
// i32 at offset 0x14, followed by a NOF0 sub-chunk length read relative
// to the end of the body, padded to 0x10, plus a trailing 0x10-byte NEND
// marker); a chunk that does not start with "NIFL" ends the loop early
// and becomes one trailing nameless record for the remaining bytes.
func splitHeaderlessNIFL(header GroupHeader, data []byte) ([]DataFile, error) {
	files := make([]DataFile, 0, header.FileCount)
	pos := 0

	for i := uint32(0); i < header.FileCount; i++ {
		start := pos
		if start+4 > len(data) || string(data[start:start+4]) != "NIFL" {
			files = append(files, DataFile{
				Name: fmt.Sprintf("unnamed_NIFL_%d.bin", i),
				Data: data[start:],
			})
			break
		}

		if start+0x18 > len(data) {
			return nil, newErr(KindUnexpectedEOF, "NIFL body length")
		}
		bodySize := int(readI32LE(data, start+0x14))

		nofPos := start + 0x18 + bodySize - 0x10
		if nofPos < 0 || nofPos+4 > len(data) {
			return nil, newErr(KindMalformedRecord, "NIFL NOF0 offset")
		}
		nof0Size := int(readI32LE(data, nofPos)) + 8
		nof0Size += 0x10 - (nof0Size % 0x10)

		total := bodySize + nof0Size + 0x10
		if start+total > len(data) {
			return nil, newErr(KindUnexpectedEOF, "NIFL record body")
		}

		record := make([]byte, total)
		copy(record, data[start:start+total])
		files = append(files, DataFile{
			Name: fmt.Sprintf("unnamed_NIFL_%d.bin", i),
			Data: record,
		})
		pos = start + total
	}

	return files, nil
}

// combineGroup concatenates files into a single payload, always encoding
// a DataFileHeader per record regardless of the shape the group was
// originally split from.
func combineGroup(files []DataFile) []byte {
	var out []byte
	for _, f := range files {
		out = append(out, encodeDataFileRecord(f)...)
	}
	return out
}
