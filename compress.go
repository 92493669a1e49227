package ice

// CompressMode selects the compression algorithm applied to a group's
// payload before it is stored (and, if the archive is encrypted, before
// encryption).
type CompressMode int

const (
	CompressNone CompressMode = iota
	CompressKraken
	CompressPRS
)

// CompressOptions is a plain value describing how a group should be
// compressed: the algorithm and, for Kraken, its level (0-9).
type CompressOptions struct {
	Mode  CompressMode
	Level uint8
}

// prsObfuscationKey is the constant XOR mask the archive format layers on
// top of a PRS bitstream; it is not part of the PRS codec itself.
const prsObfuscationKey = 0x95

func xorByte(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// compressPayload compresses plaintext per opts. CompressNone returns the
// input unchanged (the caller records compressed_size == 0 in that case).
func compressPayload(plain []byte, opts CompressOptions) ([]byte, error) {
	switch opts.Mode {
	case CompressNone:
		return plain, nil
	case CompressKraken:
		return krakenCompress(plain, int(opts.Level))
	case CompressPRS:
		return xorByte(prsCompress(plain), prsObfuscationKey), nil
	default:
		return nil, newErr(KindInvalidInput, "compress mode")
	}
}

// decompressPayload reverses compressPayload. kraken selects the algorithm
// (Kraken when true, otherwise PRS); it comes from the archive's kraken
// flag, not from any marker in the bytes themselves.
func decompressPayload(stored []byte, originalSize int, kraken bool) ([]byte, error) {
	if kraken {
		return krakenDecompress(stored, originalSize)
	}
	unmasked := xorByte(stored, prsObfuscationKey)
	return prsDecompress(unmasked, originalSize)
}
