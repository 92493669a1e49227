package ice

// KeySet holds the derived Blowfish keys used to decrypt/encrypt an
// archive's group-headers blob and the two file groups. It is never
// persisted; it is recomputed from the magic-numbers blob and archive
// size whenever an encrypted v4 archive is read.
type KeySet struct {
	GroupHeadersKey []byte
	Group1Keys      [2][]byte
	Group2Keys      [2][]byte
}

// deriveKeys implements the archive's key schedule: it turns the 256-byte
// magic-numbers blob that follows a v4 archive header, plus the archive's
// total file size, into the KeySet used for every encrypted region.
func deriveKeys(magicNumbers []byte, fileSize uint32) KeySet {
	int6c := readU32LE(magicNumbers, 0x6C)
	crc := crc32Of(magicNumbers[0x7C:0xDC])
	temp0 := crc ^ int6c ^ fileSize ^ 0x4352F5C2

	k := getKey(magicNumbers, temp0)
	g1a := calcBlowfishKey(magicNumbers, k)
	g1b := getKey(magicNumbers, g1a)

	g2a := rotateRight32(g1a, 15)
	g2b := rotateRight32(g1b, 15)
	headersKey := rotateRight32(g1a, 19)

	return KeySet{
		GroupHeadersKey: le32(headersKey),
		Group1Keys:      [2][]byte{le32(g1a), le32(g1b)},
		Group2Keys:      [2][]byte{le32(g2a), le32(g2b)},
	}
}

// rotl8 rotates the low 8 bits of v left by a bits (a+b == 8).
func rotl8(v byte, a, b uint) byte {
	return byte((uint32(v)<<a | uint32(v)>>b) & 0xFF)
}

// getKey derives a new 32-bit word from blob, indexed at four offsets
// derived from t's bytes and rotated per-byte.
func getKey(blob []byte, t uint32) uint32 {
	n1 := byte((t + 93) & 0xFF)
	n2 := byte(((t >> 8) + 63) & 0xFF)
	n3 := byte(((t >> 16) + 69) & 0xFF)
	n4 := byte(((t >> 24) - 58) & 0xFF)

	b1 := uint32(rotl8(blob[n2], 7, 1))
	b2 := uint32(rotl8(blob[n4], 6, 2))
	b3 := uint32(rotl8(blob[n1], 5, 3))
	b4 := uint32(rotl8(blob[n3], 5, 3))

	return (b1 << 24) | (b2 << 16) | (b3 << 8) | b4
}

// calcBlowfishKey runs the key-mixing loop: the iteration count is derived
// from a divide-by-7 performed via a magic-number multiply/shift sequence,
// which is equivalent to (t % 7) + 2.
func calcBlowfishKey(blob []byte, temp0 uint32) uint32 {
	t := uint32(0x8E02C25C) ^ temp0

	q := uint32((uint64(0x24924925) * uint64(t)) >> 32)
	r := (((t - q) >> 1) + q) >> 2
	loopCount := (t - r*7) + 2

	for i := uint32(0); i < loopCount; i++ {
		t = getKey(blob, t)
	}

	return t ^ 0x4352F5C2 ^ 0xCD50379E
}
