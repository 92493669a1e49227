package ice

import (
	"golang.org/x/crypto/blowfish"
)

const blowfishBlockSize = 8

// swapWord reverses the 4 bytes in b[0:4] in place.
func swapWord(b []byte) {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
}

// swapBlock reverses each of the two 4-byte words of an 8-byte block,
// which is how the archive's block cipher wrapper presents little-endian
// word pairs to a big-endian-oriented block cipher call.
func swapBlock(b []byte) {
	swapWord(b[0:4])
	swapWord(b[4:8])
}

// blowfishTransform runs fn over every 8-byte-aligned block of data under
// key, leaving any trailing remainder (len(data) % 8 bytes) untouched. Known
// quirk, preserved for bit-for-bit compatibility: the tail is never ciphered.
func blowfishTransform(data []byte, key []byte, fn func(c *blowfish.Cipher, block []byte)) ([]byte, error) {
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, wrapErr(KindDecryptionFailed, "blowfish key", err)
	}
	if data == nil {
		return nil, nil
	}

	aligned := len(data) - len(data)%blowfishBlockSize
	out := make([]byte, len(data))
	copy(out[aligned:], data[aligned:])

	block := make([]byte, blowfishBlockSize)
	for i := 0; i < aligned; i += blowfishBlockSize {
		copy(block, data[i:i+blowfishBlockSize])
		fn(c, block)
		copy(out[i:i+blowfishBlockSize], block)
	}
	return out, nil
}

// blowfishEncrypt encrypts data's 8-byte-aligned head under key in ECB
// mode, byte-swapping each 4-byte half of a block before and after the
// cipher call. The unaligned tail passes through unchanged.
func blowfishEncrypt(data []byte, key []byte) ([]byte, error) {
	return blowfishTransform(data, key, func(c *blowfish.Cipher, block []byte) {
		swapBlock(block)
		c.Encrypt(block, block)
		swapBlock(block)
	})
}

// blowfishDecrypt is the inverse of blowfishEncrypt.
func blowfishDecrypt(data []byte, key []byte) ([]byte, error) {
	return blowfishTransform(data, key, func(c *blowfish.Cipher, block []byte) {
		swapBlock(block)
		c.Decrypt(block, block)
		swapBlock(block)
	})
}
