package ice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinnedMagicNumbers() []byte {
	blob := make([]byte, 256)
	for i := range blob {
		blob[i] = byte(i*7 + 13)
	}
	return blob
}

func TestDeriveKeysIsPure(t *testing.T) {
	blob := pinnedMagicNumbers()

	k1 := deriveKeys(blob, 0x1000)
	k2 := deriveKeys(blob, 0x1000)

	assert.Equal(t, k1, k2)
}

func TestDeriveKeysVariesWithFileSize(t *testing.T) {
	blob := pinnedMagicNumbers()

	k1 := deriveKeys(blob, 0x1000)
	k2 := deriveKeys(blob, 0x2000)

	assert.NotEqual(t, k1.Group1Keys, k2.Group1Keys)
}

func TestDeriveKeysProducesFourByteKeys(t *testing.T) {
	blob := pinnedMagicNumbers()
	keys := deriveKeys(blob, 0xABCD)

	require.Len(t, keys.GroupHeadersKey, 4)
	require.Len(t, keys.Group1Keys[0], 4)
	require.Len(t, keys.Group1Keys[1], 4)
	require.Len(t, keys.Group2Keys[0], 4)
	require.Len(t, keys.Group2Keys[1], 4)
}

func TestRotateRight32(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotateRight32(1, 1))
	assert.Equal(t, uint32(1), rotateRight32(1, 0))
}

func TestGetKeyDeterministic(t *testing.T) {
	blob := pinnedMagicNumbers()
	assert.Equal(t, getKey(blob, 0x1234), getKey(blob, 0x1234))
	assert.NotEqual(t, getKey(blob, 0x1234), getKey(blob, 0x1235))
}
