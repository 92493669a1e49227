package ice

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// krakenCompress and krakenDecompress stand in for the archive's Kraken
// codec. Kraken itself is a proprietary, closed-source algorithm with no
// available Go implementation; this package substitutes the LZ4 frame
// codec behind the same Compress/Decompress contract (raw bytes in,
// known output size out) so that archives built with the kraken flag can
// still round-trip end to end under this package. It is not
// bit-compatible with archives produced by the original Kraken encoder.
func krakenCompress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)

	opts := []lz4.Option{lz4.CompressionLevelOption(krakenLevel(level))}
	if err := w.Apply(opts...); err != nil {
		return nil, wrapErr(KindDecompressionFailed, "kraken writer options", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, wrapErr(KindDecompressionFailed, "kraken compress", err)
	}
	if err := w.Close(); err != nil {
		return nil, wrapErr(KindDecompressionFailed, "kraken compress close", err)
	}
	return buf.Bytes(), nil
}

func krakenDecompress(in []byte, outSize int) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(in))
	out := make([]byte, outSize)
	n, err := io.ReadFull(r, out)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, wrapErr(KindDecompressionFailed, "kraken decompress", err)
	}
	return out[:n], nil
}

// krakenLevel maps the archive's 0-9 Kraken compression level onto LZ4's
// level range, clamping out-of-range values instead of rejecting them.
func krakenLevel(level int) lz4.CompressionLevel {
	switch {
	case level <= 0:
		return lz4.Fast
	case level >= 9:
		return lz4.Level9
	default:
		return lz4.CompressionLevel(1 << uint(level+8))
	}
}
