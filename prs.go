package ice

// prsReader walks a PRS bitstream, refilling its control-bit register
// from the input byte-by-byte.
type prsReader struct {
	in           []byte
	pos          int
	ctrlByte     byte
	ctrlBitsLeft int
}

func (r *prsReader) readByte() (byte, bool) {
	if r.pos >= len(r.in) {
		return 0, false
	}
	b := r.in[r.pos]
	r.pos++
	return b, true
}

func (r *prsReader) readBit() (int, bool) {
	if r.ctrlBitsLeft == 0 {
		b, ok := r.readByte()
		if !ok {
			return 0, false
		}
		r.ctrlByte = b
		r.ctrlBitsLeft = 8
	}
	bit := int(r.ctrlByte & 1)
	r.ctrlByte >>= 1
	r.ctrlBitsLeft--
	return bit, true
}

// prsDecompress decodes a PRS bitstream into at most outSize bytes. It
// stops cleanly on the (0,0) sentinel, on input exhaustion, or once
// outSize bytes have been produced.
func prsDecompress(in []byte, outSize int) ([]byte, error) {
	out := make([]byte, 0, outSize)
	r := &prsReader{in: in}

loop:
	for len(out) < outSize {
		bit, ok := r.readBit()
		if !ok {
			break
		}

		if bit == 1 {
			b, ok := r.readByte()
			if !ok {
				return nil, newErr(KindUnexpectedEOF, "prs literal")
			}
			out = append(out, b)
			continue
		}

		longForm, ok := r.readBit()
		if !ok {
			break
		}

		var offset, size int
		if longForm == 1 {
			d0, ok1 := r.readByte()
			d1, ok2 := r.readByte()
			if !ok1 || !ok2 {
				return nil, newErr(KindUnexpectedEOF, "prs long reference")
			}
			if d0 == 0 && d1 == 0 {
				break loop
			}

			raw := (uint16(d1) << 5) | (uint16(d0) >> 3)
			offset = int(raw) - 0x2000
			size = int(d0 & 7)
			if size == 0 {
				e, ok := r.readByte()
				if !ok {
					return nil, newErr(KindUnexpectedEOF, "prs long reference size")
				}
				size = int(e) + 10
			} else {
				size += 2
			}
		} else {
			b1, ok1 := r.readBit()
			b2, ok2 := r.readBit()
			if !ok1 || !ok2 {
				break
			}
			size = 2 + b1*2 + b2

			b, ok := r.readByte()
			if !ok {
				return nil, newErr(KindUnexpectedEOF, "prs short reference")
			}
			offset = int(b) - 0x100
		}

		remaining := outSize - len(out)
		if size > remaining {
			size = remaining
		}
		srcIdx := len(out) + offset
		if srcIdx < 0 {
			return nil, newErr(KindDecompressionFailed, "prs back-reference before start")
		}
		for i := 0; i < size; i++ {
			out = append(out, out[srcIdx+i])
		}
	}

	return out, nil
}

// prsWriter assembles a PRS bitstream, reserving each control byte's slot
// in the output the moment its first bit is written so that data bytes
// interleave with control bytes exactly as the reader expects them.
type prsWriter struct {
	out      []byte
	ctrlPos  int
	ctrlAcc  byte
	ctrlBits uint
}

func newPRSWriter() *prsWriter {
	return &prsWriter{ctrlPos: -1}
}

func (w *prsWriter) writeBit(bit int) {
	if w.ctrlBits == 0 {
		w.ctrlPos = len(w.out)
		w.out = append(w.out, 0)
	}
	if bit != 0 {
		w.ctrlAcc |= 1 << w.ctrlBits
	}
	w.ctrlBits++
	if w.ctrlBits == 8 {
		w.out[w.ctrlPos] = w.ctrlAcc
		w.ctrlAcc = 0
		w.ctrlBits = 0
	}
}

func (w *prsWriter) writeByte(b byte) {
	w.out = append(w.out, b)
}

func (w *prsWriter) literal(b byte) {
	w.writeBit(1)
	w.writeByte(b)
}

func (w *prsWriter) shortRef(size, offset int) {
	w.writeBit(0)
	w.writeBit(0)
	inc := size - 2
	w.writeBit(inc >> 1 & 1)
	w.writeBit(inc & 1)
	w.writeByte(byte(offset + 0x100))
}

func (w *prsWriter) longRef(size, offset int) {
	w.writeBit(0)
	w.writeBit(1)
	raw := uint16(offset + 0x2000)
	var sizeField byte
	var extra byte
	hasExtra := false
	if size >= 3 && size <= 9 {
		sizeField = byte(size - 2)
	} else {
		sizeField = 0
		extra = byte(size - 10)
		hasExtra = true
	}
	d0 := byte(raw<<3) | sizeField
	d1 := byte(raw >> 5)
	w.writeByte(d0)
	w.writeByte(d1)
	if hasExtra {
		w.writeByte(extra)
	}
}

func (w *prsWriter) sentinel() {
	w.writeBit(0)
	w.writeBit(1)
	w.writeByte(0)
	w.writeByte(0)
}

func (w *prsWriter) finish() []byte {
	if w.ctrlBits > 0 {
		w.out[w.ctrlPos] = w.ctrlAcc
	}
	w.sentinel()
	if w.ctrlBits > 0 {
		w.out[w.ctrlPos] = w.ctrlAcc
	}
	return w.out
}

const (
	prsMaxShortSize   = 5
	prsMaxShortOffset = 0x100
	prsMaxLongSize    = 265
	prsMaxLongOffset  = 0x2000
	prsMinMatchSize   = 2
)

// findMatch does a brute-force search of the window behind pos for the
// longest run of bytes matching data starting at pos. Self-overlapping
// matches (the classic LZ77 RLE case) are allowed and intentional.
func findMatch(data []byte, pos int) (bestOffset, bestLen int) {
	maxLen := len(data) - pos
	if maxLen > prsMaxLongSize {
		maxLen = prsMaxLongSize
	}
	if maxLen < prsMinMatchSize {
		return 0, 0
	}

	windowStart := pos - prsMaxLongOffset
	if windowStart < 0 {
		windowStart = 0
	}

	for start := pos - 1; start >= windowStart; start-- {
		length := 0
		for length < maxLen && data[start+length] == data[pos+length] {
			length++
		}
		if length > bestLen {
			bestLen = length
			bestOffset = start - pos
		}
	}
	return bestOffset, bestLen
}

// prsCompress produces a PRS bitstream that decodes back to data. Match
// quality is not optimized beyond a greedy longest-match search; any valid
// encoding that round-trips is acceptable.
func prsCompress(data []byte) []byte {
	w := newPRSWriter()
	pos := 0
	for pos < len(data) {
		offset, length := findMatch(data, pos)

		useShort := length >= prsMinMatchSize && length <= prsMaxShortSize && -offset <= prsMaxShortOffset
		useLong := length >= 3 && -offset < prsMaxLongOffset

		switch {
		case useShort:
			w.shortRef(length, offset)
			pos += length
		case useLong:
			w.longRef(length, offset)
			pos += length
		default:
			w.literal(data[pos])
			pos++
		}
	}
	return w.finish()
}
