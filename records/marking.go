package records

import (
	"strings"

	"github.com/distsim/cdis-codec/bitio"
)

// MaxMarkingLength is the widest marking this codec round-trips: the
// legacy fixed marking width of 11 characters. The 4-bit length field
// itself could count up to 15 (§4.3 "Entity marking").
const MaxMarkingLength = 11

// five-bit table: space plus a restricted letter set that excludes 'J'
// (confirmed by the "AAJJ" literal test vector, which forces 6-bit mode
// on a string of otherwise-plain letters) plus a handful of digits and
// punctuation filling out the remaining two-bit-short alphabet.
var fiveBitChars = []byte(" ABCDEFGHIKLMNOPQRSTUVWXYZ012-.'")

// six-bit table: space, the full alphabet, digits, and a short run of
// punctuation, in plain ascending order.
var sixBitChars = []byte(" ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-.',_/()")

func init() {
	if len(fiveBitChars) != 32 {
		panic("records: fiveBitChars must have exactly 32 entries")
	}
}

func indexOf(table []byte, ch byte) (int, bool) {
	for i, c := range table {
		if c == ch {
			return i, true
		}
	}

	return 0, false
}

// fitsFiveBit reports whether every character of s has a 5-bit code.
func fitsFiveBit(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := indexOf(fiveBitChars, s[i]); !ok {
			return false
		}
	}

	return true
}

// WriteMarking writes s (already trimmed of trailing legacy padding) as a
// 4-bit length, a 1-bit charset flag, then packed 5- or 6-bit characters
// (§4.3 "Entity marking"). Characters absent from both tables are
// written as space.
func WriteMarking(w *bitio.Writer, s string) {
	if len(s) > MaxMarkingLength {
		s = s[:MaxMarkingLength]
	}

	sixBit := !fitsFiveBit(s)
	w.WriteUnsigned(4, uint32(len(s)))
	if sixBit {
		w.WriteUnsigned(1, 1)
	} else {
		w.WriteUnsigned(1, 0)
	}

	table := fiveBitChars
	bits := 5
	if sixBit {
		table, bits = sixBitChars, 6
	}

	for i := 0; i < len(s); i++ {
		code, ok := indexOf(table, s[i])
		if !ok {
			code = 0
		}
		w.WriteUnsigned(bits, uint32(code))
	}
}

// ReadMarking is the inverse of WriteMarking.
func ReadMarking(r *bitio.Reader) (string, error) {
	length, err := r.ReadUnsigned(4)
	if err != nil {
		return "", err
	}
	sixBit, err := r.ReadUnsigned(1)
	if err != nil {
		return "", err
	}

	table := fiveBitChars
	bits := 5
	if sixBit != 0 {
		table, bits = sixBitChars, 6
	}

	var sb strings.Builder
	for range length {
		code, err := r.ReadUnsigned(bits)
		if err != nil {
			return "", err
		}
		if int(code) < len(table) {
			sb.WriteByte(table[code])
		} else {
			sb.WriteByte(' ')
		}
	}

	return sb.String(), nil
}

// WriteDisMarking writes s, space-padded or truncated to n bytes — the
// legacy fixed-width ASCII form.
func WriteDisMarking(buf []byte, s string, n int) []byte {
	start := len(buf)
	buf = append(buf, make([]byte, n)...)
	for i := 0; i < n; i++ {
		buf[start+i] = ' '
	}
	copy(buf[start:start+n], s)

	return buf
}

// ReadDisMarking reads n bytes starting at off and trims trailing spaces
// (§4.3: "Trailing spaces in a legacy 11-char fixed marking are stripped
// before encoding and restored on decode").
func ReadDisMarking(buf []byte, off, n int) (string, int) {
	return strings.TrimRight(string(buf[off:off+n]), " "), off + n
}
