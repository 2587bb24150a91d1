// Package vlq implements the base-128 little-endian variable-length
// quantity encoding used throughout the vlzpress wire format.
package vlq

// Append encodes n as a variable-length quantity and appends it to dst.
// The low 7 bits of each emitted byte carry data, least-significant group
// first; the high bit is 1 on every byte except the last. Zero encodes as
// a single zero byte.
func Append(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}
	return append(dst, byte(n))
}

// Size returns the number of bytes Append(nil, n) would produce, without
// allocating.
func Size(n uint64) int {
	size := 1
	for n >= 0x80 {
		size++
		n >>= 7
	}
	return size
}

// A Decoder holds the state of a variable-length quantity decode in
// progress, so that it can be resumed across arbitrary input boundaries.
// The zero value is ready to use.
type Decoder struct {
	value uint64
	shift uint
}

// Decode consumes as much of src as is needed to complete one VLQ value,
// starting from any state left by a previous partial call. It returns the
// decoded value, the number of bytes of src consumed, and whether the
// value is complete. When done is false, the caller must call Decode again
// with the next chunk of input; the Decoder retains the partial value
// internally and n bytes of src were consumed regardless.
func (d *Decoder) Decode(src []byte) (value uint64, n int, done bool) {
	for _, c := range src {
		n++
		d.value |= uint64(c&0x7f) << d.shift
		if c&0x80 == 0 {
			value = d.value
			d.value = 0
			d.shift = 0
			return value, n, true
		}
		d.shift += 7
	}
	return 0, n, false
}
