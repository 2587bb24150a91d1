package vlz

import "github.com/vlzpress/vlzpress/internal/vlq"

// minMatchRun is the shortest back-reference the format can express; the
// biased run field in a back-reference packet is actual_run-3, and must
// be at least 1.
const minMatchRun = 4

// tailGuard is the number of bytes prefixHashes reads starting at the
// current position; positions with fewer than tailGuard bytes left (the
// last tailGuard-1 bytes of the input) are not searched.
const tailGuard = 6

// Compress returns the compressed form of src as a single vlzpress
// message: a VLQ-encoded output length followed by a sequence of literal
// and back-reference packets (see the package's wire
// format). It is a pure function: every call gets its own hash tables and
// pending-literal buffer, which are discarded when Compress returns (this
// codec performs no I/O and keeps no state across calls).
//
// Compress never fails; any byte sequence, including the empty one,
// compresses successfully.
func Compress(src []byte, opts ...Option) []byte {
	o := newOptions(opts)

	dst := make([]byte, 0, len(src)/2+16)
	dst = vlq.Append(dst, uint64(len(src)))

	if len(src) == 0 {
		return dst
	}

	hash := newDualPrefixHash(o.blockSize, o.searchLen)

	n := len(src)
	litStart := 0
	i := 0
	for i < n {
		if i > n-tailGuard {
			i++
			continue
		}

		c := hash.best(src, i)
		if c.run < minMatchRun {
			i++
			continue
		}

		if litStart < i {
			dst = appendLiteralPacket(dst, src[litStart:i])
		}
		dst = appendBackrefPacket(dst, c.run, c.offset)

		i += c.run
		litStart = i
	}

	if litStart < n {
		dst = appendLiteralPacket(dst, src[litStart:n])
	}

	return dst
}

// appendLiteralPacket appends a literal packet (VLQ((len<<1)|1) followed
// by the raw bytes) to dst and returns the extended slice. lit must be
// non-empty; the format has no zero-length literal packet.
func appendLiteralPacket(dst []byte, lit []byte) []byte {
	dst = vlq.Append(dst, uint64(len(lit))<<1|1)
	return append(dst, lit...)
}

// appendBackrefPacket appends a back-reference packet for the given
// match run and offset, choosing the short single-VLQ form when the
// biased run fits in 4 bits and the two-VLQ long form otherwise.
func appendBackrefPacket(dst []byte, run, offset int) []byte {
	biased := uint64(run - 3)
	if biased < 16 {
		msg := (uint64(offset)<<4 | biased) << 1
		return vlq.Append(dst, msg)
	}
	dst = vlq.Append(dst, uint64(offset)<<5)
	return vlq.Append(dst, biased)
}
