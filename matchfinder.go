package vlz

// A posRing is a fixed-capacity first-in-first-out list of input
// positions, backed by a flat slice instead of an allocation per bucket.
// It is the circular-buffer-with-a-head-index shape described for hash
// buckets in this format: once full, inserting overwrites the oldest
// entry.
type posRing struct {
	capacity int
	slots    []int32
	head     []uint16
	count    []uint16
}

func newPosRing(buckets, capacity int) *posRing {
	return &posRing{
		capacity: capacity,
		slots:    make([]int32, buckets*capacity),
		head:     make([]uint16, buckets),
		count:    make([]uint16, buckets),
	}
}

// appendPositions appends every position currently stored under bucket h
// to dst, most recently inserted first, and returns the extended slice.
func (r *posRing) appendPositions(dst []int, h uint16) []int {
	n := int(r.count[h])
	if n == 0 {
		return dst
	}
	base := int(h) * r.capacity
	head := int(r.head[h])
	for i := 0; i < n; i++ {
		idx := head - 1 - i
		if idx < 0 {
			idx += r.capacity
		}
		dst = append(dst, int(r.slots[base+idx]))
	}
	return dst
}

// insert records pos under bucket h, evicting the oldest entry if the
// bucket is already at capacity.
func (r *posRing) insert(h uint16, pos int) {
	base := int(h) * r.capacity
	idx := int(r.head[h])
	r.slots[base+idx] = int32(pos)
	idx++
	if idx == r.capacity {
		idx = 0
	}
	r.head[h] = uint16(idx)
	if int(r.count[h]) < r.capacity {
		r.count[h]++
	}
}

// dualPrefixHash is the match-finding dictionary used by the compressor:
// two independent hash tables, one keyed on 3-byte prefixes and one on
// 6-byte prefixes, each bucket a bounded FIFO of prior positions. It is
// created fresh for each Compress call and discarded afterward; it never
// carries state between calls.
type dualPrefixHash struct {
	blockSize int
	table3    *posRing
	table6    *posRing

	posBuf []int // scratch, reused across searches to avoid allocation
}

func newDualPrefixHash(blockSize, searchLen int) *dualPrefixHash {
	return &dualPrefixHash{
		blockSize: blockSize,
		table3:    newPosRing(blockSize, searchLen),
		table6:    newPosRing(blockSize, searchLen),
	}
}

// prefixHashes computes the two 16-bit prefix hashes for the 6 bytes
// starting at s[0], per the format's hash function.
func prefixHashes(s []byte, blockSize int) (h3, h6 uint16) {
	p3 := uint32(s[0]) | uint32(s[1])<<8
	p3 ^= uint32(s[2])
	p6 := p3 + (uint32(s[4])<<8 | uint32(s[5]))
	return uint16(p3 % uint32(blockSize)), uint16(p6 % uint32(blockSize))
}

// candidate is a back-reference option found at the current position.
type candidate struct {
	run    int
	offset int
	gain   int
}

// best searches both tables for the position i in s (which must have at
// least 6 bytes remaining), returning the candidate with the greatest
// positive gain, or a zero-gain candidate if none qualifies. It then
// inserts i into both tables, per the format's "search before insert"
// contract.
func (d *dualPrefixHash) best(s []byte, i int) candidate {
	h3, h6 := prefixHashes(s[i:], d.blockSize)

	var c candidate
	d.posBuf = d.table3.appendPositions(d.posBuf[:0], h3)
	d.posBuf = d.table6.appendPositions(d.posBuf, h6)

	for _, p := range d.posBuf {
		offset := i - p
		run := commonPrefixLen(s[i:], s[p:])
		g := gain(run, offset)
		if g > c.gain {
			c = candidate{run: run, offset: offset, gain: g}
		}
	}

	d.table3.insert(h3, i)
	d.table6.insert(h6, i)

	return c
}

// commonPrefixLen returns the length of the common prefix of a and b,
// bounded by the shorter of the two. The compressor has the whole input
// in memory, so a match is allowed to run from an earlier position p
// through and past the current position i (p < i <= p+run): the decoder
// reconstructs this the usual LZ77 way, by reading bytes it has just
// written.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// gain implements the format's cost model: the net bytes saved by
// emitting a back-reference of the given run and offset, versus leaving
// those bytes as literals. It is deliberately an approximation of the
// true encoded size (see the short/long back-reference packing) and part
// of the format's contract only insofar as the compressor must reject
// non-positive-gain candidates; it is not required for interoperability
// with other encoders of this format.
func gain(run, offset int) int {
	loss := 2
	for _, v := range [2]int{run, offset} {
		if v > 0x7F {
			loss++
		}
		if v > 0x3FFF {
			loss++
		}
		if v > 0x1FFFFF {
			loss++
		}
	}
	if loss >= run {
		return 0
	}
	return run - loss
}
