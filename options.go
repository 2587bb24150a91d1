package vlz

const (
	// DefaultSearchLen is the number of prior positions retained per hash
	// bucket when no Option overrides it.
	DefaultSearchLen = 8
	// DefaultBlockSize is the hash-table modulus used when no Option
	// overrides it.
	DefaultBlockSize = 65536
)

// options collects the tuning parameters for Compress. The zero value is
// not valid on its own; use newOptions to get the defaulted form.
type options struct {
	searchLen int
	blockSize int
}

func newOptions(opts []Option) options {
	o := options{searchLen: DefaultSearchLen, blockSize: DefaultBlockSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.searchLen < 1 {
		o.searchLen = 1
	}
	if o.blockSize <= 0 {
		o.blockSize = DefaultBlockSize
	}
	if o.blockSize > maxBlockSize {
		// The prefix hashes are 16-bit values (see prefixHashes); a
		// modulus beyond that range would overflow them.
		o.blockSize = maxBlockSize
	}
	return o
}

// maxBlockSize is the largest blocksize that keeps a reduced hash
// representable in 16 bits.
const maxBlockSize = 1 << 16

// An Option configures a Compress call. The zero value of an unconfigured
// Compress call matches the defaults described in the package's wire
// format (SearchLen 8, BlockSize 65536).
type Option func(*options)

// WithSearchLen sets the maximum number of prior positions retained per
// hash bucket. Larger values cost more time and memory for potentially
// better matches. Values less than 1 are treated as 1.
func WithSearchLen(n int) Option {
	return func(o *options) { o.searchLen = n }
}

// WithBlockSize sets the hash-table modulus. Values less than or equal to
// zero fall back to DefaultBlockSize.
func WithBlockSize(n int) Option {
	return func(o *options) { o.blockSize = n }
}
