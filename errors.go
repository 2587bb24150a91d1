package vlz

// Reason identifies which invariant a FormatError's malformed input
// violated.
type Reason int

const (
	// ReasonOffsetBeforeStart means a back-reference's source pointer
	// would precede the start of the output buffer.
	ReasonOffsetBeforeStart Reason = iota
	// ReasonWritePastEnd means a packet would write past the declared
	// output length.
	ReasonWritePastEnd
)

func (r Reason) String() string {
	switch r {
	case ReasonOffsetBeforeStart:
		return "back-reference precedes start of output"
	case ReasonWritePastEnd:
		return "packet would write past declared output length"
	default:
		return "malformed packet"
	}
}

// FormatError reports that a decoder encountered a packet that cannot be
// satisfied against the current output buffer. It is always fatal: the
// Decompressor that returned it must be discarded, per the package's
// state-machine contract.
type FormatError struct {
	Reason Reason
}

func (e *FormatError) Error() string {
	return "vlz: malformed compressed data: " + e.Reason.String()
}
