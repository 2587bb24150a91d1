package vlz

import "github.com/vlzpress/vlzpress/internal/vlq"

type decoderState int

const (
	stateInit decoderState = iota
	stateStart
	stateReadLiteral
	stateReadRun
)

// A Decompressor is a resumable state machine that reconstructs one
// vlzpress message at a time from input delivered in arbitrary-sized
// chunks via Feed. It is not safe for concurrent use; independent
// Decompressor values share no state and may be used from different
// goroutines concurrently.
//
// A Decompressor is reused across messages: once Feed reports a message
// complete, the next call to Feed begins decoding a new message from the
// chunk passed to it. The Decompressor keeps no copy of the leftover
// bytes it reported; a caller that wants them decoded passes them to Feed.
type Decompressor struct {
	state decoderState
	hdr   vlq.Decoder

	msg uint64 // pending packet header (shifted/masked per state)
	run uint64 // pending back-reference length, or remaining literal length

	out []byte
	pos int // write cursor into out
}

// NewDecompressor returns a Decompressor ready to decode the first
// message fed to it.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// Feed advances decoding by consuming as much of chunk as is needed. If
// it returns complete=true, the message is finished: Result returns the
// decoded bytes, and leftover holds whatever part of chunk followed the
// message (empty if the message and chunk ended together). If it returns
// complete=false, chunk was fully consumed but the message is not yet
// complete; call Feed again with the next chunk. A non-nil error means
// the input was malformed (a *FormatError); the Decompressor must not be
// used again.
func (d *Decompressor) Feed(chunk []byte) (complete bool, leftover []byte, err error) {
	i := 0
	n := len(chunk)

	if d.state == stateInit {
		size, consumed, done := d.hdr.Decode(chunk[i:])
		i += consumed
		if !done {
			return false, nil, nil
		}
		d.out = make([]byte, size)
		d.pos = 0
		d.run = 0
		d.msg = 0
		d.state = stateStart
	}

	for i < n {
		if d.pos == len(d.out) {
			d.state = stateInit
			return true, chunk[i:], nil
		}

		if d.state == stateStart {
			msg, consumed, done := d.hdr.Decode(chunk[i:])
			i += consumed
			if !done {
				return false, nil, nil
			}
			if msg&1 == 1 {
				d.run = msg >> 1
				d.state = stateReadLiteral
			} else {
				d.msg = msg >> 1
				d.state = stateReadRun
			}
		}

		if d.state == stateReadLiteral {
			want := int(d.run)
			if d.pos+want > len(d.out) {
				return false, nil, &FormatError{Reason: ReasonWritePastEnd}
			}
			avail := n - i
			if avail < want {
				copy(d.out[d.pos:], chunk[i:n])
				d.pos += avail
				d.run -= uint64(avail)
				return false, nil, nil
			}
			copy(d.out[d.pos:], chunk[i:i+want])
			d.pos += want
			i += want
			d.state = stateStart
			continue
		}

		if d.state == stateReadRun {
			shortRun := d.msg & 0xF
			if shortRun != 0 {
				d.run = shortRun
			} else {
				biased, consumed, done := d.hdr.Decode(chunk[i:])
				i += consumed
				if !done {
					return false, nil, nil
				}
				d.run = biased
			}

			offset := int(d.msg >> 4)
			run := int(d.run) + 3

			srcStart := d.pos - offset
			if srcStart < 0 {
				return false, nil, &FormatError{Reason: ReasonOffsetBeforeStart}
			}
			if d.pos+run > len(d.out) {
				return false, nil, &FormatError{Reason: ReasonWritePastEnd}
			}

			if srcStart+run <= d.pos {
				copy(d.out[d.pos:d.pos+run], d.out[srcStart:srcStart+run])
			} else {
				for k := 0; k < run; k++ {
					d.out[d.pos+k] = d.out[srcStart+k]
				}
			}
			d.pos += run
			d.state = stateStart
			continue
		}
	}

	if d.pos == len(d.out) {
		d.state = stateInit
		return true, nil, nil
	}
	return false, nil, nil
}

// Result returns the fully decoded message. It is only meaningful
// immediately after a Feed call has returned complete=true, and before
// any subsequent Feed call.
func (d *Decompressor) Result() []byte {
	return d.out
}
