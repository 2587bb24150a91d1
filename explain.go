package vlz

import (
	"fmt"
	"strings"

	"github.com/vlzpress/vlzpress/internal/vlq"
)

// Explain decodes a compressed message into a human-readable trace of its
// packets, writing literal runs as quoted text and back-references as
// <run,offset> symbols. It is a diagnostic aid only: a text rendering of
// this module's own packet stream, not a competing encoding or an attempt
// to describe any other codec's format.
func Explain(compressed []byte) (string, error) {
	var dec vlq.Decoder
	size, n, done := dec.Decode(compressed)
	if !done {
		return "", fmt.Errorf("vlz: truncated header")
	}
	i := n

	var sb strings.Builder
	fmt.Fprintf(&sb, "length=%d\n", size)

	var produced uint64
	for produced < size {
		if i >= len(compressed) {
			return "", fmt.Errorf("vlz: truncated packet stream")
		}
		msg, consumed, done := dec.Decode(compressed[i:])
		if !done {
			return "", fmt.Errorf("vlz: truncated packet header")
		}
		i += consumed

		if msg&1 == 1 {
			length := msg >> 1
			if i+int(length) > len(compressed) {
				return "", fmt.Errorf("vlz: truncated literal")
			}
			fmt.Fprintf(&sb, "literal %q\n", compressed[i:i+int(length)])
			i += int(length)
			produced += length
			continue
		}

		m := msg >> 1
		shortRun := m & 0xF
		var run uint64
		if shortRun != 0 {
			run = shortRun
		} else {
			biased, consumed, done := dec.Decode(compressed[i:])
			if !done {
				return "", fmt.Errorf("vlz: truncated long back-reference")
			}
			i += consumed
			run = biased
		}
		offset := m >> 4
		fmt.Fprintf(&sb, "backref <%d,%d>\n", run+3, offset)
		produced += run + 3
	}

	return sb.String(), nil
}
