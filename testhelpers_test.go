package vlz

import "errors"

// errIncomplete is used internally by this package's tests when a single
// Feed call over a full, well-formed message unexpectedly fails to
// complete it.
var errIncomplete = errors.New("vlz: decode did not complete in one Feed call")
