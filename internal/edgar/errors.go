package edgar

import "errors"

// ErrIndexUnavailable reports that no daily index is published for a single
// probed date. It is benign: the date resolver consumes it and steps back a
// day. Anything else that fails an index fetch is a transport error and is
// fatal for the run.
var ErrIndexUnavailable = errors.New("daily index not published")

// ErrNoAvailableIndex reports that the look-back window was exhausted
// without finding a published daily index. No partial report is produced.
var ErrNoAvailableIndex = errors.New("no daily index found within look-back window")
