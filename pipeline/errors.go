package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors of the pipeline package. New, the only operation that
// returns errors to the caller, returns ErrNoTracks or ErrSpawnFailed;
// ErrUnsupportedKind is not returned by any function in this package.
var (
	ErrNoTracks        = errors.New("pipeline: input descriptor has no tracks")
	ErrSpawnFailed     = errors.New("pipeline: failed to spawn stage workers")
	ErrUnsupportedKind = errors.New("pipeline: unsupported media kind")
)

// CodecError wraps a per-call codec failure that is unrecoverable for that
// packet but not for the stream. Stages never propagate these to the
// caller; they are constructed only for logging context.
type CodecError struct {
	Stage   string
	TrackID int
	Outcome fmt.Stringer
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("pipeline: %s track %d: %s", e.Stage, e.TrackID, e.Outcome)
}
