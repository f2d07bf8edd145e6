// Package codec defines the Decoder/Filter/Encoder capability contracts:
// each is a {Send, Receive} pair, selected per track by a factory keyed on
// codec id. Concrete implementations live in
// sibling packages (swcodec ships the reference software backend); codec
// carries only the shared contract so stages never depend on a specific
// backend.
package codec

import "github.com/zsiec/transcode/media"

// Outcome is the three-valued (plus error subtypes) result of a Receive
// call. Error outcomes are negative; DataReady/FormatChanged/NoData are
// non-negative.
type Outcome int

const (
	ErrCodecInternal     Outcome = -4
	ErrResourceExhausted Outcome = -3
	ErrEndOfStream       Outcome = -2
	ErrInvalidInput      Outcome = -1
	NoData               Outcome = 0
	DataReady            Outcome = 1
	FormatChanged        Outcome = 2
)

// IsError reports whether the outcome is one of the negative-valued error
// subtypes.
func (o Outcome) IsError() bool { return o < NoData }

func (o Outcome) String() string {
	switch o {
	case ErrCodecInternal:
		return "codec-internal-error"
	case ErrResourceExhausted:
		return "resource-exhausted"
	case ErrEndOfStream:
		return "end-of-stream"
	case ErrInvalidInput:
		return "invalid-input"
	case NoData:
		return "no-data"
	case DataReady:
		return "data-ready"
	case FormatChanged:
		return "format-changed"
	default:
		return "unknown-outcome"
	}
}

// Decoder turns compressed packets into raw frames. Send transfers
// ownership of one packet; Receive must be polled repeatedly until it
// returns NoData or an error, since one Send can yield zero or more
// frames.
type Decoder interface {
	Send(pkt *media.Packet)
	Receive() (Outcome, *media.Frame)
}

// Filter reshapes a raw frame to a target geometry/format (video rescale
// or audio resample). It may buffer internally: one Send need not produce
// exactly one output frame.
type Filter interface {
	Send(frame *media.Frame)
	Receive() (Outcome, *media.Frame)
}

// Encoder turns raw frames into compressed packets. It may delay output
// (B-frames, rate-control lookahead); callers must keep submitting frames
// even when Receive has nothing ready.
type Encoder interface {
	Send(frame *media.Frame)
	Receive() (Outcome, *media.Packet)
}
