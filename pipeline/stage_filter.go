package pipeline

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

// filterLoop drains DecodedQueue, routes each frame to its track's
// Filter, and forwards every conformed frame to FilteredQueue. A frame
// whose track has no Filter yet is dropped, since no format-change has
// occurred for that track.
func (p *Pipeline) filterLoop() {
	for {
		frame, ok := p.decoded.Pop()
		if !ok {
			break
		}
		p.handleDecodedFrame(frame)
	}
	close(p.filterDone)
}

func (p *Pipeline) handleDecodedFrame(frame *media.Frame) {
	filt, ok := p.registry.filter(frame.TrackID)
	if !ok {
		framesDropped.WithLabelValues(p.name, trackLabel(frame.TrackID), "no-filter").Inc()
		return
	}

	filt.Send(frame)
	for {
		outcome, out := filt.Receive()
		switch outcome {
		case codec.NoData:
			return
		case codec.DataReady:
			p.filtered.Push(out)
			queueDepth.WithLabelValues(p.name, "filtered").Set(float64(p.filtered.Size()))
		default:
			p.log.Warn("filter error", "error", &CodecError{Stage: "filter", TrackID: frame.TrackID, Outcome: outcome})
			return
		}
	}
}
