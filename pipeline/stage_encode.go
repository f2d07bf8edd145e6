package pipeline

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

// encodeLoop drains FilteredQueue, routes each frame to its track's
// Encoder, and publishes every resulting packet to the Router.
func (p *Pipeline) encodeLoop() {
	for {
		frame, ok := p.filtered.Pop()
		if !ok {
			break
		}
		p.handleFilteredFrame(frame)
	}
	close(p.encodeDone)
}

func (p *Pipeline) handleFilteredFrame(frame *media.Frame) {
	enc, ok := p.registry.encoder(frame.TrackID)
	if !ok {
		framesDropped.WithLabelValues(p.name, trackLabel(frame.TrackID), "no-encoder").Inc()
		return
	}

	enc.Send(frame)
	for {
		outcome, pkt := enc.Receive()
		switch outcome {
		case codec.NoData:
			return
		case codec.DataReady:
			p.publish(pkt)
			packetsEncoded.WithLabelValues(p.name, trackLabel(frame.TrackID)).Inc()
		default:
			p.log.Warn("encode error", "error", &CodecError{Stage: "encode", TrackID: frame.TrackID, Outcome: outcome})
			return
		}
	}
}
