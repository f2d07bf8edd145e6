package pipeline

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
	"github.com/zsiec/transcode/swcodec"
)

// decodeLoop drains IngressQueue, routes each packet to its track's
// Decoder, and forwards every produced frame to DecodedQueue. It
// announces the output stream once on entry and withdraws it once on
// exit, regardless of how many packets it processed in between.
func (p *Pipeline) decodeLoop() {
	p.announceStream()

	for {
		pkt, ok := p.ingress.Pop()
		if !ok {
			break
		}
		p.handlePacket(pkt)
	}

	p.withdrawStream()
	close(p.decodeDone)
}

func (p *Pipeline) handlePacket(pkt *media.Packet) {
	dec, ok := p.registry.decoder(pkt.TrackID)
	if !ok {
		p.log.Debug("no decoder for track, dropping packet", "track", pkt.TrackID)
		framesDropped.WithLabelValues(p.name, trackLabel(pkt.TrackID), "no-decoder").Inc()
		return
	}

	dec.Send(pkt)
	for {
		outcome, frame := dec.Receive()
		switch outcome {
		case codec.NoData:
			return
		case codec.FormatChanged:
			p.handleFormatChange(frame)
			p.forwardDecoded(frame)
		case codec.DataReady:
			p.forwardDecoded(frame)
		default:
			p.log.Warn("decode error", "error", &CodecError{Stage: "decode", TrackID: pkt.TrackID, Outcome: outcome})
			return
		}
	}
}

// handleFormatChange updates the output descriptor's MediaTrack for
// frame.TrackID and (re)creates the Filter for that track from the
// updated track and the pipeline's TranscodeContext, before the caller
// forwards the accompanying frame. The Decoder and Encoder are never
// recreated here.
func (p *Pipeline) handleFormatChange(frame *media.Frame) {
	track := p.observedTrack(frame)
	p.updateOutputTrack(frame.TrackID, track)

	filt, err := swcodec.NewFilter(frame.Kind, track, p.txCtx)
	if err != nil {
		p.log.Warn("failed to build filter on format change", "track", frame.TrackID, "error", err)
		return
	}
	p.registry.setFilter(frame.TrackID, filt)
	formatChangesTotal.WithLabelValues(p.name, trackLabel(frame.TrackID)).Inc()
	p.log.Info("format changed", "track", track.String())
}

// observedTrack builds the MediaTrack a format-change event installs into
// the output descriptor: the input track's identity and codec id, with
// geometry/format replaced by what the decoder just observed, and the
// timebase normalized to 1/1000 per the format-change protocol.
func (p *Pipeline) observedTrack(frame *media.Frame) media.Track {
	track := p.input.Tracks[frame.TrackID]
	track.ID = frame.TrackID
	track.Kind = frame.Kind
	track.Timebase = media.Millisecond

	switch frame.Kind {
	case media.KindVideo:
		track.Width = frame.Width
		track.Height = frame.Height
	case media.KindAudio:
		track.SampleRate = frame.SampleRate
		track.SampleFmt = frame.SampleFmt
		track.ChannelLayout = frame.ChannelLayout
	}
	return track
}

// forwardDecoded pushes a decoded frame to DecodedQueue, dropping it if
// its kind is unsupported, and periodically logs queue depths.
func (p *Pipeline) forwardDecoded(frame *media.Frame) {
	if frame.Kind != media.KindVideo && frame.Kind != media.KindAudio {
		framesDropped.WithLabelValues(p.name, trackLabel(frame.TrackID), "unsupported-kind").Inc()
		return
	}

	p.decoded.Push(frame)
	framesDecoded.WithLabelValues(p.name, trackLabel(frame.TrackID)).Inc()
	queueDepth.WithLabelValues(p.name, "decoded").Set(float64(p.decoded.Size()))

	if n := p.decodedFrames.Add(1); n%diagnosticInterval == 0 {
		p.log.Info("queue depths",
			"ingress", p.ingress.Size(),
			"decoded", p.decoded.Size(),
			"filtered", p.filtered.Size(),
		)
	}
}
