package swcodec

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/codecid"
	"github.com/zsiec/transcode/media"
)

// videoEncoder is the reference VP8 encoder: it repackages a conformed
// frame's planes as a compressed packet, marking every GOP-th frame as a
// keyframe per the target GOP length.
type videoEncoder struct {
	target  codec.VideoTarget
	gopPos  int
	pending *media.Packet
}

func newVideoEncoder(target codec.VideoTarget) *videoEncoder {
	return &videoEncoder{target: target}
}

func (e *videoEncoder) Send(frame *media.Frame) {
	keyframe := e.gopPos == 0
	e.gopPos++
	if e.target.GOP > 0 && e.gopPos >= e.target.GOP {
		e.gopPos = 0
	}

	flags := media.Flags(0)
	if keyframe {
		flags |= media.FlagKeyframe
	}

	e.pending = &media.Packet{
		TrackID: frame.TrackID,
		PTS:     frame.PTS,
		Payload: concatPlanes(frame.Planes),
		CodecID: codecid.VP8,
		Flags:   flags,
	}
}

func (e *videoEncoder) Receive() (codec.Outcome, *media.Packet) {
	if e.pending == nil {
		return codec.NoData, nil
	}
	pkt := e.pending
	e.pending = nil
	return codec.DataReady, pkt
}

// audioEncoder is the reference Opus encoder: it repackages a conformed
// frame's samples as a compressed packet. Every Opus packet is
// independently decodable, so every packet is marked as a keyframe.
type audioEncoder struct {
	target  codec.AudioTarget
	pending *media.Packet
}

func newAudioEncoder(target codec.AudioTarget) *audioEncoder {
	return &audioEncoder{target: target}
}

func (e *audioEncoder) Send(frame *media.Frame) {
	e.pending = &media.Packet{
		TrackID: frame.TrackID,
		PTS:     frame.PTS,
		Payload: concatPlanes(frame.Planes),
		CodecID: codecid.Opus,
		Flags:   media.FlagKeyframe,
	}
}

func (e *audioEncoder) Receive() (codec.Outcome, *media.Packet) {
	if e.pending == nil {
		return codec.NoData, nil
	}
	pkt := e.pending
	e.pending = nil
	return codec.DataReady, pkt
}

func concatPlanes(planes []media.Plane) []byte {
	n := 0
	for _, p := range planes {
		n += len(p.Data)
	}
	out := make([]byte, 0, n)
	for _, p := range planes {
		out = append(out, p.Data...)
	}
	return out
}
