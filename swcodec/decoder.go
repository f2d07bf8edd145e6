package swcodec

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

// videoDecoder is the reference software decoder for VP8 and H264: it
// wraps each packet's payload as a single-plane frame and discovers
// geometry from the real bitstream headers, reporting FormatChanged the
// first time geometry is known and again whenever it changes.
type videoDecoder struct {
	trackID  int
	isH264   bool
	lastW    int
	lastH    int
	have     bool
	outcome  codec.Outcome
	frame    *media.Frame
	pixelFmt string
}

func newVideoDecoder(trackID int, isH264 bool) *videoDecoder {
	return &videoDecoder{trackID: trackID, isH264: isH264, pixelFmt: "yuv420p"}
}

func (d *videoDecoder) Send(pkt *media.Packet) {
	var w, h int
	var found bool
	if d.isH264 {
		if sps, ok := findH264SPS(pkt.Payload); ok {
			w, h, found = h264SPSSize(sps)
		}
	} else {
		w, h, found = vp8KeyframeSize(pkt.Payload)
	}

	changed := false
	if found && (w != d.lastW || h != d.lastH) {
		d.lastW, d.lastH = w, h
		changed = true
	}

	outcome := codec.DataReady
	if changed || !d.have {
		outcome = codec.FormatChanged
		d.have = true
	}

	d.outcome = outcome
	d.frame = &media.Frame{
		TrackID:  pkt.TrackID,
		PTS:      pkt.PTS,
		Kind:     media.KindVideo,
		Width:    d.lastW,
		Height:   d.lastH,
		PixelFmt: d.pixelFmt,
		Planes:   []media.Plane{{Data: pkt.Payload}},
	}
}

func (d *videoDecoder) Receive() (codec.Outcome, *media.Frame) {
	if d.frame == nil {
		return codec.NoData, nil
	}
	outcome, frame := d.outcome, d.frame
	d.frame = nil
	return outcome, frame
}

// audioDecoder is the reference software decoder for Opus: it wraps each
// packet's payload as PCM-equivalent samples and discovers channel count
// from the TOC byte, assuming a fixed 48kHz internal rate per RFC 6716.
type audioDecoder struct {
	trackID      int
	lastChannels int
	have         bool
	outcome      codec.Outcome
	frame        *media.Frame
}

func newAudioDecoder(trackID int) *audioDecoder {
	return &audioDecoder{trackID: trackID}
}

func (d *audioDecoder) Send(pkt *media.Packet) {
	channels, found := opusChannels(pkt.Payload)
	if !found {
		channels = d.lastChannels
	}

	changed := found && channels != d.lastChannels
	if found {
		d.lastChannels = channels
	}

	outcome := codec.DataReady
	if changed || !d.have {
		outcome = codec.FormatChanged
		d.have = true
	}

	layout := media.Mono
	if d.lastChannels == 2 {
		layout = media.Stereo
	}

	d.outcome = outcome
	d.frame = &media.Frame{
		TrackID:       pkt.TrackID,
		PTS:           pkt.PTS,
		Kind:          media.KindAudio,
		SampleFmt:     "s16",
		SampleRate:    48_000,
		ChannelLayout: layout,
		NumSamples:    len(pkt.Payload) / (2 * layout.Channels),
		BytesPerSamp:  2,
		Planes:        []media.Plane{{Data: pkt.Payload}},
	}
}

func (d *audioDecoder) Receive() (codec.Outcome, *media.Frame) {
	if d.frame == nil {
		return codec.NoData, nil
	}
	outcome, frame := d.outcome, d.frame
	d.frame = nil
	return outcome, frame
}
