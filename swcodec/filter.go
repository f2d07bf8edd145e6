package swcodec

import (
	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

// rescalePTS converts a pts from one timebase to another: pts_out such
// that pts_out * to == pts_in * from, in seconds.
func rescalePTS(pts int64, from, to media.Rational) int64 {
	if from.Den == 0 || to.Num == 0 {
		return pts
	}
	return pts * from.Num * to.Den / (from.Den * to.Num)
}

// videoFilter is the reference rescaler: it relabels a frame's geometry
// and pixel format to the target and rescales pts into the target
// timebase. One Send produces exactly one buffered output frame.
type videoFilter struct {
	target  codec.VideoTarget
	fromTB  media.Rational
	pending *media.Frame
}

func newVideoFilter(from media.Track, target codec.VideoTarget) *videoFilter {
	return &videoFilter{target: target, fromTB: from.Timebase}
}

func (f *videoFilter) Send(frame *media.Frame) {
	f.pending = &media.Frame{
		TrackID:  frame.TrackID,
		PTS:      rescalePTS(frame.PTS, f.fromTB, f.target.Timebase),
		Kind:     media.KindVideo,
		Width:    f.target.Width,
		Height:   f.target.Height,
		PixelFmt: f.target.PixelFmt,
		Planes:   frame.Planes,
	}
}

func (f *videoFilter) Receive() (codec.Outcome, *media.Frame) {
	if f.pending == nil {
		return codec.NoData, nil
	}
	out := f.pending
	f.pending = nil
	return codec.DataReady, out
}

// audioFrameSamples is the fixed per-channel sample count the reference
// resampler emits, mirroring real resamplers that buffer to a fixed
// output frame size rather than passing input frames through 1:1.
const audioFrameSamples = 960

type audioChunk struct {
	pts   int64
	bytes int
}

// audioFilter is the reference resampler: it converts channel layout
// (mono<->stereo) and buffers converted bytes until a full target frame
// is available, rescaling pts into the target timebase.
type audioFilter struct {
	trackID int
	target  codec.AudioTarget
	fromTB  media.Rational
	buf     []byte
	pending []audioChunk
}

func newAudioFilter(from media.Track, target codec.AudioTarget) *audioFilter {
	return &audioFilter{trackID: from.ID, target: target, fromTB: from.Timebase}
}

func (f *audioFilter) Send(frame *media.Frame) {
	var src []byte
	if len(frame.Planes) > 0 {
		src = frame.Planes[0].Data
	}
	converted := convertChannels(src, frame.ChannelLayout.Channels, f.target.ChannelLayout.Channels)
	f.buf = append(f.buf, converted...)
	f.pending = append(f.pending, audioChunk{
		pts:   rescalePTS(frame.PTS, f.fromTB, f.target.Timebase),
		bytes: len(converted),
	})
}

func (f *audioFilter) Receive() (codec.Outcome, *media.Frame) {
	frameBytes := audioFrameSamples * f.target.ChannelLayout.Channels * 2
	if frameBytes == 0 || len(f.buf) < frameBytes {
		return codec.NoData, nil
	}
	outPTS := int64(0)
	if len(f.pending) > 0 {
		outPTS = f.pending[0].pts
	}

	data := make([]byte, frameBytes)
	copy(data, f.buf[:frameBytes])
	f.buf = f.buf[frameBytes:]

	consumed := frameBytes
	for len(f.pending) > 0 && consumed > 0 {
		if f.pending[0].bytes <= consumed {
			consumed -= f.pending[0].bytes
			f.pending = f.pending[1:]
			continue
		}
		f.pending[0].bytes -= consumed
		consumed = 0
	}

	return codec.DataReady, &media.Frame{
		TrackID:       f.trackID,
		PTS:           outPTS,
		Kind:          media.KindAudio,
		SampleFmt:     f.target.SampleFmt,
		SampleRate:    f.target.SampleRate,
		ChannelLayout: f.target.ChannelLayout,
		NumSamples:    audioFrameSamples,
		BytesPerSamp:  2,
		Planes:        []media.Plane{{Data: data}},
	}
}

// convertChannels upmixes mono to stereo by duplicating each sample, or
// downmixes stereo to mono by keeping the left channel. Any other
// src/dst combination is passed through unchanged as a best effort.
func convertChannels(data []byte, srcCh, dstCh int) []byte {
	if srcCh <= 0 {
		srcCh = 1
	}
	if dstCh <= 0 {
		dstCh = srcCh
	}
	if srcCh == dstCh {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}
	const bytesPerSample = 2
	if srcCh == 1 && dstCh == 2 {
		out := make([]byte, 0, len(data)*2)
		for i := 0; i+bytesPerSample <= len(data); i += bytesPerSample {
			out = append(out, data[i:i+bytesPerSample]...)
			out = append(out, data[i:i+bytesPerSample]...)
		}
		return out
	}
	if srcCh == 2 && dstCh == 1 {
		frame := bytesPerSample * srcCh
		out := make([]byte, 0, len(data)/2)
		for i := 0; i+frame <= len(data); i += frame {
			out = append(out, data[i:i+bytesPerSample]...)
		}
		return out
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
