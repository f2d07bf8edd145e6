// Package swcodec is the reference software codec backend: pure-Go
// Decoder/Filter/Encoder implementations selected by a factory keyed on
// codec id. It stands in for externally-collaborating codec libraries; a
// production deployment wires real decoder/encoder/rescaler bindings
// behind the same codec.Decoder/Filter/Encoder interfaces.
package swcodec

import (
	"fmt"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/codecid"
	"github.com/zsiec/transcode/media"
)

// NewDecoder builds the Decoder for one input track, keyed on its codec
// id. An unsupported codec id returns an error; pipeline.New logs it and
// leaves that track without a Decoder.
func NewDecoder(trackID int, id codecid.ID) (codec.Decoder, error) {
	switch id {
	case codecid.VP8:
		return newVideoDecoder(trackID, false), nil
	case codecid.H264:
		return newVideoDecoder(trackID, true), nil
	case codecid.Opus:
		return newAudioDecoder(trackID), nil
	default:
		return nil, fmt.Errorf("swcodec: unsupported decode codec %v", id)
	}
}

// NewFilter builds the Filter for a track's observed format, targeting
// the pipeline's TranscodeContext. Called on every format change: video
// tracks get a rescaler, audio tracks a resampler.
func NewFilter(kind media.Kind, from media.Track, ctx *codec.TranscodeContext) (codec.Filter, error) {
	switch kind {
	case media.KindVideo:
		return newVideoFilter(from, ctx.Video), nil
	case media.KindAudio:
		return newAudioFilter(from, ctx.Audio), nil
	default:
		return nil, fmt.Errorf("swcodec: unsupported filter kind %v", kind)
	}
}

// NewEncoder builds the Encoder for one output track, keyed on the
// TranscodeContext's target codec for that track's kind.
func NewEncoder(kind media.Kind, ctx *codec.TranscodeContext) (codec.Encoder, error) {
	switch kind {
	case media.KindVideo:
		return newVideoEncoder(ctx.Video), nil
	case media.KindAudio:
		return newAudioEncoder(ctx.Audio), nil
	default:
		return nil, fmt.Errorf("swcodec: unsupported encode kind %v", kind)
	}
}
