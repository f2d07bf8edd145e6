package codec

import (
	"github.com/zsiec/transcode/codecid"
	"github.com/zsiec/transcode/media"
)

// TranscodeContext is the immutable-after-construction target-format
// specification shared by every Filter and Encoder in a pipeline. One
// instance per pipeline.
type TranscodeContext struct {
	Video VideoTarget
	Audio AudioTarget
}

// VideoTarget is the target format for video tracks.
type VideoTarget struct {
	CodecID   codecid.ID
	Bitrate   int
	Width     int
	Height    int
	FrameRate float64
	GOP       int
	Timebase  media.Rational
	PixelFmt  string
}

// AudioTarget is the target format for audio tracks.
type AudioTarget struct {
	CodecID       codecid.ID
	Bitrate       int
	SampleRate    int
	ChannelLayout media.ChannelLayout
	SampleFmt     string
	Timebase      media.Rational
}

// microTimebase is the 1/1,000,000 timebase the reference profile
// constructs encoders against.
var microTimebase = media.Rational{Num: 1, Den: 1_000_000}

// DefaultProfile returns the reference transcoding profile: VP8 5Mb/s
// 480x320@30fps GOP 30, and Opus 64kb/s 48kHz stereo S16, both on a
// 1/1,000,000 timebase. A production deployment is expected to source
// these from configuration but must default to this profile.
func DefaultProfile() *TranscodeContext {
	return &TranscodeContext{
		Video: VideoTarget{
			CodecID:   codecid.VP8,
			Bitrate:   5_000_000,
			Width:     480,
			Height:    320,
			FrameRate: 30,
			GOP:       30,
			Timebase:  microTimebase,
			PixelFmt:  "yuv420p",
		},
		Audio: AudioTarget{
			CodecID:       codecid.Opus,
			Bitrate:       64_000,
			SampleRate:    48_000,
			ChannelLayout: media.Stereo,
			SampleFmt:     "s16",
			Timebase:      microTimebase,
		},
	}
}
