// Package media defines the core packet, frame, and track types that flow
// through the transcode pipeline, from ingress through encode.
package media

import (
	"fmt"

	"github.com/zsiec/transcode/codecid"
)

// Kind identifies the media type carried by a track, packet, or frame.
type Kind int

// Supported media kinds. Any other value is treated as unsupported and
// dropped by the stages that encounter it.
const (
	KindUnsupported Kind = iota
	KindVideo
	KindAudio
)

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	default:
		return "unsupported"
	}
}

// Rational is a num/den pair expressing a timebase: one pts tick is
// Num/Den seconds.
type Rational struct {
	Num int64
	Den int64
}

// Millisecond is the normalized input timebase the format-change protocol
// installs on a track once its Decoder has observed true stream geometry.
var Millisecond = Rational{Num: 1, Den: 1000}

// Flags carried by a compressed packet.
type Flags uint8

const (
	FlagKeyframe Flags = 1 << iota
	FlagDiscontinuity
)

func (f Flags) Keyframe() bool      { return f&FlagKeyframe != 0 }
func (f Flags) Discontinuity() bool { return f&FlagDiscontinuity != 0 }

// Packet is a single compressed unit moving from ingress through decode.
// It is owned by exactly one queue or stage at a time; handing it to a
// queue or stage is a move, not a copy.
type Packet struct {
	TrackID  int
	PTS      int64
	Duration int64
	Payload  []byte
	CodecID  codecid.ID
	Flags    Flags
}

// Plane is one contiguous buffer within a Frame (e.g. a YUV plane, or the
// single interleaved buffer of a PCM audio frame).
type Plane struct {
	Data []byte
}

// Frame is a single uncompressed unit produced by a Decoder, optionally
// reshaped by a Filter, and consumed by an Encoder.
type Frame struct {
	TrackID int
	PTS     int64
	Kind    Kind
	Planes  []Plane

	// Video-specific.
	Width      int
	Height     int
	PixelFmt   string

	// Audio-specific.
	SampleFmt     string
	SampleRate    int
	ChannelLayout ChannelLayout
	NumSamples    int
	BytesPerSamp  int
}

// ChannelLayout describes the number and arrangement of audio channels.
// Only channel count is load-bearing for this pipeline; the name is kept
// for diagnostics.
type ChannelLayout struct {
	Channels int
	Name     string
}

var (
	Mono   = ChannelLayout{Channels: 1, Name: "mono"}
	Stereo = ChannelLayout{Channels: 2, Name: "stereo"}
)

// Track describes one elementary stream within a StreamDescriptor.
type Track struct {
	ID       int
	Kind     Kind
	CodecID  codecid.ID
	Timebase Rational

	// Video.
	Width     int
	Height    int
	FrameRate float64

	// Audio.
	SampleRate    int
	SampleFmt     string
	ChannelLayout ChannelLayout
}

func (t Track) String() string {
	if t.Kind == KindVideo {
		return fmt.Sprintf("track %d video %dx%d@%.2f", t.ID, t.Width, t.Height, t.FrameRate)
	}
	return fmt.Sprintf("track %d audio %dHz/%s", t.ID, t.SampleRate, t.ChannelLayout.Name)
}

// StreamDescriptor names a stream and maps track id to Track metadata. Two
// instances exist per pipeline: an input descriptor, passed in at
// construction and treated as read-only, and an output descriptor, built
// at startup and mutated only by the decode stage on format change.
type StreamDescriptor struct {
	Name   string
	Tracks map[int]Track
}

// NewStreamDescriptor creates a descriptor with an empty track map.
func NewStreamDescriptor(name string) *StreamDescriptor {
	return &StreamDescriptor{Name: name, Tracks: make(map[int]Track)}
}

// Clone returns a deep-enough copy (the track map is copied; Track values
// are themselves copied by value) suitable for building an output
// descriptor from an input one.
func (d *StreamDescriptor) Clone(name string) *StreamDescriptor {
	out := NewStreamDescriptor(name)
	for id, tr := range d.Tracks {
		out.Tracks[id] = tr
	}
	return out
}
