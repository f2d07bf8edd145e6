package swcodec

import (
	"testing"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

func testVideoTarget() codec.VideoTarget {
	return codec.VideoTarget{Width: 480, Height: 320, PixelFmt: "yuv420p", Timebase: media.Rational{Num: 1, Den: 1_000_000}}
}

func testAudioTarget() codec.AudioTarget {
	return codec.AudioTarget{SampleRate: 48_000, ChannelLayout: media.Stereo, SampleFmt: "s16", Timebase: media.Rational{Num: 1, Den: 1_000_000}}
}

func TestVideoFilterRescalesGeometryAndPTS(t *testing.T) {
	from := media.Track{Timebase: media.Millisecond}
	f := newVideoFilter(from, testVideoTarget())
	f.Send(&media.Frame{PTS: 100, Width: 1280, Height: 720, Planes: []media.Plane{{Data: []byte{1, 2, 3}}}})

	outcome, frame := f.Receive()
	if outcome != codec.DataReady {
		t.Fatalf("got %v, want DataReady", outcome)
	}
	if frame.Width != 480 || frame.Height != 320 {
		t.Errorf("geometry: got %dx%d, want 480x320", frame.Width, frame.Height)
	}
	if want := int64(100_000); frame.PTS != want {
		t.Errorf("pts: got %d, want %d", frame.PTS, want)
	}

	if _, f2 := f.Receive(); f2 != nil {
		t.Error("second Receive without Send should be nil")
	}
}

func TestAudioFilterBuffersToFixedFrameSize(t *testing.T) {
	from := media.Track{Timebase: media.Millisecond}
	f := newAudioFilter(from, testAudioTarget())

	monoSamples := make([]byte, audioFrameSamples*2) // mono s16, exactly one target frame's worth of samples
	f.Send(&media.Frame{PTS: 0, ChannelLayout: media.Mono, Planes: []media.Plane{{Data: monoSamples}}})

	outcome, frame := f.Receive()
	if outcome != codec.DataReady {
		t.Fatalf("got %v, want DataReady", outcome)
	}
	if frame.ChannelLayout.Channels != 2 {
		t.Errorf("channels: got %d, want 2 (upmixed)", frame.ChannelLayout.Channels)
	}
	if frame.NumSamples != audioFrameSamples {
		t.Errorf("samples: got %d, want %d", frame.NumSamples, audioFrameSamples)
	}
	if len(frame.Planes[0].Data) != audioFrameSamples*2*2 {
		t.Errorf("output bytes: got %d, want %d", len(frame.Planes[0].Data), audioFrameSamples*2*2)
	}
}

func TestAudioFilterPropagatesTrackID(t *testing.T) {
	from := media.Track{ID: 7, Timebase: media.Millisecond}
	f := newAudioFilter(from, testAudioTarget())

	samples := make([]byte, audioFrameSamples*2)
	f.Send(&media.Frame{TrackID: 7, ChannelLayout: media.Mono, Planes: []media.Plane{{Data: samples}}})

	_, frame := f.Receive()
	if frame.TrackID != 7 {
		t.Errorf("track id: got %d, want 7", frame.TrackID)
	}
}

func TestAudioFilterNoDataUntilFrameFull(t *testing.T) {
	from := media.Track{Timebase: media.Millisecond}
	f := newAudioFilter(from, testAudioTarget())

	small := make([]byte, 10)
	f.Send(&media.Frame{ChannelLayout: media.Mono, Planes: []media.Plane{{Data: small}}})

	if outcome, _ := f.Receive(); outcome != codec.NoData {
		t.Errorf("got %v, want NoData", outcome)
	}
}

func TestAudioFilterOutputPTSMonotonic(t *testing.T) {
	from := media.Track{Timebase: media.Millisecond}
	f := newAudioFilter(from, testAudioTarget())

	frameSamples := make([]byte, audioFrameSamples*2)
	var lastPTS int64 = -1
	for i := int64(0); i < 5; i++ {
		f.Send(&media.Frame{PTS: i * 20, ChannelLayout: media.Mono, Planes: []media.Plane{{Data: frameSamples}}})
		outcome, frame := f.Receive()
		if outcome != codec.DataReady {
			t.Fatalf("iteration %d: got %v, want DataReady", i, outcome)
		}
		if frame.PTS < lastPTS {
			t.Errorf("iteration %d: pts went backwards: %d < %d", i, frame.PTS, lastPTS)
		}
		lastPTS = frame.PTS
	}
}
