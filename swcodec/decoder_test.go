package swcodec

import (
	"testing"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

func pkt(trackID int, pts int64, payload []byte) *media.Packet {
	return &media.Packet{TrackID: trackID, PTS: pts, Payload: payload}
}

func vp8Keyframe(w, h int) []byte {
	payload := make([]byte, 10)
	payload[0] = 0x00 // key frame
	payload[3] = 0x9d
	payload[4] = 0x01
	payload[5] = 0x2a
	payload[6] = byte(w & 0xff)
	payload[7] = byte((w >> 8) & 0x3f)
	payload[8] = byte(h & 0xff)
	payload[9] = byte((h >> 8) & 0x3f)
	return payload
}

func TestVideoDecoderFormatChangeOnFirstFrame(t *testing.T) {
	d := newVideoDecoder(1, false)
	d.Send(pkt(1, 0, vp8Keyframe(640, 480)))
	outcome, frame := d.Receive()
	if outcome != codec.FormatChanged {
		t.Fatalf("first frame outcome: got %v, want FormatChanged", outcome)
	}
	if frame.Width != 640 || frame.Height != 480 {
		t.Errorf("geometry: got %dx%d, want 640x480", frame.Width, frame.Height)
	}
}

func TestVideoDecoderFormatChangeOnResize(t *testing.T) {
	d := newVideoDecoder(1, false)
	d.Send(pkt(1, 0, vp8Keyframe(640, 480)))
	d.Receive()

	d.Send(pkt(1, 1, vp8Keyframe(640, 480)))
	outcome, _ := d.Receive()
	if outcome != codec.DataReady {
		t.Fatalf("unchanged geometry outcome: got %v, want DataReady", outcome)
	}

	d.Send(pkt(1, 2, vp8Keyframe(1280, 720)))
	outcome, frame := d.Receive()
	if outcome != codec.FormatChanged {
		t.Fatalf("resize outcome: got %v, want FormatChanged", outcome)
	}
	if frame.Width != 1280 || frame.Height != 720 {
		t.Errorf("geometry: got %dx%d, want 1280x720", frame.Width, frame.Height)
	}
}

func TestAudioDecoderChannelsFromTOC(t *testing.T) {
	d := newAudioDecoder(2)
	mono := []byte{0x00, 1, 2, 3, 4}
	d.Send(pkt(2, 0, mono))
	outcome, frame := d.Receive()
	if outcome != codec.FormatChanged {
		t.Fatalf("first frame outcome: got %v, want FormatChanged", outcome)
	}
	if frame.ChannelLayout.Channels != 1 {
		t.Errorf("channels: got %d, want 1", frame.ChannelLayout.Channels)
	}
}

func TestReceiveWithoutSendReturnsNoData(t *testing.T) {
	d := newVideoDecoder(1, false)
	outcome, frame := d.Receive()
	if outcome != codec.NoData || frame != nil {
		t.Errorf("got (%v, %v), want (NoData, nil)", outcome, frame)
	}
}
