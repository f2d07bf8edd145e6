package pipeline

import (
	"testing"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
)

type stubDecoder struct{}

func (stubDecoder) Send(*media.Packet)                    {}
func (stubDecoder) Receive() (codec.Outcome, *media.Frame) { return codec.NoData, nil }

type stubFilter struct{ id int }

func (stubFilter) Send(*media.Frame)                      {}
func (stubFilter) Receive() (codec.Outcome, *media.Frame) { return codec.NoData, nil }

func TestRegistryDecoderAbsentByDefault(t *testing.T) {
	r := newTrackRegistry()
	if _, ok := r.decoder(1); ok {
		t.Error("expected no decoder before setDecoder")
	}
}

func TestRegistrySetAndGetDecoder(t *testing.T) {
	r := newTrackRegistry()
	d := stubDecoder{}
	r.setDecoder(1, d)

	got, ok := r.decoder(1)
	if !ok || got != d {
		t.Errorf("decoder(1): got (%v, %v), want (%v, true)", got, ok, d)
	}
}

func TestRegistryFilterAbsentUntilSet(t *testing.T) {
	r := newTrackRegistry()
	if _, ok := r.filter(1); ok {
		t.Error("expected no filter before the first format change")
	}
}

func TestRegistrySetFilterReturnsPrevious(t *testing.T) {
	r := newTrackRegistry()
	first := stubFilter{id: 1}
	second := stubFilter{id: 2}

	if prev := r.setFilter(1, first); prev != nil {
		t.Errorf("first setFilter: got previous %v, want nil", prev)
	}
	prev := r.setFilter(1, second)
	if prev != first {
		t.Errorf("second setFilter: got previous %v, want %v", prev, first)
	}

	got, ok := r.filter(1)
	if !ok || got != second {
		t.Errorf("filter(1): got (%v, %v), want (%v, true)", got, ok, second)
	}
}

func TestRegistryTracksAreIndependent(t *testing.T) {
	r := newTrackRegistry()
	r.setDecoder(1, stubDecoder{})

	if _, ok := r.decoder(2); ok {
		t.Error("expected track 2 to have no decoder")
	}
}
