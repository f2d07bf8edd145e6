// Package router provides an in-memory reference implementation of
// pipeline.Router, recording stream lifecycle events and published
// packets for tests. A production
// deployment wires the pipeline to its own media router instead.
package router

import (
	"sync"

	"github.com/zsiec/transcode/media"
)

// Recorder implements pipeline.Router by recording every call it
// receives. It is safe for concurrent use by the three pipeline workers.
type Recorder struct {
	mu sync.Mutex

	created int
	deleted int
	packets []*media.Packet
	infos   []*media.StreamDescriptor
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// CreateStream records that the stream was announced.
func (r *Recorder) CreateStream(output *media.StreamDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

// DeleteStream records that the stream was withdrawn.
func (r *Recorder) DeleteStream(output *media.StreamDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted++
}

// SendFrame records a published packet and the descriptor it was
// published against at the time.
func (r *Recorder) SendFrame(output *media.StreamDescriptor, pkt *media.Packet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packets = append(r.packets, pkt)
	r.infos = append(r.infos, output)
}

// Counts returns the number of CreateStream and DeleteStream calls
// observed so far.
func (r *Recorder) Counts() (created, deleted int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created, r.deleted
}

// Packets returns a snapshot of every packet published so far, in
// publication order.
func (r *Recorder) Packets() []*media.Packet {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*media.Packet, len(r.packets))
	copy(out, r.packets)
	return out
}

// PacketsForTrack filters Packets to a single track id, preserving order.
func (r *Recorder) PacketsForTrack(trackID int) []*media.Packet {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*media.Packet
	for _, pkt := range r.packets {
		if pkt.TrackID == trackID {
			out = append(out, pkt)
		}
	}
	return out
}

// LastStreamInfo returns the StreamDescriptor passed to the most recent
// SendFrame call, or nil if none has happened yet.
func (r *Recorder) LastStreamInfo() *media.StreamDescriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.infos) == 0 {
		return nil
	}
	return r.infos[len(r.infos)-1]
}
