package pipeline

import (
	"sync"

	"github.com/zsiec/transcode/codec"
)

// trackEntry holds the codec instances for one track. Decoder is set at
// construction for every input track with a supported codec and never
// replaced. Filter is absent
// until the first format-change for that track, then present (and
// possibly replaced) for the rest of the stream's life. Encoder is set at
// construction for every supported output track and never replaced.
type trackEntry struct {
	decoder codec.Decoder
	filter  codec.Filter
	encoder codec.Encoder
}

// trackRegistry is the small, mutable per-track map written at
// construction and on format change, read on every frame. A single mutex
// is sufficient: it is uncontended in steady state because writes only
// happen at startup and on the rare format-change event.
type trackRegistry struct {
	mu      sync.Mutex
	entries map[int]*trackEntry
}

func newTrackRegistry() *trackRegistry {
	return &trackRegistry{entries: make(map[int]*trackEntry)}
}

func (r *trackRegistry) setDecoder(trackID int, d codec.Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entry(trackID).decoder = d
}

func (r *trackRegistry) setEncoder(trackID int, e codec.Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entry(trackID).encoder = e
}

// setFilter replaces the Filter for trackID, returning the previous one
// (nil if none) so the caller can decide whether there's cleanup to do.
// Replacing a Filter is the only mutation the format-change protocol
// performs beyond the first assignment.
func (r *trackRegistry) setFilter(trackID int, f codec.Filter) (previous codec.Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.entry(trackID)
	previous = e.filter
	e.filter = f
	return previous
}

func (r *trackRegistry) decoder(trackID int) (codec.Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[trackID]
	if !ok || e.decoder == nil {
		return nil, false
	}
	return e.decoder, true
}

func (r *trackRegistry) filter(trackID int) (codec.Filter, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[trackID]
	if !ok || e.filter == nil {
		return nil, false
	}
	return e.filter, true
}

func (r *trackRegistry) encoder(trackID int) (codec.Encoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[trackID]
	if !ok || e.encoder == nil {
		return nil, false
	}
	return e.encoder, true
}

// entry returns the entry for trackID, creating it if absent. Callers
// must hold r.mu.
func (r *trackRegistry) entry(trackID int) *trackEntry {
	e, ok := r.entries[trackID]
	if !ok {
		e = &trackEntry{}
		r.entries[trackID] = e
	}
	return e
}
