// Package pipeline implements the per-stream three-stage transcoding
// pipeline: Decode, Filter, and Encode workers connected by non-blocking
// hand-off queues, coordinated through a per-track registry of codec
// instances and a format-change protocol that lets the decoder
// reconfigure downstream filters the moment it discovers true stream
// geometry.
package pipeline

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
	"github.com/zsiec/transcode/queue"
	"github.com/zsiec/transcode/swcodec"
)

const (
	defaultQueueCapacity = 64
	diagnosticInterval   = 300
)

// Pipeline bridges a single stream's ingress packets and a Router. Packets
// pushed in are decoded, conformed to a target format, re-encoded, and
// published to the router, unidirectionally and without a back-edge.
type Pipeline struct {
	log    *slog.Logger
	router Router
	txCtx  *codec.TranscodeContext

	name  string
	input *media.StreamDescriptor

	outputMu sync.RWMutex
	output   *media.StreamDescriptor

	registry *trackRegistry

	ingress  *queue.Queue[*media.Packet]
	decoded  *queue.Queue[*media.Frame]
	filtered *queue.Queue[*media.Frame]

	decodedFrames atomic.Uint64
	killed        atomic.Bool
	stopOnce      sync.Once
	group         *errgroup.Group

	decodeDone chan struct{}
	filterDone chan struct{}
	encodeDone chan struct{}
}

// New builds decoders for every input track, a TranscodeContext (txCtx, or
// codec.DefaultProfile() if nil), an output StreamDescriptor restricted to
// Video/Audio input tracks, and an Encoder for each output track, then
// spawns the three stage workers. Construction is the only operation that
// returns an error; once New succeeds the pipeline runs until Stop.
func New(input *media.StreamDescriptor, router Router, txCtx *codec.TranscodeContext) (*Pipeline, error) {
	if len(input.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	if router == nil {
		return nil, fmt.Errorf("pipeline: %w: router is nil", ErrSpawnFailed)
	}
	if txCtx == nil {
		txCtx = codec.DefaultProfile()
	}

	p := &Pipeline{
		log:        slog.With("component", "pipeline", "stream", input.Name),
		router:     router,
		txCtx:      txCtx,
		name:       input.Name,
		input:      input,
		registry:   newTrackRegistry(),
		ingress:    queue.New[*media.Packet](defaultQueueCapacity),
		decoded:    queue.New[*media.Frame](defaultQueueCapacity),
		filtered:   queue.New[*media.Frame](defaultQueueCapacity),
		decodeDone: make(chan struct{}),
		filterDone: make(chan struct{}),
		encodeDone: make(chan struct{}),
	}

	for id, track := range input.Tracks {
		dec, err := swcodec.NewDecoder(id, track.CodecID)
		if err != nil {
			p.log.Warn("no decoder for input track, its packets will be dropped", "track", id, "error", err)
			continue
		}
		p.registry.setDecoder(id, dec)
	}

	output := input.Clone(input.Name + "_o")
	for id, track := range output.Tracks {
		if track.Kind != media.KindVideo && track.Kind != media.KindAudio {
			delete(output.Tracks, id)
		}
	}
	p.output = output

	for id, track := range output.Tracks {
		enc, err := swcodec.NewEncoder(track.Kind, txCtx)
		if err != nil {
			p.log.Warn("no encoder for output track", "track", id, "error", err)
			continue
		}
		p.registry.setEncoder(id, enc)
	}

	g := &errgroup.Group{}
	g.Go(func() error { p.decodeLoop(); return nil })
	g.Go(func() error { p.filterLoop(); return nil })
	g.Go(func() error { p.encodeLoop(); return nil })
	p.group = g

	return p, nil
}

// Push hands a compressed packet to the pipeline for transcoding. It never
// blocks and always returns true; delivery is best-effort past this point
// (a track with no Decoder silently drops its packets).
func (p *Pipeline) Push(pkt *media.Packet) bool {
	p.ingress.Push(pkt)
	return true
}

// GetStreamInfo returns the read-only input StreamDescriptor the pipeline
// was constructed with.
func (p *Pipeline) GetStreamInfo() *media.StreamDescriptor {
	return p.input
}

// GetBufferCount returns the current IngressQueue length. It is a
// diagnostic only; a stuck codec manifests as sustained growth here.
func (p *Pipeline) GetBufferCount() int {
	return p.ingress.Size()
}

// Stop performs an ordered shutdown: abort IngressQueue, join DecodeStage,
// abort DecodedQueue, join FilterStage, abort FilteredQueue, join
// EncodeStage. Each downstream queue stays alive while its upstream
// worker drains, so no in-flight frame is leaked mid-transit, but every
// worker is guaranteed to wake and exit in bounded time. Stop is
// idempotent.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		p.killed.Store(true)
		p.ingress.Abort()
		<-p.decodeDone
		p.decoded.Abort()
		<-p.filterDone
		p.filtered.Abort()
		<-p.encodeDone
		_ = p.group.Wait()
	})
}

// announceStream and withdrawStream call the router's create/delete-stream
// hooks while holding a read lock on the output descriptor, since
// DecodeStage may still be resizing its track map via updateOutputTrack on
// a later format change.
func (p *Pipeline) announceStream() {
	p.outputMu.RLock()
	defer p.outputMu.RUnlock()
	p.router.CreateStream(p.output)
}

func (p *Pipeline) withdrawStream() {
	p.outputMu.RLock()
	defer p.outputMu.RUnlock()
	p.router.DeleteStream(p.output)
}

// publish calls router.SendFrame while holding a read lock on the output
// descriptor, for the same reason as announceStream.
func (p *Pipeline) publish(pkt *media.Packet) {
	p.outputMu.RLock()
	defer p.outputMu.RUnlock()
	p.router.SendFrame(p.output, pkt)
}

// updateOutputTrack installs the observed MediaTrack for id into the
// output descriptor. Called only by DecodeStage, on format change.
func (p *Pipeline) updateOutputTrack(id int, track media.Track) {
	p.outputMu.Lock()
	defer p.outputMu.Unlock()
	p.output.Tracks[id] = track
}
