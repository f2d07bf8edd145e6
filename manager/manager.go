// Package manager tracks the lifecycle of active transcoding pipelines,
// providing create/remove/list operations used by the surrounding server.
package manager

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/zsiec/transcode/codec"
	"github.com/zsiec/transcode/media"
	"github.com/zsiec/transcode/pipeline"
)

// ErrAlreadyExists is returned by Create when a pipeline with the given
// key is already running.
var ErrAlreadyExists = errors.New("manager: pipeline already exists")

// Manager supervises a set of live pipelines, one per stream key.
type Manager struct {
	log *slog.Logger

	mu        sync.RWMutex
	pipelines map[string]*pipeline.Pipeline
}

// New creates an empty Manager. If log is nil, slog.Default() is used.
func New(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		log:       log.With("component", "pipeline-manager"),
		pipelines: make(map[string]*pipeline.Pipeline),
	}
}

// Create builds and starts a pipeline for input, keyed by input.Name.
// It returns ErrAlreadyExists if a pipeline with that key is already
// running, or any error pipeline.New returns.
func (m *Manager) Create(input *media.StreamDescriptor, router pipeline.Router, txCtx *codec.TranscodeContext) (*pipeline.Pipeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pipelines[input.Name]; ok {
		m.log.Warn("pipeline already exists, rejecting duplicate", "key", input.Name)
		return nil, ErrAlreadyExists
	}

	p, err := pipeline.New(input, router, txCtx)
	if err != nil {
		return nil, err
	}

	m.pipelines[input.Name] = p
	m.log.Info("pipeline created", "key", input.Name)
	return p, nil
}

// Remove stops and removes the pipeline for key, if one exists.
func (m *Manager) Remove(key string) {
	m.mu.Lock()
	p, ok := m.pipelines[key]
	if ok {
		delete(m.pipelines, key)
	}
	m.mu.Unlock()

	if ok {
		p.Stop()
		m.log.Info("pipeline removed", "key", key)
	}
}

// Get returns the pipeline for key, if one exists.
func (m *Manager) Get(key string) (*pipeline.Pipeline, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pipelines[key]
	return p, ok
}

// List returns the keys of every currently running pipeline.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.pipelines))
	for k := range m.pipelines {
		keys = append(keys, k)
	}
	return keys
}
