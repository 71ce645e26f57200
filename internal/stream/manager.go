// Package stream keeps a window of chunks resident around a moving observer.
package stream

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

// Stats is a snapshot of manager counters.
type Stats struct {
	Ticks          int
	Created        int
	Destroyed      int
	Resident       int
	Visible        int
	PendingLoads   int
	PendingUnloads int
}

// Manager owns the resident chunk map. Each coordinate moves through
// unloaded, queued for load, resident and queued for unload.
//
// Manager is not safe for concurrent use; Update is meant to be called once
// per tick from the host loop.
type Manager struct {
	builder  ChunkBuilder
	scene    Scene
	tunables Tunables
	log      *slog.Logger

	chunks map[gen.ChunkPos]*Chunk
	queues Queues
	force  bool

	ticks     int
	created   int
	destroyed int
}

// NewManager creates a Manager with no resident chunks.
func NewManager(builder ChunkBuilder, scene Scene, t Tunables, log *slog.Logger) (*Manager, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		builder:  builder,
		scene:    scene,
		tunables: t,
		log:      log,
		chunks:   make(map[gen.ChunkPos]*Chunk),
	}, nil
}

// Tunables returns the active tunables.
func (m *Manager) Tunables() Tunables { return m.tunables }

// SetTunables replaces the tunables. Changing either radius replans the
// queues on the next Update even if the observer has not moved.
func (m *Manager) SetTunables(t Tunables) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.LoadRadius != m.tunables.LoadRadius || t.UnloadRadius != m.tunables.UnloadRadius {
		m.force = true
	}
	m.tunables = t
	return nil
}

// Update advances streaming by one tick for an observer at world position
// pos. A build failure stops the load drain and is returned after the unload
// drain and visibility pass have run; the failed chunk is dropped from the
// load queue and nothing of it is published.
func (m *Manager) Update(pos mgl32.Vec3) error {
	m.ticks++

	observer := gen.ChunkPosAt(float64(pos.X()), float64(pos.Z()))
	if !m.queues.Seen || observer != m.queues.Observer || m.force {
		m.queues = UpdateQueues(m.queues, observer, m.chunks, m.tunables, m.force)
		m.force = false
		m.log.Debug("streaming queues planned",
			"x", observer.X, "z", observer.Z,
			"load", len(m.queues.Load), "unload", len(m.queues.Unload))
	}

	err := m.drainLoads()
	m.drainUnloads()
	m.updateVisibility()
	return err
}

func (m *Manager) drainLoads() error {
	for n := 0; n < m.tunables.MaxChunksPerTick && len(m.queues.Load) > 0; {
		pos := m.queues.Load[0]
		m.queues.Load = m.queues.Load[1:]
		if _, ok := m.chunks[pos]; ok {
			continue
		}

		built, err := m.builder.Build(pos)
		if err != nil {
			return fmt.Errorf("load chunk %v: %w", pos, err)
		}
		c := &Chunk{Pos: pos, ID: uuid.New(), Mesh: built}
		m.chunks[pos] = c
		m.created++
		m.scene.Attach(c)
		n++
	}
	return nil
}

func (m *Manager) drainUnloads() {
	for n := 0; n < m.tunables.MaxChunksPerTick && len(m.queues.Unload) > 0; {
		pos := m.queues.Unload[0]
		m.queues.Unload = m.queues.Unload[1:]
		c, ok := m.chunks[pos]
		if !ok {
			continue
		}
		m.release(c)
		n++
	}
}

func (m *Manager) release(c *Chunk) {
	m.scene.Detach(c)
	c.Mesh = nil
	c.Visible = false
	delete(m.chunks, c.Pos)
	m.destroyed++
}

// updateVisibility toggles draw state by view distance. Residency is not
// affected.
func (m *Manager) updateVisibility() {
	for _, c := range m.chunks {
		visible := Within(c.Pos.DistSq(m.queues.Observer), m.tunables.ViewDistance)
		if visible != c.Visible {
			c.Visible = visible
			m.scene.SetVisible(c, visible)
		}
	}
}

// Resident returns the chunk at pos if it is resident.
func (m *Manager) Resident(pos gen.ChunkPos) (*Chunk, bool) {
	c, ok := m.chunks[pos]
	return c, ok
}

// Queues returns a copy of the pending work.
func (m *Manager) Queues() Queues {
	q := m.queues
	q.Load = slices.Clone(q.Load)
	q.Unload = slices.Clone(q.Unload)
	return q
}

// Stats returns the current counters.
func (m *Manager) Stats() Stats {
	s := Stats{
		Ticks:          m.ticks,
		Created:        m.created,
		Destroyed:      m.destroyed,
		Resident:       len(m.chunks),
		PendingLoads:   len(m.queues.Load),
		PendingUnloads: len(m.queues.Unload),
	}
	for _, c := range m.chunks {
		if c.Visible {
			s.Visible++
		}
	}
	return s
}

// Close detaches and releases every resident chunk and clears the queues.
func (m *Manager) Close() {
	for _, c := range m.chunks {
		m.release(c)
	}
	m.queues = Queues{}
	m.log.Info("streaming manager closed", "created", m.created, "destroyed", m.destroyed)
}
