package stream

import (
	"errors"
	"fmt"
)

// ErrInvalidTunables is returned when tunables violate their constraints.
var ErrInvalidTunables = errors.New("invalid tunables")

// Tunables control residency and draw distance, all in chunk units.
type Tunables struct {
	LoadRadius       int `json:"load_radius" yaml:"load_radius"`
	UnloadRadius     int `json:"unload_radius" yaml:"unload_radius"`
	MaxChunksPerTick int `json:"max_chunks_per_tick" yaml:"max_chunks_per_tick"`
	ViewDistance     int `json:"view_distance" yaml:"view_distance"`
}

// DefaultTunables returns the tunables used when none are configured.
func DefaultTunables() Tunables {
	return Tunables{
		LoadRadius:       4,
		UnloadRadius:     6,
		MaxChunksPerTick: 2,
		ViewDistance:     4,
	}
}

// Validate checks that the unload radius exceeds the load radius, leaving a
// hysteresis band, and that at least one chunk is drained per tick.
func (t Tunables) Validate() error {
	switch {
	case t.LoadRadius < 0:
		return fmt.Errorf("%w: load radius %d is negative", ErrInvalidTunables, t.LoadRadius)
	case t.UnloadRadius <= t.LoadRadius:
		return fmt.Errorf("%w: unload radius %d must exceed load radius %d", ErrInvalidTunables, t.UnloadRadius, t.LoadRadius)
	case t.MaxChunksPerTick <= 0:
		return fmt.Errorf("%w: max chunks per tick %d must be positive", ErrInvalidTunables, t.MaxChunksPerTick)
	case t.ViewDistance < 0:
		return fmt.Errorf("%w: view distance %d is negative", ErrInvalidTunables, t.ViewDistance)
	}
	return nil
}

// Within reports whether a squared chunk distance lies inside radius r.
// The bound r²+r admits chunks whose centre is within half a chunk of the
// circle, so radius 1 covers the full 3×3 neighbourhood.
func Within(distSq, r int) bool {
	return distSq <= r*r+r
}
