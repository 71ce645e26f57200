package gen

import "math"

// Fields produces the two low-frequency periodic fields biome selection is
// built from. Each field uses a different frequency per axis so the pattern
// does not repeat along diagonals. Output depends only on the seed and the
// column, and uses the pure-Go math.Sin/math.Cos, so results are repeatable
// across runs on the same architecture.
type Fields struct {
	seed  int64
	phase [4]float64
}

// Spatial frequencies, radians per block.
const (
	fieldAX = 0.0062
	fieldAZ = 0.0047
	fieldBZ = 0.0053
	fieldBX = 0.0039
)

// NewFields derives per-field phase offsets from seed. Seed 0 has no offset.
func NewFields(seed int64) Fields {
	f := Fields{seed: seed}
	if seed == 0 {
		return f
	}
	rng := newSeedRNG(seed, 0x5eed)
	for i := range f.phase {
		f.phase[i] = float64(rng.nextN(1<<20)) / (1 << 20) * 2 * math.Pi
	}
	return f
}

// Seed returns the seed the fields were derived from.
func (f Fields) Seed() int64 { return f.seed }

// A returns the first field in [-1, 1].
func (f Fields) A(x, z int) float64 {
	return math.Sin(float64(x)*fieldAX+f.phase[0]) * math.Cos(float64(z)*fieldAZ+f.phase[1])
}

// B returns the second field in [-1, 1].
func (f Fields) B(x, z int) float64 {
	return math.Sin(float64(z)*fieldBZ+f.phase[2]) * math.Cos(float64(x)*fieldBX+f.phase[3])
}

// Selector combines both fields into a value in [-2, 2].
func (f Fields) Selector(x, z int) float64 {
	return f.A(x, z) + f.B(x, z)
}

// seedRNG is a small deterministic LCG.
type seedRNG struct {
	state int64
}

func newSeedRNG(seed int64, salt int64) *seedRNG {
	return &seedRNG{state: seed ^ (salt * 341873128712)}
}

func (r *seedRNG) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

func (r *seedRNG) nextN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}
