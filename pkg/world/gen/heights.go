package gen

import "math"

// Height ranges per built-in biome.
const (
	PlainsMin, PlainsMax = -2, 2
	ForestMin, ForestMax = -2, 2
	RockyMin, RockyMax   = -4, 4
	DesertMin, DesertMax = -1, 1
)

// PlainsHeight is gentle rolling ground.
func PlainsHeight(x, z int) int {
	fx, fz := float64(x), float64(z)
	v := 1.6*math.Sin(fx*0.11) + 1.2*math.Cos(fz*0.09)
	return clampHeight(v, PlainsMin, PlainsMax)
}

// ForestHeight mixes a diagonal wave into the plains profile.
func ForestHeight(x, z int) int {
	fx, fz := float64(x), float64(z)
	v := 1.4*math.Sin(fx*0.07+fz*0.05) + 1.1*math.Cos(fz*0.13)
	return clampHeight(v, ForestMin, ForestMax)
}

// RockyHeight adds a stepped plateau term on top of sharper waves.
func RockyHeight(x, z int) int {
	fx, fz := float64(x), float64(z)
	v := 2.5*math.Sin(fx*0.17) + 2.0*math.Cos(fz*0.14)
	v += plateau(fx, fz)
	return clampHeight(v, RockyMin, RockyMax)
}

// DesertHeight is nearly flat dunes.
func DesertHeight(x, z int) int {
	fx, fz := float64(x), float64(z)
	v := 1.2 * math.Sin(fx*0.045) * math.Cos(fz*0.06)
	return clampHeight(v, DesertMin, DesertMax)
}

// plateau quantises a slow field into whole-block terraces in [-2, 1].
func plateau(fx, fz float64) float64 {
	return math.Floor(math.Sin(fx*0.035) * math.Cos(fz*0.03) * 2)
}

func clampHeight(v float64, lo, hi int) int {
	h := int(math.Round(v))
	return min(max(h, lo), hi)
}
