package core

// Area is an axis-aligned world-space rectangle, min-inclusive /
// max-exclusive on neither axis — callers compare against Min/Max
// directly. Used to build the AABB query passed to ports.EntityIndex
// when resolving an ENEMIES target (spec §4.2): the chunk's world bounds
// inflated by parameter.SearchBuffer on every side.
type Area struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Inflate returns a copy of a expanded by d on every side.
func (a Area) Inflate(d float64) Area {
	return Area{
		MinX: a.MinX - d,
		MinZ: a.MinZ - d,
		MaxX: a.MaxX + d,
		MaxZ: a.MaxZ + d,
	}
}

// Contains reports whether the point (x, z) lies within a, inclusive.
func (a Area) Contains(x, z float64) bool {
	return x >= a.MinX && x <= a.MaxX && z >= a.MinZ && z <= a.MaxZ
}
