package core

// Coord is a tile position local to one chunk's R×C grid (spec §3).
// r, c are bounded by the chunk resolution (parameter.FieldResR/C,
// typically 64), well within uint8 range.
type Coord struct {
	R, C uint8
}

// Equal reports structural equality, as required by spec §3.
func (c Coord) Equal(o Coord) bool {
	return c.R == o.R && c.C == o.C
}

// InBounds reports whether c lies within an R×C grid.
func (c Coord) InBounds(rows, cols int) bool {
	return int(c.R) < rows && int(c.C) < cols
}

// ChunkCoord identifies a chunk within the world's chunk grid, distinct
// from Coord (a tile within one chunk). FieldID (spec §4.8) packs both
// bytes into its low 16 bits.
type ChunkCoord struct {
	R, C uint8
}

// Equal reports structural equality.
func (c ChunkCoord) Equal(o ChunkCoord) bool {
	return c.R == o.R && c.C == o.C
}

// CardinalTo returns the cardinal direction from c to other and true, if
// other is exactly one chunk away along a single axis (N/S/E/W); ok is
// false otherwise. Used by the portal fix-up pass (spec §4.5) to work
// out which cardinal direction a connected portal's chunk lies in.
func (c ChunkCoord) CardinalTo(other ChunkCoord) (dir FlowDir, ok bool) {
	dr := int(other.R) - int(c.R)
	dc := int(other.C) - int(c.C)
	switch {
	case dr == -1 && dc == 0:
		return DirN, true
	case dr == 1 && dc == 0:
		return DirS, true
	case dr == 0 && dc == 1:
		return DirE, true
	case dr == 0 && dc == -1:
		return DirW, true
	default:
		return DirNone, false
	}
}
