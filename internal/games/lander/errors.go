package lander

import "errors"

var (
	// ErrEmptyTerrain means the terrain has fewer than two samples.
	ErrEmptyTerrain = errors.New("lander: empty terrain")

	// ErrTerrainNotMonotonic means sample x values are not strictly increasing.
	ErrTerrainNotMonotonic = errors.New("lander: terrain x not monotonic")

	// ErrPlateauMismatch means the pad edges are missing or not level.
	ErrPlateauMismatch = errors.New("lander: pad plateau mismatch")

	// ErrStateCorrupt means the craft state became non-finite.
	ErrStateCorrupt = errors.New("lander: corrupt state")
)
