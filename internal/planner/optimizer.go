package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

// RemoveRedundantMoves collapses consecutive duplicate cells in path,
// leaving everything else untouched.
func RemoveRedundantMoves(path []grid.Cell) []grid.Cell {
	if len(path) == 0 {
		return path
	}

	optimized := []grid.Cell{path[0]}
	for i := 1; i < len(path); i++ {
		if path[i] != optimized[len(optimized)-1] {
			optimized = append(optimized, path[i])
		}
	}
	return optimized
}

// Smooth is a documented no-op: it returns path unchanged. The line-of-sight
// check it would need (isLineClear) was never implemented in the system
// this planner is modeled on — it always reported a clear line — so
// smoothing never actually removed a waypoint there either. Preserved here
// rather than "fixed," since nothing downstream relies on smoothing
// happening.
func Smooth(path []grid.Cell) []grid.Cell {
	return path
}
