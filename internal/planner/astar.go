package planner

import (
	"container/heap"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// aStarNode is stored in a flat arena rather than referenced by pointer, so
// that parent links are plain integer indices (-1 for the start node) and
// never form a pointer cycle or require garbage-collector traversal of a
// node graph.
type aStarNode struct {
	cell         grid.Cell
	gCost, hCost float64
	parent       int
}

func (n aStarNode) fCost() float64 {
	return n.gCost + n.hCost
}

// openHeap is a min-heap of arena indices ordered by f-cost, implementing
// container/heap.Interface over a shared arena slice.
type openHeap struct {
	arena *[]aStarNode
	idx   []int
}

func (h openHeap) Len() int { return len(h.idx) }
func (h openHeap) Less(i, j int) bool {
	return (*h.arena)[h.idx[i]].fCost() < (*h.arena)[h.idx[j]].fCost()
}
func (h openHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *openHeap) Push(x interface{}) {
	h.idx = append(h.idx, x.(int))
}
func (h *openHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	v := old[n-1]
	h.idx = old[:n-1]
	return v
}

func manhattan(a, b grid.Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindPath runs A* from start to goal over g, returning the path inclusive
// of both endpoints and true, or (nil, false) if no path exists or either
// endpoint is not walkable. When diagonal is true, eight-directional moves
// are allowed with cost 1.414 versus 1.0 for cardinal moves; diagonal moves
// that would cut a corner are rejected by neighbors().
func FindPath(g *grid.Grid, start, goal grid.Cell, diagonal bool) ([]grid.Cell, bool) {
	if !g.IsWalkable(start) || !g.IsWalkable(goal) {
		return nil, false
	}

	arena := []aStarNode{{cell: start, gCost: 0, hCost: manhattan(start, goal), parent: -1}}
	nodeIndex := map[grid.Cell]int{start: 0}
	closed := map[grid.Cell]bool{}

	open := &openHeap{arena: &arena, idx: []int{0}}
	heap.Init(open)

	for open.Len() > 0 {
		currentIdx := heap.Pop(open).(int)
		current := arena[currentIdx]

		if closed[current.cell] {
			continue
		}
		if current.cell == goal {
			return reconstructPath(arena, currentIdx), true
		}
		closed[current.cell] = true

		for _, n := range neighbors(g, current.cell, diagonal) {
			if closed[n] {
				continue
			}

			moveCost := 1.0
			if n.X != current.cell.X && n.Y != current.cell.Y {
				moveCost = 1.414
			}
			gCost := current.gCost + moveCost

			if existingIdx, ok := nodeIndex[n]; ok {
				if gCost < arena[existingIdx].gCost {
					arena[existingIdx].gCost = gCost
					arena[existingIdx].parent = currentIdx
					heap.Push(open, existingIdx)
				}
				continue
			}

			newIdx := len(arena)
			arena = append(arena, aStarNode{
				cell:   n,
				gCost:  gCost,
				hCost:  manhattan(n, goal),
				parent: currentIdx,
			})
			nodeIndex[n] = newIdx
			heap.Push(open, newIdx)
		}
	}

	return nil, false
}

func reconstructPath(arena []aStarNode, goalIdx int) []grid.Cell {
	var path []grid.Cell
	for idx := goalIdx; idx != -1; idx = arena[idx].parent {
		path = append(path, arena[idx].cell)
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
