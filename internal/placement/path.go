package placement

import (
	"container/heap"

	"cave-golf/internal/core"
)

// Cell addresses a grid cell.
type Cell struct {
	Col, Row int
}

var steps = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func manhattan(a, b Cell) int {
	dx := a.Col - b.Col
	if dx < 0 {
		dx = -dx
	}
	dy := a.Row - b.Row
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

type pathNode struct {
	cell  Cell
	g, f  int
	index int
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g > pq[j].g
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	item := x.(*pathNode)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// PathLength returns the number of 4-directional unit steps on the shortest
// route between two cells through open cells, using A* with a Manhattan
// heuristic. The start cell itself need not be open.
func PathLength(g core.Grid, from, to Cell) (int, bool) {
	if !g.InBounds(from.Col, from.Row) || !g.InBounds(to.Col, to.Row) {
		return 0, false
	}
	if from == to {
		return 0, true
	}
	open := &pathQueue{}
	heap.Push(open, &pathNode{cell: from, f: manhattan(from, to)})
	gScore := map[Cell]int{from: 0}
	closed := make(map[Cell]struct{})
	for open.Len() > 0 {
		cur := heap.Pop(open).(*pathNode)
		if _, seen := closed[cur.cell]; seen {
			continue
		}
		closed[cur.cell] = struct{}{}
		if cur.cell == to {
			return cur.g, true
		}
		for _, d := range steps {
			n := Cell{cur.cell.Col + d.Col, cur.cell.Row + d.Row}
			if g.IsWall(n.Col, n.Row) {
				continue
			}
			if _, seen := closed[n]; seen {
				continue
			}
			tentative := cur.g + 1
			if prev, ok := gScore[n]; ok && tentative >= prev {
				continue
			}
			gScore[n] = tentative
			heap.Push(open, &pathNode{cell: n, g: tentative, f: tentative + manhattan(n, to)})
		}
	}
	return 0, false
}

// BFSLength is a breadth-first reference for PathLength.
func BFSLength(g core.Grid, from, to Cell) (int, bool) {
	if !g.InBounds(from.Col, from.Row) || !g.InBounds(to.Col, to.Row) {
		return 0, false
	}
	dist := make([]int, g.W*g.H)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(from.Col, from.Row)] = 0
	queue := []Cell{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[g.Index(cur.Col, cur.Row)]
		if cur == to {
			return d, true
		}
		for _, s := range steps {
			n := Cell{cur.Col + s.Col, cur.Row + s.Row}
			if g.IsWall(n.Col, n.Row) {
				continue
			}
			idx := g.Index(n.Col, n.Row)
			if dist[idx] >= 0 {
				continue
			}
			dist[idx] = d + 1
			queue = append(queue, n)
		}
	}
	return 0, false
}
