package world

import (
	"container/heap"
	"math"

	"riftlane/server/internal/content"
)

// navClearance keeps path waypoints far enough from walls that a champion
// body fits through.
const navClearance = 30.0

type navNeighbor struct {
	col      int
	row      int
	cost     float64
	diagonal bool
}

var navNeighborOffsets = [...]navNeighbor{
	{col: 0, row: -1, cost: 1},
	{col: 1, row: 0, cost: 1},
	{col: 0, row: 1, cost: 1},
	{col: -1, row: 0, cost: 1},
	{col: 1, row: -1, cost: math.Sqrt2, diagonal: true},
	{col: 1, row: 1, cost: math.Sqrt2, diagonal: true},
	{col: -1, row: 1, cost: math.Sqrt2, diagonal: true},
	{col: -1, row: -1, cost: math.Sqrt2, diagonal: true},
}

type navPoint struct {
	col int
	row int
}

// navGrid rasterizes the map walls into walkable cells once at match
// start. Pathfinding runs A* over the cells.
type navGrid struct {
	cols, rows int
	cellSize   float64
	walkable   []bool
	width      float64
	height     float64
}

func newNavGrid(m *content.MapDef) *navGrid {
	cols := int(math.Ceil(m.Width / m.CellSize))
	rows := int(math.Ceil(m.Height / m.CellSize))
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &navGrid{
		cols:     cols,
		rows:     rows,
		cellSize: m.CellSize,
		walkable: make([]bool, cols*rows),
		width:    m.Width,
		height:   m.Height,
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := g.worldPos(col, row)
			if c.X < navClearance || c.X > m.Width-navClearance ||
				c.Y < navClearance || c.Y > m.Height-navClearance {
				continue
			}
			blocked := false
			for _, wall := range m.Walls {
				if CircleRectOverlap(c, navClearance, wall) {
					blocked = true
					break
				}
			}
			if !blocked {
				g.walkable[row*cols+col] = true
			}
		}
	}
	return g
}

func (g *navGrid) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

func (g *navGrid) index(col, row int) int { return row*g.cols + col }

func (g *navGrid) isWalkable(col, row int) bool {
	return g.inBounds(col, row) && g.walkable[g.index(col, row)]
}

func (g *navGrid) worldPos(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * g.cellSize,
		Y: (float64(row) + 0.5) * g.cellSize,
	}
}

func (g *navGrid) locate(p Vec2) (int, int) {
	col := int(math.Min(math.Max(p.X, 0), g.width-1) / g.cellSize)
	row := int(math.Min(math.Max(p.Y, 0), g.height-1) / g.cellSize)
	if col >= g.cols {
		col = g.cols - 1
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// canTraverseDiagonal rejects diagonal steps that would clip a wall
// corner by requiring both adjacent cardinals to be open.
func (g *navGrid) canTraverseDiagonal(from navPoint, delta navNeighbor) bool {
	if !delta.diagonal {
		return true
	}
	return g.isWalkable(from.col+delta.col, from.row) && g.isWalkable(from.col, from.row+delta.row)
}

// closestWalkable breadth-first searches outward for the nearest open cell.
func (g *navGrid) closestWalkable(col, row int) (int, int, bool) {
	if !g.inBounds(col, row) {
		return 0, 0, false
	}
	visited := map[int]struct{}{g.index(col, row): {}}
	queue := []navPoint{{col: col, row: row}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if g.walkable[g.index(cur.col, cur.row)] {
			return cur.col, cur.row, true
		}
		for _, delta := range navNeighborOffsets {
			nc, nr := cur.col+delta.col, cur.row+delta.row
			if !g.inBounds(nc, nr) {
				continue
			}
			idx := g.index(nc, nr)
			if _, seen := visited[idx]; seen {
				continue
			}
			visited[idx] = struct{}{}
			queue = append(queue, navPoint{col: nc, row: nr})
		}
	}
	return 0, 0, false
}

func (g *navGrid) heuristic(a, b navPoint) float64 {
	dx := math.Abs(float64(a.col - b.col))
	dy := math.Abs(float64(a.row - b.row))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

type pathNode struct {
	point  navPoint
	g      float64
	f      float64
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int           { return len(pq) }
func (pq pathQueue) Less(i, j int) bool { return pq[i].f < pq[j].f }

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

func (g *navGrid) astar(start, goal navPoint) []navPoint {
	open := &pathQueue{}
	heap.Init(open)
	heap.Push(open, &pathNode{point: start, f: g.heuristic(start, goal)})
	gScore := map[int]float64{g.index(start.col, start.row): 0}
	closed := make(map[int]struct{})

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		currIdx := g.index(current.point.col, current.point.row)
		if _, seen := closed[currIdx]; seen {
			continue
		}
		closed[currIdx] = struct{}{}
		if current.point == goal {
			return reconstructPath(current)
		}
		for _, delta := range navNeighborOffsets {
			if !g.canTraverseDiagonal(current.point, delta) {
				continue
			}
			nc, nr := current.point.col+delta.col, current.point.row+delta.row
			if !g.isWalkable(nc, nr) {
				continue
			}
			idx := g.index(nc, nr)
			if _, seen := closed[idx]; seen {
				continue
			}
			tentative := current.g + delta.cost
			if prev, ok := gScore[idx]; ok && tentative >= prev {
				continue
			}
			gScore[idx] = tentative
			next := navPoint{col: nc, row: nr}
			heap.Push(open, &pathNode{
				point:  next,
				g:      tentative,
				f:      tentative + g.heuristic(next, goal),
				parent: current,
			})
		}
	}
	return nil
}

func reconstructPath(end *pathNode) []navPoint {
	var path []navPoint
	for node := end; node != nil; node = node.parent {
		path = append(path, node.point)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath returns world-space waypoints from one point to another. When
// no grid path exists it falls back to walking straight at the target.
func (g *navGrid) FindPath(from, to Vec2) []Vec2 {
	startCol, startRow := g.locate(from)
	goalCol, goalRow := g.locate(to)
	exactGoal := g.isWalkable(goalCol, goalRow)

	var ok bool
	if !g.isWalkable(startCol, startRow) {
		if startCol, startRow, ok = g.closestWalkable(startCol, startRow); !ok {
			return []Vec2{to}
		}
	}
	if !exactGoal {
		if goalCol, goalRow, ok = g.closestWalkable(goalCol, goalRow); !ok {
			return []Vec2{to}
		}
	}

	nodes := g.astar(navPoint{col: startCol, row: startRow}, navPoint{col: goalCol, row: goalRow})
	if len(nodes) == 0 {
		return []Vec2{to}
	}
	if len(nodes) == 1 {
		if exactGoal {
			return []Vec2{to}
		}
		return []Vec2{g.worldPos(nodes[0].col, nodes[0].row)}
	}
	path := make([]Vec2, 0, len(nodes))
	for _, n := range nodes[1:] {
		path = append(path, g.worldPos(n.col, n.row))
	}
	if exactGoal {
		if last := path[len(path)-1]; Dist(last, to) > 1 {
			path = append(path, to)
		} else {
			path[len(path)-1] = to
		}
	}
	return path
}
