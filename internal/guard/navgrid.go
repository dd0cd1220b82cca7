package guard

import (
	"container/heap"
	"math"
)

const navCellSize = 16

// NavGrid is a 2D walkability grid where true = blocked.
type NavGrid struct {
	cols    int
	rows    int
	blocked []bool
}

// NewNavGrid builds a walkability grid from the map dimensions and buildings.
// Each cell that overlaps a building (with padding for agent radius) is blocked.
func NewNavGrid(mapW, mapH int, buildings []rect, agentRadius int) *NavGrid {
	cols := mapW / navCellSize
	rows := mapH / navCellSize
	ng := &NavGrid{
		cols:    cols,
		rows:    rows,
		blocked: make([]bool, cols*rows),
	}

	pad := agentRadius
	for _, b := range buildings {
		bx0 := b.x - pad
		by0 := b.y - pad
		bx1 := b.x + b.w + pad
		by1 := b.y + b.h + pad

		cMinX := max(0, bx0/navCellSize)
		cMinY := max(0, by0/navCellSize)
		cMaxX := min(cols-1, (bx1-1)/navCellSize)
		cMaxY := min(rows-1, (by1-1)/navCellSize)

		for cy := cMinY; cy <= cMaxY; cy++ {
			for cx := cMinX; cx <= cMaxX; cx++ {
				ng.blocked[cy*cols+cx] = true
			}
		}
	}
	return ng
}

// IsBlocked returns true if the cell at (cx, cy) is not walkable.
func (ng *NavGrid) IsBlocked(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= ng.cols || cy >= ng.rows {
		return true
	}
	return ng.blocked[cy*ng.cols+cx]
}

// WorldToCell converts world pixel coordinates to grid cell coordinates.
func WorldToCell(wx, wy float64) (int, int) {
	return int(wx) / navCellSize, int(wy) / navCellSize
}

// CellToWorld converts grid cell coordinates to world pixel center.
func CellToWorld(cx, cy int) (float64, float64) {
	return float64(cx*navCellSize) + float64(navCellSize)/2, float64(cy*navCellSize) + float64(navCellSize)/2
}

// SamplePosition snaps a point to the nearest walkable cell center within
// maxRadius, probing outward ring by ring. The bool is false when no
// walkable cell exists in range; callers fall back to the unsnapped point.
func (ng *NavGrid) SamplePosition(wx, wy, maxRadius float64) (float64, float64, bool) {
	if ng == nil {
		return wx, wy, true
	}
	cx, cy := WorldToCell(wx, wy)
	if !ng.IsBlocked(cx, cy) {
		return wx, wy, true
	}
	maxRing := int(maxRadius/navCellSize) + 1
	for ring := 1; ring <= maxRing; ring++ {
		bestD := math.MaxFloat64
		var bx, by float64
		found := false
		for dy := -ring; dy <= ring; dy++ {
			for dx := -ring; dx <= ring; dx++ {
				if max(abs(dx), abs(dy)) != ring {
					continue
				}
				if ng.IsBlocked(cx+dx, cy+dy) {
					continue
				}
				px, py := CellToWorld(cx+dx, cy+dy)
				d := dist(wx, wy, px, py)
				if d <= maxRadius && d < bestD {
					bestD = d
					bx, by = px, py
					found = true
				}
			}
		}
		if found {
			return bx, by, true
		}
	}
	return wx, wy, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// --- A* pathfinding ---

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var pathDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindPath returns a slice of world-coordinate waypoints from (sx,sy) to (gx,gy).
// Returns nil if no path exists.
func (ng *NavGrid) FindPath(sx, sy, gx, gy float64) [][2]float64 {
	scx, scy := WorldToCell(sx, sy)
	gcx, gcy := WorldToCell(gx, gy)

	if ng.IsBlocked(scx, scy) || ng.IsBlocked(gcx, gcy) {
		return nil
	}

	key := func(cx, cy int) int { return cy*ng.cols + cx }
	heuristic := func(ax, ay, bx, by int) float64 {
		dx := math.Abs(float64(ax - bx))
		dy := math.Abs(float64(ay - by))
		return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
	}

	start := &pathNode{cx: scx, cy: scy, g: 0, h: heuristic(scx, scy, gcx, gcy)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := make(map[int]*pathNode)
	best[key(scx, scy)] = start

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == gcx && cur.cy == gcy {
			return buildPath(cur)
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range pathDirs {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if ng.IsBlocked(nx, ny) {
				continue
			}
			// Prevent diagonal corner-cutting through blocked cells.
			if d[0] != 0 && d[1] != 0 {
				if ng.IsBlocked(cur.cx+d[0], cur.cy) || ng.IsBlocked(cur.cx, cur.cy+d[1]) {
					continue
				}
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			cost := 1.0
			if d[0] != 0 && d[1] != 0 {
				cost = math.Sqrt2
			}
			cand := cur.g + cost
			if prev, ok := best[nk]; ok && cand >= prev.g {
				continue
			}
			node := &pathNode{cx: nx, cy: ny, g: cand, h: heuristic(nx, ny, gcx, gcy), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildPath(end *pathNode) [][2]float64 {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	path := make([][2]float64, len(cells))
	for i, c := range cells {
		wx, wy := CellToWorld(c[0], c[1])
		path[i] = [2]float64{wx, wy}
	}
	return path
}
