package guard

import (
	"math"
	"sort"
)

const spatialCellSize = 64.0

// EntityKind filters spatial queries by actor type.
type EntityKind int

const (
	KindGuard EntityKind = iota
	KindTarget
)

// SpatialEntity is anything that can be registered in the index.
type SpatialEntity interface {
	EntityID() int
	EntityKind() EntityKind
	EntityPos() (float64, float64)
}

type spatialCell struct{ cx, cy int }

// SpatialIndex is a uniform-grid index answering radius and nearest-neighbor
// queries over registered entities. Guards register themselves at spawn and
// push position updates as they move; despawn unregisters.
type SpatialIndex struct {
	cells map[spatialCell]map[int]SpatialEntity
	byID  map[int]spatialCell
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		cells: make(map[spatialCell]map[int]SpatialEntity),
		byID:  make(map[int]spatialCell),
	}
}

func cellFor(x, y float64) spatialCell {
	return spatialCell{int(math.Floor(x / spatialCellSize)), int(math.Floor(y / spatialCellSize))}
}

// Register inserts an entity. Registering an already-known ID moves it.
func (si *SpatialIndex) Register(e SpatialEntity) {
	si.Unregister(e.EntityID())
	x, y := e.EntityPos()
	c := cellFor(x, y)
	bucket, ok := si.cells[c]
	if !ok {
		bucket = make(map[int]SpatialEntity)
		si.cells[c] = bucket
	}
	bucket[e.EntityID()] = e
	si.byID[e.EntityID()] = c
}

// Unregister removes an entity by ID. Unknown IDs are a no-op.
func (si *SpatialIndex) Unregister(id int) {
	c, ok := si.byID[id]
	if !ok {
		return
	}
	delete(si.cells[c], id)
	if len(si.cells[c]) == 0 {
		delete(si.cells, c)
	}
	delete(si.byID, id)
}

// Contains reports whether an entity ID is currently registered.
func (si *SpatialIndex) Contains(id int) bool {
	_, ok := si.byID[id]
	return ok
}

// UpdatePosition re-buckets an entity after it moved. The update is visible
// to queries issued later in the same tick.
func (si *SpatialIndex) UpdatePosition(e SpatialEntity) {
	old, ok := si.byID[e.EntityID()]
	if !ok {
		return
	}
	x, y := e.EntityPos()
	c := cellFor(x, y)
	if c == old {
		return
	}
	si.Register(e)
}

// QueryRadius returns entities of the given kind within radius of (x,y),
// sorted by distance then ID for deterministic iteration.
func (si *SpatialIndex) QueryRadius(x, y, radius float64, kind EntityKind) []SpatialEntity {
	if radius <= 0 {
		return nil
	}
	minC := cellFor(x-radius, y-radius)
	maxC := cellFor(x+radius, y+radius)

	type hit struct {
		e SpatialEntity
		d float64
	}
	var hits []hit
	for cy := minC.cy; cy <= maxC.cy; cy++ {
		for cx := minC.cx; cx <= maxC.cx; cx++ {
			for _, e := range si.cells[spatialCell{cx, cy}] {
				if e.EntityKind() != kind {
					continue
				}
				ex, ey := e.EntityPos()
				d := dist(x, y, ex, ey)
				if d <= radius {
					hits = append(hits, hit{e, d})
				}
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].d != hits[j].d {
			return hits[i].d < hits[j].d
		}
		return hits[i].e.EntityID() < hits[j].e.EntityID()
	})
	out := make([]SpatialEntity, len(hits))
	for i, h := range hits {
		out[i] = h.e
	}
	return out
}

// Nearest returns the closest entity of the given kind, or nil if none exist.
func (si *SpatialIndex) Nearest(x, y float64, kind EntityKind) SpatialEntity {
	var best SpatialEntity
	bestD := math.MaxFloat64
	for _, bucket := range si.cells {
		for _, e := range bucket {
			if e.EntityKind() != kind {
				continue
			}
			ex, ey := e.EntityPos()
			d := dist(x, y, ex, ey)
			if d < bestD || (d == bestD && best != nil && e.EntityID() < best.EntityID()) {
				best = e
				bestD = d
			}
		}
	}
	return best
}
