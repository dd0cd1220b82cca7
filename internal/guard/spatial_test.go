package guard

import "testing"

type testEntity struct {
	id   int
	kind EntityKind
	x, y float64
}

func (e *testEntity) EntityID() int                 { return e.id }
func (e *testEntity) EntityKind() EntityKind        { return e.kind }
func (e *testEntity) EntityPos() (float64, float64) { return e.x, e.y }

func TestSpatialIndexQueryRadius(t *testing.T) {
	si := NewSpatialIndex()
	si.Register(&testEntity{id: 1, kind: KindGuard, x: 100, y: 100})
	si.Register(&testEntity{id: 2, kind: KindGuard, x: 150, y: 100})
	si.Register(&testEntity{id: 3, kind: KindGuard, x: 400, y: 400})
	si.Register(&testEntity{id: 4, kind: KindTarget, x: 110, y: 100})

	hits := si.QueryRadius(100, 100, 100, KindGuard)
	if len(hits) != 2 {
		t.Fatalf("expected 2 guards within 100, got %d", len(hits))
	}
	// Sorted by distance: 1 (d=0) before 2 (d=50).
	if hits[0].EntityID() != 1 || hits[1].EntityID() != 2 {
		t.Fatalf("expected order [1 2], got [%d %d]", hits[0].EntityID(), hits[1].EntityID())
	}

	// Kind filter keeps the target out of guard queries.
	for _, h := range hits {
		if h.EntityKind() != KindGuard {
			t.Fatalf("kind filter leaked entity %d", h.EntityID())
		}
	}

	if got := si.QueryRadius(100, 100, 100, KindTarget); len(got) != 1 || got[0].EntityID() != 4 {
		t.Fatalf("expected exactly the target, got %v", got)
	}
}

func TestSpatialIndexUpdatePosition(t *testing.T) {
	si := NewSpatialIndex()
	e := &testEntity{id: 7, kind: KindGuard, x: 10, y: 10}
	si.Register(e)

	e.x, e.y = 900, 900
	si.UpdatePosition(e)

	if got := si.QueryRadius(10, 10, 50, KindGuard); len(got) != 0 {
		t.Fatalf("stale bucket still answers after move: %v", got)
	}
	if got := si.QueryRadius(900, 900, 50, KindGuard); len(got) != 1 {
		t.Fatalf("moved entity not found at new position")
	}
}

func TestSpatialIndexUnregister(t *testing.T) {
	si := NewSpatialIndex()
	si.Register(&testEntity{id: 5, kind: KindGuard, x: 50, y: 50})
	if !si.Contains(5) {
		t.Fatal("expected Contains(5) after register")
	}
	si.Unregister(5)
	if si.Contains(5) {
		t.Fatal("expected Contains(5)=false after unregister")
	}
	if got := si.QueryRadius(50, 50, 100, KindGuard); len(got) != 0 {
		t.Fatalf("unregistered entity still queryable: %v", got)
	}
	// Unknown IDs are a no-op.
	si.Unregister(99)
}

func TestSpatialIndexNearest(t *testing.T) {
	si := NewSpatialIndex()
	if si.Nearest(0, 0, KindGuard) != nil {
		t.Fatal("empty index should return nil")
	}
	si.Register(&testEntity{id: 1, kind: KindGuard, x: 300, y: 0})
	si.Register(&testEntity{id: 2, kind: KindGuard, x: 100, y: 0})
	got := si.Nearest(0, 0, KindGuard)
	if got == nil || got.EntityID() != 2 {
		t.Fatalf("expected nearest=2, got %v", got)
	}
}
