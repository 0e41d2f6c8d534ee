package engine

import (
	"errors"
	"testing"
)

// ttlObject dies after ttl updates
type ttlObject struct {
	id  int
	ttl int
}

func (o *ttlObject) Set(ttl int)       { o.ttl = ttl }
func (o *ttlObject) Update(dt float64) { o.ttl-- }
func (o *ttlObject) IsAlive() bool     { return o.ttl > 0 }

func newTestPool(t *testing.T, maxSize int, fill bool) *Pool[*ttlObject, int] {
	t.Helper()
	next := 0
	p, err := NewPool[*ttlObject, int](PoolConfig[*ttlObject]{
		Create: func() *ttlObject {
			next++
			return &ttlObject{id: next}
		},
		MaxSize: maxSize,
		Fill:    fill,
	})
	if err != nil {
		t.Fatalf("NewPool failed: %v", err)
	}
	return p
}

// checkPartition verifies the dead-prefix / alive-suffix layout
func checkPartition(t *testing.T, p *Pool[*ttlObject, int]) {
	t.Helper()
	if p.InUse() > p.Size() || p.Size() > p.MaxSize() {
		t.Fatalf("Expected inUse <= size <= maxSize, got %d, %d, %d", p.InUse(), p.Size(), p.MaxSize())
	}
	for i := 0; i < p.Size(); i++ {
		alive := p.At(i).IsAlive()
		wantAlive := i >= p.Size()-p.InUse()
		if alive != wantAlive {
			t.Errorf("Index %d: expected alive=%v, got %v (size=%d inUse=%d)", i, wantAlive, alive, p.Size(), p.InUse())
		}
	}
}

func TestNewPoolRequiresFactory(t *testing.T) {
	_, err := NewPool[*ttlObject, int](PoolConfig[*ttlObject]{MaxSize: 4})
	if !errors.Is(err, ErrMissingFactory) {
		t.Errorf("Expected ErrMissingFactory, got %v", err)
	}
}

func TestPoolGrowsByDoubling(t *testing.T) {
	p := newTestPool(t, 10, false)

	tests := []struct {
		gets     int
		wantSize int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{9, 10},
		{10, 10},
	}

	got := 0
	for _, tt := range tests {
		for got < tt.gets {
			if _, ok := p.Get(5); !ok {
				t.Fatalf("Get %d failed before reaching max size", got+1)
			}
			got++
		}
		if p.Size() != tt.wantSize {
			t.Errorf("After %d gets: expected size %d, got %d", tt.gets, tt.wantSize, p.Size())
		}
		if p.InUse() != tt.gets {
			t.Errorf("After %d gets: expected inUse %d, got %d", tt.gets, tt.gets, p.InUse())
		}
		checkPartition(t, p)
	}
}

func TestPoolGetAtMaxSizeIsNoop(t *testing.T) {
	p := newTestPool(t, 3, true)

	for i := 0; i < 3; i++ {
		if _, ok := p.Get(10); !ok {
			t.Fatalf("Expected get %d to succeed", i)
		}
	}

	before := len(p.AliveObjects())
	obj, ok := p.Get(10)
	if ok || obj != nil {
		t.Errorf("Expected exhausted Get to return nil, false, got %v, %v", obj, ok)
	}
	if after := len(p.AliveObjects()); after != before {
		t.Errorf("Expected alive count %d unchanged, got %d", before, after)
	}
	if p.Size() != 3 {
		t.Errorf("Expected size 3, got %d", p.Size())
	}
}

func TestPoolUpdateReclaimsDead(t *testing.T) {
	p := newTestPool(t, 8, true)

	ttls := []int{1, 3, 2, 3, 1}
	for _, ttl := range ttls {
		p.Get(ttl)
	}

	p.Update(1.0 / 60)
	if p.InUse() != 3 {
		t.Errorf("Expected 3 alive after first update, got %d", p.InUse())
	}
	checkPartition(t, p)

	// Survivors keep their acquisition order
	alive := p.AliveObjects()
	wantTTL := []int{2, 1, 2}
	for i, obj := range alive {
		if obj.ttl != wantTTL[i] {
			t.Errorf("Alive[%d]: expected ttl %d, got %d", i, wantTTL[i], obj.ttl)
		}
	}

	p.Update(1.0 / 60)
	checkPartition(t, p)
	p.Update(1.0 / 60)
	checkPartition(t, p)
	if p.InUse() != 0 {
		t.Errorf("Expected empty pool, got %d in use", p.InUse())
	}
}

func TestPoolRecyclesIdentities(t *testing.T) {
	p := newTestPool(t, 2, true)

	first, _ := p.Get(1)
	p.Get(1)
	p.Update(0)
	p.Update(0)

	third, ok := p.Get(4)
	if !ok {
		t.Fatal("Expected Get to reuse a dead slot")
	}
	if third != first {
		t.Errorf("Expected oldest dead object %d to be reused, got %d", first.id, third.id)
	}
	if third.ttl != 4 {
		t.Errorf("Expected reinitialized ttl 4, got %d", third.ttl)
	}
}

func TestPoolEachVisitsAliveBackToFront(t *testing.T) {
	p := newTestPool(t, 4, true)
	a, _ := p.Get(5)
	b, _ := p.Get(5)

	var order []*ttlObject
	p.Each(func(o *ttlObject) { order = append(order, o) })

	if len(order) != 2 || order[0] != b || order[1] != a {
		t.Errorf("Expected [b a], got %v", order)
	}
}

func TestPoolClear(t *testing.T) {
	p := newTestPool(t, 8, false)
	for i := 0; i < 5; i++ {
		p.Get(3)
	}

	p.Clear()
	if p.Size() != 1 || p.InUse() != 0 || p.LastIndex() != 0 {
		t.Errorf("Expected size 1, inUse 0, lastIndex 0, got %d, %d, %d", p.Size(), p.InUse(), p.LastIndex())
	}
	if p.At(0).IsAlive() {
		t.Error("Expected the remaining object to be dead")
	}
}
