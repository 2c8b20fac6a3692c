package flow

import "testing"

// counter returns a recompute func and a pointer to its call count.
func counter(res Result) (func() Result, *int) {
	n := 0
	return func() Result {
		n++
		return res
	}, &n
}

func TestCache_ReusesForSameWidth(t *testing.T) {
	var c Cache
	want := Result{Size: Size{Width: 100, Height: 50}}
	recompute, calls := counter(want)

	got := c.EnsureValid(100, recompute)
	got2 := c.EnsureValid(100, recompute)

	if *calls != 1 {
		t.Errorf("recompute called %d times, want 1", *calls)
	}
	if got.Size != want.Size || got2.Size != want.Size {
		t.Errorf("EnsureValid = %+v / %+v, want %+v", got.Size, got2.Size, want.Size)
	}
}

func TestCache_Invalidation(t *testing.T) {
	type tc struct {
		between   func(c *Cache)
		width     float64
		wantCalls int
	}

	tests := map[string]tc{
		"same width no dirty": {
			between:   func(c *Cache) {},
			width:     100,
			wantCalls: 1,
		},
		"width change": {
			between:   func(c *Cache) {},
			width:     120,
			wantCalls: 2,
		},
		"dirty same width": {
			between:   func(c *Cache) { c.MarkDirty() },
			width:     100,
			wantCalls: 2,
		},
		"reset": {
			between:   func(c *Cache) { c.Reset() },
			width:     100,
			wantCalls: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var c Cache
			recompute, calls := counter(Result{})

			c.EnsureValid(100, recompute)
			tt.between(&c)
			c.EnsureValid(tt.width, recompute)

			if *calls != tt.wantCalls {
				t.Errorf("recompute called %d times, want %d", *calls, tt.wantCalls)
			}
			if c.IsDirty() {
				t.Error("cache should not be dirty after EnsureValid")
			}
		})
	}
}

func TestCache_ZeroWidthFirstCallRecomputes(t *testing.T) {
	var c Cache
	recompute, calls := counter(Result{})

	c.EnsureValid(0, recompute)
	if *calls != 1 {
		t.Errorf("first EnsureValid(0) recomputed %d times, want 1", *calls)
	}
	c.EnsureValid(0, recompute)
	if *calls != 1 {
		t.Errorf("second EnsureValid(0) recomputed, calls = %d", *calls)
	}
}

func TestCache_StoresNewResultAfterWidthChange(t *testing.T) {
	var c Cache
	intents := []SizingIntent{Widget(Small), Widget(Small)}
	cfg := phoneConfig()
	pack := func(w float64) func() Result {
		return func() Result { return Pack(w, intents, honoring(10, 10), cfg, Phone, 0) }
	}

	narrow := c.EnsureValid(200, pack(200))
	wide := c.EnsureValid(344, pack(344))

	if narrow.Size.Width != 200 || wide.Size.Width != 344 {
		t.Fatalf("widths = %g, %g; want 200, 344", narrow.Size.Width, wide.Size.Width)
	}
	cached, ok := c.peek()
	if !ok {
		t.Fatal("peek() reported no cached value")
	}
	if cached.Size.Width != 344 {
		t.Errorf("cached width = %g, want 344", cached.Size.Width)
	}
}

func TestCache_DirtyFlag(t *testing.T) {
	var c Cache
	if c.IsDirty() {
		t.Error("zero Cache should not be dirty")
	}
	if _, ok := c.peek(); ok {
		t.Error("zero Cache should have no result")
	}
	c.MarkDirty()
	if !c.IsDirty() {
		t.Error("MarkDirty should set the dirty flag")
	}
}
