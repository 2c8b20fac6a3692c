package widget

import (
	"reflect"
	"testing"

	"github.com/grindlemire/flowboard/internal/flow"
)

type keyed struct {
	key string
	tag int
}

func TestSortByPreferredOrder(t *testing.T) {
	type tc struct {
		items []keyed
		order []string
		want  []keyed
	}

	tests := map[string]tc{
		"full order": {
			items: []keyed{{"a", 0}, {"b", 1}, {"c", 2}},
			order: []string{"c", "a", "b"},
			want:  []keyed{{"c", 2}, {"a", 0}, {"b", 1}},
		},
		"unmatched go last in original order": {
			items: []keyed{{"x", 0}, {"b", 1}, {"y", 2}, {"a", 3}},
			order: []string{"a", "b"},
			want:  []keyed{{"a", 3}, {"b", 1}, {"x", 0}, {"y", 2}},
		},
		"empty order keeps input": {
			items: []keyed{{"b", 0}, {"a", 1}},
			order: nil,
			want:  []keyed{{"b", 0}, {"a", 1}},
		},
		"duplicate item keys are stable": {
			items: []keyed{{"a", 0}, {"b", 1}, {"a", 2}},
			order: []string{"b", "a"},
			want:  []keyed{{"b", 1}, {"a", 0}, {"a", 2}},
		},
		"duplicate order keys use first position": {
			items: []keyed{{"a", 0}, {"b", 1}},
			order: []string{"b", "a", "b"},
			want:  []keyed{{"b", 1}, {"a", 0}},
		},
		"order names missing items": {
			items: []keyed{{"a", 0}},
			order: []string{"z", "a"},
			want:  []keyed{{"a", 0}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			items := append([]keyed(nil), tt.items...)
			SortByPreferredOrder(items, func(k keyed) string { return k.key }, tt.order)
			if !reflect.DeepEqual(items, tt.want) {
				t.Errorf("SortByPreferredOrder = %v, want %v", items, tt.want)
			}
		})
	}
}

func TestSortElements(t *testing.T) {
	v := &boxView{height: 1}
	els := Elements{
		New("mem", flow.Widget(flow.Small), v),
		New("cpu", flow.Widget(flow.Small), v),
		New("net", flow.Widget(flow.Large), v),
	}
	SortElements(els, []string{"cpu", "mem"})

	if !reflect.DeepEqual(els.IDs(), []string{"cpu", "mem", "net"}) {
		t.Errorf("IDs after sort = %v, want [cpu mem net]", els.IDs())
	}
}
