package widget

import (
	"reflect"
	"testing"

	"github.com/grindlemire/flowboard/internal/flow"
)

// boxView is a View with a fixed height that honors the proposed width.
type boxView struct {
	height float64
	asked  []float64
}

func (v *boxView) Measure(w float64) flow.Size {
	v.asked = append(v.asked, w)
	return flow.Size{Width: w, Height: v.height}
}

func (v *boxView) Render(width, height int) []string { return nil }

func TestElements_Measurer(t *testing.T) {
	a, b := &boxView{height: 10}, &boxView{height: 20}
	els := Elements{
		New("a", flow.Widget(flow.Small), a),
		New("b", flow.DynamicWidth(), b),
	}

	cfg := flow.Config{SidePadding: 16, SpacingHorizontal: 16, SpacingVertical: 16}
	res := flow.Pack(344, els.Intents(), els, cfg, flow.Phone, 0)

	if !reflect.DeepEqual(a.asked, []float64{148}) {
		t.Errorf("a asked = %v, want [148]", a.asked)
	}
	if !reflect.DeepEqual(b.asked, []float64{312}) {
		t.Errorf("b asked = %v, want [312]", b.asked)
	}
	if len(res.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2", len(res.Rows))
	}
	if !reflect.DeepEqual(els.IDs(), []string{"a", "b"}) {
		t.Errorf("IDs() = %v", els.IDs())
	}
	if els.Index("b") != 1 || els.Index("zzz") != -1 {
		t.Errorf("Index lookup wrong: b=%d zzz=%d", els.Index("b"), els.Index("zzz"))
	}
}

func TestNew_PanicsOnNilView(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with nil view should panic")
		}
	}()
	New("x", flow.DynamicWidth(), nil)
}

func TestNominalWidths_MatchPackProposal(t *testing.T) {
	cfg := flow.DefaultConfig()
	for _, device := range []flow.DeviceClass{flow.Phone, flow.Tablet} {
		table := NominalWidths(768, cfg, device)
		if len(table) != len(flow.WidgetKinds) {
			t.Fatalf("table has %d kinds, want %d", len(table), len(flow.WidgetKinds))
		}
		for _, k := range flow.WidgetKinds {
			v := &boxView{height: 1}
			els := Elements{New("x", flow.Widget(k), v)}
			flow.Pack(768, els.Intents(), els, cfg, device, 0)
			if v.asked[0] != table[k] {
				t.Errorf("%v/%v: Pack proposed %g, table says %g", device, k, v.asked[0], table[k])
			}
		}
	}
}

func TestNominalWidth_Values(t *testing.T) {
	type tc struct {
		kind   flow.WidgetKind
		device flow.DeviceClass
		want   float64
	}

	cfg := flow.Config{SidePadding: 10, SpacingHorizontal: 10}
	tests := map[string]tc{
		"small tablet":     {kind: flow.Small, device: flow.Tablet, want: 92.5},
		"medium tablet":    {kind: flow.Medium, device: flow.Tablet, want: 195},
		"medium phone":     {kind: flow.Medium, device: flow.Phone, want: 400},
		"full bleed phone": {kind: flow.LargeFullBleed, device: flow.Phone, want: 420},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NominalWidth(tt.kind, 420, cfg, tt.device); got != tt.want {
				t.Errorf("NominalWidth = %g, want %g", got, tt.want)
			}
		})
	}
}
