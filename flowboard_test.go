package flowboard_test

import (
	"fmt"
	"testing"

	"github.com/grindlemire/flowboard"
)

type box struct{ w, h float64 }

func (b box) Measure(proposedWidth float64) flowboard.Size {
	if b.w == 0 {
		return flowboard.Size{Width: proposedWidth, Height: b.h}
	}
	return flowboard.Size{Width: b.w, Height: b.h}
}

func (b box) Render(width, height int) []string { return nil }

func TestBoard_PublicAPI(t *testing.T) {
	els := flowboard.Elements{
		flowboard.NewElement("a", flowboard.Widget(flowboard.Small), box{h: 10}),
		flowboard.NewElement("b", flowboard.Widget(flowboard.Small), box{h: 20}),
		flowboard.NewElement("hero", flowboard.Widget(flowboard.LargeFullBleed), box{h: 30}),
	}
	b := flowboard.NewBoard(els, flowboard.WithDeviceClass(flowboard.Phone))

	res := b.Measure(376)
	if len(res.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Rows))
	}
	// 20 + 16 + 30
	if res.Size.Height != 66 {
		t.Errorf("height = %g, want 66", res.Size.Height)
	}

	b.Measure(376)
	if b.Passes() != 1 {
		t.Errorf("passes = %d, want 1 after a cached pass", b.Passes())
	}
}

func ExamplePack() {
	intents := []flowboard.SizingIntent{
		flowboard.Widget(flowboard.Small),
		flowboard.Widget(flowboard.Small),
		flowboard.Widget(flowboard.Medium),
	}
	sizes := flowboard.FixedSizes{{Width: 100, Height: 40}, {Width: 100, Height: 60}, {Width: 200, Height: 50}}

	res := flowboard.Pack(300, intents, sizes, flowboard.DefaultConfig(), flowboard.Tablet, 0)
	for i, row := range res.Rows {
		fmt.Println(i, row.Indices, row.Offsets)
	}
	fmt.Println(res.Size)
	// Output:
	// 0 [0 1] [16 132]
	// 1 [2] [16]
	// {300 126}
}
