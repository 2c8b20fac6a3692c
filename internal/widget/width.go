package widget

import "github.com/grindlemire/flowboard/internal/flow"

// NominalWidth returns the width a widget of kind is designed for in a
// container of containerWidth. It is the width the flow engine proposes,
// so views can size their content before layout.
func NominalWidth(kind flow.WidgetKind, containerWidth float64, cfg flow.Config, device flow.DeviceClass) float64 {
	return flow.ProposedWidth(flow.Widget(kind), containerWidth, cfg, device)
}

// NominalWidths returns NominalWidth for every widget kind.
func NominalWidths(containerWidth float64, cfg flow.Config, device flow.DeviceClass) map[flow.WidgetKind]float64 {
	table := make(map[flow.WidgetKind]float64, len(flow.WidgetKinds))
	for _, k := range flow.WidgetKinds {
		table[k] = NominalWidth(k, containerWidth, cfg, device)
	}
	return table
}
