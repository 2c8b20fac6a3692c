package board

import "github.com/grindlemire/flowboard/internal/flow"

// DefaultTabletBreakpoint is the container width at which a board switches
// to tablet sizing when no device class is pinned.
const DefaultTabletBreakpoint = 600

// DeviceForWidth returns Tablet when width is at least breakpoint and Phone
// otherwise. A breakpoint <= 0 always yields Phone.
func DeviceForWidth(width, breakpoint float64) flow.DeviceClass {
	if breakpoint > 0 && width >= breakpoint {
		return flow.Tablet
	}
	return flow.Phone
}
