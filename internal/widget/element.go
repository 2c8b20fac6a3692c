package widget

import "github.com/grindlemire/flowboard/internal/flow"

// View is the content side of an element: it can report its natural size
// for a proposed width and render itself into a cell rectangle.
type View interface {
	// Measure returns the natural size of the view when offered proposedWidth.
	Measure(proposedWidth float64) flow.Size

	// Render returns at most height lines, each at most width cells wide.
	Render(width, height int) []string
}

// Element is a type-erased dashboard tile.
type Element struct {
	ID     string
	Intent flow.SizingIntent
	View   View
}

// New creates an Element. It panics on a nil view.
func New(id string, intent flow.SizingIntent, view View) Element {
	if view == nil {
		panic("widget: nil View for element " + id)
	}
	return Element{ID: id, Intent: intent, View: view}
}

// Elements is an ordered element sequence. It implements flow.Measurer,
// addressing elements by their position.
type Elements []Element

// Measure measures the element at index.
func (e Elements) Measure(index int, proposedWidth float64) flow.Size {
	return e[index].View.Measure(proposedWidth)
}

// Intents returns the sizing intents in order.
func (e Elements) Intents() []flow.SizingIntent {
	intents := make([]flow.SizingIntent, len(e))
	for i, el := range e {
		intents[i] = el.Intent
	}
	return intents
}

// IDs returns the element ids in order.
func (e Elements) IDs() []string {
	ids := make([]string, len(e))
	for i, el := range e {
		ids[i] = el.ID
	}
	return ids
}

// Index returns the position of the element with id, or -1.
func (e Elements) Index(id string) int {
	for i, el := range e {
		if el.ID == id {
			return i
		}
	}
	return -1
}

var _ flow.Measurer = Elements(nil)
