// Package widget wraps heterogeneous dashboard tiles behind one element
// shape so a single sequence can be handed to the flow engine.
package widget
