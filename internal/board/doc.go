// Package board hosts a sequence of dashboard elements and runs the flow
// engine for them.
//
// A Board owns exactly one flow.Cache. Every mutator marks the cache dirty,
// and every layout pass resolves the device class once before packing, so
// the engine itself never looks at global state.
package board
