// Package flowboard lays out dashboard elements in rows.
//
// Elements declare a sizing intent (small, medium, large,
// small-phone-medium-pad, large-full-bleed or dynamic). Pack offers each
// element a width derived from its intent and the device class, measures
// it, and fills rows left to right, wrapping when the next element would
// cross the side padding or the per-row cap is reached. Full-bleed
// elements always take a row of their own. Place turns the packed rows
// into absolute positions, applying row alignment.
//
// Board hosts a set of elements and caches the packed result until the
// container width or the elements change.
//
// Users import this single package for the public API; the
// implementation lives in internal/flow, internal/widget and
// internal/board.
package flowboard
