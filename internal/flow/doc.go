// Package flow implements a wrapping row layout for dashboard tiles.
//
// Elements declare a [SizingIntent]; [Pack] walks them in order, asks a
// [Measurer] for each element's size at a proposed width, and groups them
// into rows that wrap when the container width is exhausted. Full-bleed
// elements always take a row of their own.
//
// [Place] turns a packed [Result] into absolute positions inside a bounding
// [Rect], and [Cache] keeps the last result for a container until its width
// changes or it is marked dirty.
//
// Types are re-exported through the root flowboard package for public
// consumption.
package flow
