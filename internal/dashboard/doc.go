// Package dashboard reads dashboard description files and turns their
// tiles into widget elements measured in terminal cells.
//
// A dashboard file is TOML:
//
//	title = "Ops"
//	order = ["cpu", "mem"]
//	ideal_per_row = 0
//
//	[layout]
//	side_padding = 2
//	spacing_horizontal = 2
//	spacing_vertical = 1
//	row_horizontal_alignment = "center"
//
//	[[tile]]
//	id = "cpu"
//	size = "small"
//	title = "CPU"
//	body = "42% across 8 cores"
package dashboard
