// Package render draws laid-out dashboard elements onto a character grid.
package render
