// Package core provides the rules engine for the Blobblab block puzzle.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import "fmt"

// Dir represents a swipe direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Dirs lists every swipe direction in a fixed order.
var Dirs = [...]Dir{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) offset for moving one cell in this direction.
// Up decreases the row, Down increases it (screen coordinates).
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDir converts a direction name ("up", "left", ...) to a Dir.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "up", "Up", "u", "U":
		return DirUp, nil
	case "down", "Down", "d", "D":
		return DirDown, nil
	case "left", "Left", "l", "L":
		return DirLeft, nil
	case "right", "Right", "r", "R":
		return DirRight, nil
	}
	return 0, fmt.Errorf("blobblab: unknown direction %q", s)
}

// Coord is a board position. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}
