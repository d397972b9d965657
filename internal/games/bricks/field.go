// Package bricks implements a two-row brick breaker on the 320x240 logical
// display: authoritative game state, per-frame physics, ordered collision
// resolution and a dirty-rectangle renderer that keeps draw traffic minimal.
package bricks

// The playfield shape is fixed: two rows of eight bricks. Row 0 is nearer
// the top of the screen, row 1 nearer the paddle.
const (
	FieldRows = 2
	FieldCols = 8
)

// Field is the brick grid: one alive flag per brick. A brick, once cleared,
// never reappears within a level; the whole field repopulates when a new
// level starts.
type Field struct {
	alive [FieldRows][FieldCols]bool
}

// Repopulate marks every brick alive, starting a fresh level.
func (f *Field) Repopulate() {
	for row := range f.alive {
		for col := range f.alive[row] {
			f.alive[row][col] = true
		}
	}
}

// Alive reports whether the brick at (row, col) is still present.
func (f *Field) Alive(row, col int) bool {
	return f.alive[row][col]
}

// Kill removes the brick at (row, col).
func (f *Field) Kill(row, col int) {
	f.alive[row][col] = false
}

// CountAlive returns the number of remaining bricks.
func (f *Field) CountAlive() int {
	count := 0
	for row := range f.alive {
		for col := range f.alive[row] {
			if f.alive[row][col] {
				count++
			}
		}
	}
	return count
}

// Empty reports whether both rows are fully cleared.
func (f *Field) Empty() bool {
	return f.CountAlive() == 0
}
