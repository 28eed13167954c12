package domain

type direction struct {
	dCol, dRow int
}

// horizontal, vertical, ascending and descending diagonal
var directions = [4]direction{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// HasFourInRow scans every cell in every direction for ToWin consecutive
// cells owned by owner.
func HasFourInRow(b *Board, owner PlayerID) bool {
	if !owner.Valid() {
		return false
	}

	for _, d := range directions {
		for c := 0; c < b.columns; c++ {
			for r := 0; r < b.rows; r++ {
				if runFrom(b, c, r, d, owner) {
					return true
				}
			}
		}
	}
	return false
}

func runFrom(b *Board, column, row int, d direction, owner PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		c, r := column+i*d.dCol, row+i*d.dRow
		if !b.inBounds(c, r) || b.cells[c][r] != owner {
			return false
		}
	}
	return true
}

// HasFourThrough only checks the lines passing through pos. It agrees with
// HasFourInRow as long as owner had no run before the token at pos was placed.
func HasFourThrough(b *Board, pos Position, owner PlayerID) bool {
	if !owner.Valid() || b.CellAt(pos.Column, pos.Row) != owner {
		return false
	}

	for _, d := range directions {
		count := 1 +
			countInDirection(b, pos, d.dCol, d.dRow, owner) +
			countInDirection(b, pos, -d.dCol, -d.dRow, owner)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// this counts the owner's cells next to pos in one direction, pos excluded
func countInDirection(b *Board, pos Position, dCol, dRow int, owner PlayerID) int {
	count := 0
	c, r := pos.Column+dCol, pos.Row+dRow
	for b.inBounds(c, r) && b.cells[c][r] == owner {
		count++
		c += dCol
		r += dRow
	}
	return count
}

// IsDraw reports a full board where neither player has a run.
func IsDraw(b *Board) bool {
	return b.IsFull() && !HasFourInRow(b, First) && !HasFourInRow(b, Second)
}
