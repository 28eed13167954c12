package domain

// ApplyMove drops a token for owner into column and returns where it landed.
// It is the only code that writes board cells. On error the board is unchanged.
func ApplyMove(b *Board, column int, owner PlayerID) (Position, error) {
	if !owner.Valid() {
		return Position{}, ErrInvalidPlayer
	}
	if !b.inColumns(column) {
		return Position{}, ErrOutOfRange
	}
	if b.IsColumnFull(column) {
		return Position{}, ErrColumnFull
	}

	row := b.heights[column]
	b.cells[column][row] = owner
	b.heights[column]++
	b.moves++

	return Position{Column: column, Row: row}, nil
}

// SimulateMove applies the move to a copy and leaves b untouched.
func SimulateMove(b *Board, column int, owner PlayerID) (*Board, Position, error) {
	next := b.Copy()
	pos, err := ApplyMove(next, column, owner)
	if err != nil {
		return nil, Position{}, err
	}
	return next, pos, nil
}
