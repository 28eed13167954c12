package domain

// Board keeps one bottom-up stack of cells per column.
// cells[c][r] is column c, row r counted from the bottom.
type Board struct {
	rows    int
	columns int
	cells   [][]PlayerID
	heights []int
	moves   int
}

func ValidDimensions(rows, columns int) bool {
	return rows >= MinDimension && rows <= MaxDimension &&
		columns >= MinDimension && columns <= MaxDimension
}

func NewBoard(rows, columns int) (*Board, error) {
	if !ValidDimensions(rows, columns) {
		return nil, ErrInvalidDimension
	}

	cells := make([][]PlayerID, columns)
	for c := range cells {
		cells[c] = make([]PlayerID, rows)
	}

	return &Board{
		rows:    rows,
		columns: columns,
		cells:   cells,
		heights: make([]int, columns),
	}, nil
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

// MoveCount is the number of tokens on the board.
func (b *Board) MoveCount() int { return b.moves }

func (b *Board) inColumns(column int) bool {
	return column >= 0 && column < b.columns
}

func (b *Board) inBounds(column, row int) bool {
	return b.inColumns(column) && row >= 0 && row < b.rows
}

// Height returns how many cells of the column are occupied.
func (b *Board) Height(column int) int {
	if !b.inColumns(column) {
		return 0
	}
	return b.heights[column]
}

func (b *Board) IsColumnFull(column int) bool {
	if !b.inColumns(column) {
		return false
	}
	return b.heights[column] == b.rows
}

func (b *Board) IsFull() bool {
	return b.moves == b.rows*b.columns
}

// CellAt returns Empty for coordinates outside the board.
func (b *Board) CellAt(column, row int) PlayerID {
	if !b.inBounds(column, row) {
		return Empty
	}
	return b.cells[column][row]
}

// this creates a deep copy of the board
func (b *Board) Copy() *Board {
	cells := make([][]PlayerID, len(b.cells))
	for c := range b.cells {
		cells[c] = make([]PlayerID, len(b.cells[c]))
		copy(cells[c], b.cells[c])
	}
	heights := make([]int, len(b.heights))
	copy(heights, b.heights)

	return &Board{
		rows:    b.rows,
		columns: b.columns,
		cells:   cells,
		heights: heights,
		moves:   b.moves,
	}
}

// ValidMoves lists the columns that can still take a token.
func (b *Board) ValidMoves() []int {
	moves := []int{}
	for c := 0; c < b.columns; c++ {
		if !b.IsColumnFull(c) {
			moves = append(moves, c)
		}
	}
	return moves
}
