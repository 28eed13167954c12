package domain

type PlayerID int

const (
	Empty  PlayerID = 0
	First  PlayerID = 1
	Second PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	return Empty
}

func (p PlayerID) Valid() bool {
	return p == First || p == Second
}

func (p PlayerID) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "empty"
}

// board limits
const (
	MinDimension = 5
	MaxDimension = 9

	DefaultRows    = 6
	DefaultColumns = 7

	ToWin = 4
)

// Position is a cell coordinate. Row 0 is the bottom row.
type Position struct {
	Column int
	Row    int
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimension  Error = "board dimensions must be between 5 and 9"
	ErrOutOfRange        Error = "column is out of range"
	ErrColumnFull        Error = "column is full"
	ErrMalformedInput    Error = "malformed column input"
	ErrInvalidPlayer     Error = "invalid player"
	ErrInvalidRoundCount Error = "round count must be at least 1"
	ErrRoundOver         Error = "round is already over"
	ErrNotAwaitingMove   Error = "round is not awaiting a move"
	ErrSessionOver       Error = "session is already over"
	ErrRoundInProgress   Error = "previous round has not been concluded"
	ErrUnknownRound      Error = "round does not belong to this session"
)
