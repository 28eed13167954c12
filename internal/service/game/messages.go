package game

import "github.com/iamasit07/connect-four/internal/domain"

// message types sent to the Notifier
const (
	MsgSessionStart = "session_start"
	MsgRoundStart   = "round_start"
	MsgTurn         = "turn"
	MsgMoveMade     = "move_made"
	MsgMoveRejected = "move_rejected"
	MsgRoundOver    = "round_over"
	MsgSessionOver  = "session_over"
)

// ServerMessage carries one update to the presentation layer. Only the
// fields relevant to Type are set.
type ServerMessage struct {
	Type        string
	SessionID   string
	RoundID     string
	RoundNumber int
	TotalRounds int

	Rows    int
	Columns int

	Player     domain.PlayerID
	PlayerName string
	Opponent   string
	Event      domain.TurnEvent
	Board      *domain.Board

	Outcome domain.RoundOutcome
	Reason  string
	Score   domain.Score
	Summary domain.Summary
}

// Input is what a player handed in for one turn.
type Input struct {
	Column    int
	Exit      bool
	Malformed bool
}

func ColumnInput(column int) Input { return Input{Column: column} }
func ExitInput() Input             { return Input{Exit: true} }
func MalformedInput() Input        { return Input{Malformed: true} }
