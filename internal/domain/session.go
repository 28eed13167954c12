package domain

import "fmt"

// points awarded per round
const (
	WinPoints  = 2
	DrawPoints = 1
)

type SessionConfig struct {
	Rounds  int // 0 means a single round
	Rows    int
	Columns int

	// NewRoundID names each round. Defaults to "round-N".
	NewRoundID func() string
}

// Score is the running tally of a session. Wins only counts won rounds,
// Points credits both players on a draw. Summary decides the session on Wins.
type Score struct {
	Wins      map[PlayerID]int
	Points    map[PlayerID]int
	Draws     int
	Rounds    int
	Completed int
}

func newScore(rounds int) Score {
	return Score{
		Wins:   map[PlayerID]int{First: 0, Second: 0},
		Points: map[PlayerID]int{First: 0, Second: 0},
		Rounds: rounds,
	}
}

func (s Score) clone() Score {
	out := s
	out.Wins = map[PlayerID]int{First: s.Wins[First], Second: s.Wins[Second]}
	out.Points = map[PlayerID]int{First: s.Points[First], Second: s.Points[Second]}
	return out
}

type ResultKind string

const (
	ResultInProgress ResultKind = "in_progress"
	ResultWinner     ResultKind = "winner"
	ResultDraw       ResultKind = "draw"
	ResultAborted    ResultKind = "aborted_before_completion"
)

type Summary struct {
	Score  Score
	Result ResultKind
	Winner PlayerID // only set for ResultWinner
}

// Session plays a configured number of rounds and keeps the score.
type Session struct {
	rows    int
	columns int
	newID   func() string

	score   Score
	current *Round
	aborted bool
}

func NewSession(cfg SessionConfig) (*Session, error) {
	rounds := cfg.Rounds
	if rounds == 0 {
		rounds = 1
	}
	if rounds < 1 {
		return nil, ErrInvalidRoundCount
	}
	if !ValidDimensions(cfg.Rows, cfg.Columns) {
		return nil, ErrInvalidDimension
	}

	s := &Session{
		rows:    cfg.Rows,
		columns: cfg.Columns,
		newID:   cfg.NewRoundID,
		score:   newScore(rounds),
	}
	if s.newID == nil {
		s.newID = func() string {
			return fmt.Sprintf("round-%d", s.score.Completed+1)
		}
	}
	return s, nil
}

func (s *Session) Rows() int    { return s.rows }
func (s *Session) Columns() int { return s.columns }

// Rounds is the configured number of rounds.
func (s *Session) Rounds() int { return s.score.Rounds }

// RoundNumber is the 1-based number of the round in play, or of the next one.
func (s *Session) RoundNumber() int {
	return s.score.Completed + 1
}

func (s *Session) IsOver() bool {
	return s.aborted || s.score.Completed >= s.score.Rounds
}

func (s *Session) Current() *Round { return s.current }

// First opens odd rounds, Second opens even ones.
func (s *Session) opener() PlayerID {
	if s.score.Completed%2 == 0 {
		return First
	}
	return Second
}

// NextRound starts a fresh board for the next round.
func (s *Session) NextRound() (*Round, error) {
	if s.IsOver() {
		return nil, ErrSessionOver
	}
	if s.current != nil {
		return nil, ErrRoundInProgress
	}

	round, err := NewRound(s.newID(), s.rows, s.columns, s.opener())
	if err != nil {
		return nil, err
	}
	s.current = round
	return round, nil
}

// Conclude records the outcome of the current round. An aborted round ends
// the session without touching the score.
func (s *Session) Conclude(round *Round) (RoundOutcome, error) {
	if s.IsOver() {
		return RoundOutcome{}, ErrSessionOver
	}
	if round == nil || round != s.current {
		return RoundOutcome{}, ErrUnknownRound
	}

	outcome, ok := round.Outcome()
	if !ok {
		return RoundOutcome{}, ErrRoundInProgress
	}

	s.current = nil
	switch outcome.Kind {
	case OutcomeAborted:
		s.aborted = true
		return outcome, nil
	case OutcomeWin:
		s.score.Wins[outcome.Winner]++
		s.score.Points[outcome.Winner] += WinPoints
	case OutcomeDraw:
		s.score.Draws++
		s.score.Points[First] += DrawPoints
		s.score.Points[Second] += DrawPoints
	}
	s.score.Completed++
	return outcome, nil
}

// Score returns a snapshot of the running tally.
func (s *Session) Score() Score {
	return s.score.clone()
}

func (s *Session) Summary() Summary {
	summary := Summary{Score: s.Score(), Result: ResultInProgress}

	switch {
	case s.aborted:
		summary.Result = ResultAborted
	case s.score.Completed < s.score.Rounds:
		// still playing
	case s.score.Wins[First] > s.score.Wins[Second]:
		summary.Result = ResultWinner
		summary.Winner = First
	case s.score.Wins[Second] > s.score.Wins[First]:
		summary.Result = ResultWinner
		summary.Winner = Second
	default:
		summary.Result = ResultDraw
	}
	return summary
}
