package domain

import "errors"

// to represent where a round is in its lifecycle
type RoundState string

const (
	StatePreparing    RoundState = "preparing"
	StateAwaitingMove RoundState = "awaiting_move"
	StateWon          RoundState = "won"
	StateDrawn        RoundState = "drawn"
	StateAborted      RoundState = "aborted"
)

func (s RoundState) Terminal() bool {
	return s == StateWon || s == StateDrawn || s == StateAborted
}

type EventKind string

const (
	EventCellPlaced     EventKind = "cell_placed"
	EventColumnFull     EventKind = "column_full"
	EventOutOfRange     EventKind = "out_of_range"
	EventMalformedInput EventKind = "malformed_input"
)

// TurnEvent is what a single turn produced. Row is only set for EventCellPlaced.
type TurnEvent struct {
	Kind   EventKind
	Column int
	Row    int
	Owner  PlayerID
}

// Err maps a rejected turn to its domain error, nil when the cell was placed.
func (e TurnEvent) Err() error {
	switch e.Kind {
	case EventColumnFull:
		return ErrColumnFull
	case EventOutOfRange:
		return ErrOutOfRange
	case EventMalformedInput:
		return ErrMalformedInput
	}
	return nil
}

type OutcomeKind string

const (
	OutcomeWin     OutcomeKind = "win"
	OutcomeDraw    OutcomeKind = "draw"
	OutcomeAborted OutcomeKind = "aborted"
)

type RoundOutcome struct {
	Kind   OutcomeKind
	Winner PlayerID // only set for OutcomeWin
}

// Round drives one game from an empty board to a terminal state.
type Round struct {
	ID     string
	Opener PlayerID

	board   *Board
	active  PlayerID
	state   RoundState
	winner  PlayerID
	last    Position
	hasLast bool
}

func NewRound(id string, rows, columns int, opener PlayerID) (*Round, error) {
	if !opener.Valid() {
		return nil, ErrInvalidPlayer
	}

	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, err
	}

	return &Round{
		ID:     id,
		Opener: opener,
		board:  board,
		active: opener,
		state:  StatePreparing,
	}, nil
}

func (r *Round) State() RoundState { return r.state }

// Board is exposed for rendering; callers must not mutate it.
func (r *Round) Board() *Board { return r.board }

func (r *Round) ActivePlayer() PlayerID { return r.active }

func (r *Round) MoveCount() int { return r.board.MoveCount() }

// LastMove returns the position of the most recent accepted move.
func (r *Round) LastMove() (Position, bool) {
	return r.last, r.hasLast
}

func (r *Round) IsFinished() bool {
	return r.state.Terminal()
}

// Begin prompts the active player. It is a no-op while already awaiting a move.
func (r *Round) Begin() (PlayerID, error) {
	if r.state.Terminal() {
		return Empty, ErrRoundOver
	}
	r.state = StateAwaitingMove
	return r.active, nil
}

func (r *Round) checkAwaiting() error {
	if r.state.Terminal() {
		return ErrRoundOver
	}
	if r.state != StateAwaitingMove {
		return ErrNotAwaitingMove
	}
	return nil
}

// Play applies the active player's column choice. Out of range and full
// columns are reported through the event and keep the same player on turn.
func (r *Round) Play(column int) (TurnEvent, error) {
	if err := r.checkAwaiting(); err != nil {
		return TurnEvent{}, err
	}

	mover := r.active
	pos, err := ApplyMove(r.board, column, mover)
	switch {
	case errors.Is(err, ErrOutOfRange):
		return TurnEvent{Kind: EventOutOfRange, Column: column, Owner: mover}, nil
	case errors.Is(err, ErrColumnFull):
		return TurnEvent{Kind: EventColumnFull, Column: column, Owner: mover}, nil
	case err != nil:
		return TurnEvent{}, err
	}

	r.last = pos
	r.hasLast = true
	event := TurnEvent{Kind: EventCellPlaced, Column: pos.Column, Row: pos.Row, Owner: mover}

	// win before draw: the last free cell can complete a run
	if HasFourThrough(r.board, pos, mover) {
		r.state = StateWon
		r.winner = mover
		return event, nil
	}

	if IsDraw(r.board) {
		r.state = StateDrawn
		return event, nil
	}

	r.active = mover.Opponent()
	r.state = StatePreparing
	return event, nil
}

// Reject records unparseable input. The round keeps waiting on the same player.
func (r *Round) Reject() (TurnEvent, error) {
	if err := r.checkAwaiting(); err != nil {
		return TurnEvent{}, err
	}
	return TurnEvent{Kind: EventMalformedInput, Column: -1, Owner: r.active}, nil
}

// Abort ends the round at the active player's request.
func (r *Round) Abort() error {
	if err := r.checkAwaiting(); err != nil {
		return err
	}
	r.state = StateAborted
	return nil
}

// Outcome is only available once the round is terminal.
func (r *Round) Outcome() (RoundOutcome, bool) {
	switch r.state {
	case StateWon:
		return RoundOutcome{Kind: OutcomeWin, Winner: r.winner}, true
	case StateDrawn:
		return RoundOutcome{Kind: OutcomeDraw}, true
	case StateAborted:
		return RoundOutcome{Kind: OutcomeAborted}, true
	}
	return RoundOutcome{}, false
}
