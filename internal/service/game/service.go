package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/uid"
)

// PlayerInput blocks until the given player hands in a turn.
type PlayerInput interface {
	NextMove(ctx context.Context, player domain.PlayerID, name string) (Input, error)
}

// Notifier receives every update the match produces.
type Notifier interface {
	SendMessage(message ServerMessage) error
}

type MatchConfig struct {
	Rounds       int
	Rows         int
	Columns      int
	FirstPlayer  string
	SecondPlayer string
}

// Match plays a session of rounds between two local players.
type Match struct {
	SessionID    string
	FirstPlayer  string
	SecondPlayer string
	CreatedAt    time.Time
	FinishedAt   time.Time

	session *domain.Session
	input   PlayerInput
	conn    Notifier
	mu      sync.Mutex
}

func NewMatch(cfg MatchConfig, input PlayerInput, conn Notifier) (*Match, error) {
	session, err := domain.NewSession(domain.SessionConfig{
		Rounds:     cfg.Rounds,
		Rows:       cfg.Rows,
		Columns:    cfg.Columns,
		NewRoundID: uid.NewRoundID,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	first, second := cfg.FirstPlayer, cfg.SecondPlayer
	if first == "" {
		first = "First"
	}
	if second == "" {
		second = "Second"
	}

	return &Match{
		SessionID:    uid.NewSessionID(),
		FirstPlayer:  first,
		SecondPlayer: second,
		CreatedAt:    time.Now(),
		session:      session,
		input:        input,
		conn:         conn,
	}, nil
}

func (m *Match) GetUsername(player domain.PlayerID) string {
	if player == domain.Second {
		return m.SecondPlayer
	}
	return m.FirstPlayer
}

// Score is safe to call while Run is in progress.
func (m *Match) Score() domain.Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Score()
}

func (m *Match) Summary() domain.Summary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Summary()
}

func (m *Match) send(message ServerMessage) {
	message.SessionID = m.SessionID
	if err := m.conn.SendMessage(message); err != nil {
		log.Printf("[MATCH] Error sending %s for session %s: %v", message.Type, m.SessionID, err)
	}
}

// Run plays rounds until the configured count is reached or a player exits.
// Running out of input or cancelling ctx counts as an exit. Any other input
// error aborts the session and is returned alongside the summary.
func (m *Match) Run(ctx context.Context) (domain.Summary, error) {
	log.Printf("[SESSION] Starting session %s: %s vs %s, %d round(s) on %dx%d",
		m.SessionID, m.FirstPlayer, m.SecondPlayer, m.session.Rounds(), m.session.Rows(), m.session.Columns())

	m.send(ServerMessage{
		Type:        MsgSessionStart,
		TotalRounds: m.session.Rounds(),
		Rows:        m.session.Rows(),
		Columns:     m.session.Columns(),
		Player:      domain.First,
		PlayerName:  m.FirstPlayer,
		Opponent:    m.SecondPlayer,
	})

	var runErr error
	for {
		m.mu.Lock()
		if m.session.IsOver() {
			m.mu.Unlock()
			break
		}
		number := m.session.RoundNumber()
		round, err := m.session.NextRound()
		m.mu.Unlock()
		if err != nil {
			return m.Summary(), fmt.Errorf("start round %d: %w", number, err)
		}

		if runErr = m.playRound(ctx, round, number); runErr != nil {
			break
		}
	}

	m.FinishedAt = time.Now()
	summary := m.Summary()
	log.Printf("[SESSION] Session %s finished after %s: %s",
		m.SessionID, m.FinishedAt.Sub(m.CreatedAt).Round(time.Millisecond), summary.Result)

	m.send(ServerMessage{
		Type:        MsgSessionOver,
		TotalRounds: summary.Score.Rounds,
		Player:      summary.Winner,
		PlayerName:  m.nameOrEmpty(summary.Winner),
		Score:       summary.Score,
		Summary:     summary,
	})
	return summary, runErr
}

func (m *Match) nameOrEmpty(player domain.PlayerID) string {
	if !player.Valid() {
		return ""
	}
	return m.GetUsername(player)
}

func (m *Match) playRound(ctx context.Context, round *domain.Round, number int) error {
	log.Printf("[ROUND] Round %d (%s) started, %s opens", number, round.ID, m.GetUsername(round.Opener))

	m.send(ServerMessage{
		Type:        MsgRoundStart,
		RoundID:     round.ID,
		RoundNumber: number,
		TotalRounds: m.session.Rounds(),
		Player:      round.Opener,
		PlayerName:  m.GetUsername(round.Opener),
		Board:       round.Board().Copy(),
	})

	var inputErr error
	for !round.IsFinished() {
		m.mu.Lock()
		player, err := round.Begin()
		m.mu.Unlock()
		if err != nil {
			return err
		}

		m.send(ServerMessage{
			Type:       MsgTurn,
			RoundID:    round.ID,
			Player:     player,
			PlayerName: m.GetUsername(player),
		})

		input, err := m.input.NextMove(ctx, player, m.GetUsername(player))
		if err != nil {
			if !isExitError(err) {
				inputErr = fmt.Errorf("read move for %s: %w", m.GetUsername(player), err)
			}
			input = ExitInput()
		}

		if err := m.applyInput(round, player, input); err != nil {
			return err
		}
	}

	m.mu.Lock()
	outcome, err := m.session.Conclude(round)
	score := m.session.Score()
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("conclude round %d: %w", number, err)
	}

	reason := reasonFor(outcome)
	log.Printf("[ROUND] Round %s over after %d moves: %s", round.ID, round.MoveCount(), reason)

	m.send(ServerMessage{
		Type:        MsgRoundOver,
		RoundID:     round.ID,
		RoundNumber: number,
		TotalRounds: score.Rounds,
		Player:      outcome.Winner,
		PlayerName:  m.nameOrEmpty(outcome.Winner),
		Board:       round.Board().Copy(),
		Outcome:     outcome,
		Reason:      reason,
		Score:       score,
	})
	return inputErr
}

func (m *Match) applyInput(round *domain.Round, player domain.PlayerID, input Input) error {
	m.mu.Lock()
	message, err := m.applyInputLocked(round, player, input)
	m.mu.Unlock()
	if err != nil || message == nil {
		return err
	}

	m.send(*message)
	return nil
}

// applyInputLocked must be called with m.mu held. It returns nil when there
// is nothing to report.
func (m *Match) applyInputLocked(round *domain.Round, player domain.PlayerID, input Input) (*ServerMessage, error) {
	if input.Exit {
		log.Printf("[ROUND] %s ended round %s early", m.GetUsername(player), round.ID)
		return nil, round.Abort()
	}

	var (
		event domain.TurnEvent
		err   error
	)
	if input.Malformed {
		event, err = round.Reject()
	} else {
		event, err = round.Play(input.Column)
	}
	if err != nil {
		return nil, err
	}

	message := &ServerMessage{
		Type:       MsgMoveMade,
		RoundID:    round.ID,
		Player:     player,
		PlayerName: m.GetUsername(player),
		Event:      event,
	}
	if event.Kind == domain.EventCellPlaced {
		message.Board = round.Board().Copy()
	} else {
		message.Type = MsgMoveRejected
	}
	return message, nil
}

func isExitError(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func reasonFor(outcome domain.RoundOutcome) string {
	switch outcome.Kind {
	case domain.OutcomeWin:
		return "connect_four"
	case domain.OutcomeDraw:
		return "draw"
	}
	return "exit"
}
