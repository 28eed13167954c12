package console

import (
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

var tokens = map[domain.PlayerID]string{
	domain.Empty:  " ",
	domain.First:  "o",
	domain.Second: "*",
}

// RenderBoard draws the board top row first with a 1-based column header.
func RenderBoard(b *domain.Board) string {
	var sb strings.Builder

	for c := 1; c <= b.Columns(); c++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteString("\n")

	for r := b.Rows() - 1; r >= 0; r-- {
		sb.WriteString("║")
		for c := 0; c < b.Columns(); c++ {
			sb.WriteString(tokens[b.CellAt(c, r)])
			sb.WriteString("║")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("╚")
	sb.WriteString(strings.Repeat("═╩", b.Columns()-1))
	sb.WriteString("═╝\n")
	return sb.String()
}

// SendMessage implements game.Notifier.
func (c *Console) SendMessage(msg game.ServerMessage) error {
	switch msg.Type {
	case game.MsgSessionStart:
		c.names[domain.First] = msg.PlayerName
		c.names[domain.Second] = msg.Opponent
		c.columns = msg.Columns
		c.line(msgVersus, msg.PlayerName, msg.Opponent)
		c.line(msgBoardSize, msg.Rows, msg.Columns)
		if msg.TotalRounds > 1 {
			c.line(msgTotalGames, msg.TotalRounds)
		} else {
			c.line(msgSingleGame)
		}

	case game.MsgRoundStart:
		if msg.TotalRounds > 1 {
			c.line(msgGameNumber, msg.RoundNumber)
		}
		c.write(RenderBoard(msg.Board))

	case game.MsgTurn:
		c.line(msgTurn, msg.PlayerName)

	case game.MsgMoveMade:
		c.write(RenderBoard(msg.Board))

	case game.MsgMoveRejected:
		c.reportRejection(msg.Event)

	case game.MsgRoundOver:
		switch msg.Outcome.Kind {
		case domain.OutcomeWin:
			c.line(msgPlayerWon, msg.PlayerName)
		case domain.OutcomeDraw:
			c.line(msgRoundDraw)
		case domain.OutcomeAborted:
			return nil
		}
		if msg.TotalRounds > 1 {
			c.printScore(msg.Score)
		}

	case game.MsgSessionOver:
		if msg.TotalRounds > 1 {
			switch msg.Summary.Result {
			case domain.ResultWinner:
				c.line(msgMatchWinner, msg.PlayerName)
			case domain.ResultDraw:
				c.line(msgMatchDraw)
			}
		}
		c.line(msgGameOver)
	}
	return nil
}

func (c *Console) reportRejection(event domain.TurnEvent) {
	switch event.Kind {
	case domain.EventMalformedInput:
		c.line(msgIncorrectColumn)
	case domain.EventOutOfRange:
		c.line(msgOutOfRange, c.columns)
	case domain.EventColumnFull:
		c.line(msgColumnFull, event.Column+1)
	}
}

func (c *Console) printScore(score domain.Score) {
	c.line(msgScore)
	c.line(msgScoreLine,
		c.names[domain.First], score.Points[domain.First],
		c.names[domain.Second], score.Points[domain.Second])
}
