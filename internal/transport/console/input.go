package console

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

// ExitCommand ends the current round when typed instead of a column.
const ExitCommand = "end"

var dimensionsPattern = regexp.MustCompile(`^\s*(\d+)\s*[xX]\s*(\d+)\s*$`)

// inputError texts are catalog keys.
type inputError string

func (e inputError) Error() string { return string(e) }

// ParseDimensions reads "<rows> x <columns>". Empty text selects the default board.
func ParseDimensions(text string) (rows, columns int, err error) {
	if strings.TrimSpace(text) == "" {
		return domain.DefaultRows, domain.DefaultColumns, nil
	}

	match := dimensionsPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, inputError(msgInvalidInput)
	}
	rows, err = strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, inputError(msgInvalidInput)
	}
	columns, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, inputError(msgInvalidInput)
	}

	if rows < domain.MinDimension || rows > domain.MaxDimension {
		return 0, 0, inputError(msgRowsRange)
	}
	if columns < domain.MinDimension || columns > domain.MaxDimension {
		return 0, 0, inputError(msgColumnsRange)
	}
	return rows, columns, nil
}

// ParseRounds reads a positive round count. Empty text means a single round.
func ParseRounds(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 1, nil
	}
	rounds, err := strconv.Atoi(text)
	if err != nil || rounds < 1 {
		return 0, inputError(msgInvalidInput)
	}
	return rounds, nil
}

// ParseMove turns a 1-based column entry into a turn input. Range checks
// are left to the round so it can report them.
func ParseMove(text string) game.Input {
	text = strings.TrimSpace(text)
	if text == ExitCommand {
		return game.ExitInput()
	}
	column, err := strconv.Atoi(text)
	if err != nil {
		return game.MalformedInput()
	}
	return game.ColumnInput(column - 1)
}

// NextMove implements game.PlayerInput.
func (c *Console) NextMove(ctx context.Context, player domain.PlayerID, name string) (game.Input, error) {
	line, err := c.lines.ReadLine(ctx)
	if err != nil {
		return game.Input{}, err
	}
	return ParseMove(line), nil
}

// AskName prints prompt, a catalog key, and reads one line.
func (c *Console) AskName(ctx context.Context, prompt string) (string, error) {
	c.line(prompt)
	line, err := c.lines.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskDimensions repeats the question until a valid board is entered.
func (c *Console) AskDimensions(ctx context.Context) (int, int, error) {
	for {
		c.line(msgAskDimensions)
		c.line(msgDefaultDimensions)
		line, err := c.lines.ReadLine(ctx)
		if err != nil {
			return 0, 0, err
		}
		rows, columns, err := ParseDimensions(line)
		if err == nil {
			return rows, columns, nil
		}
		c.line(err.Error())
	}
}

// AskRounds repeats the question until a positive number or Enter is given.
func (c *Console) AskRounds(ctx context.Context) (int, error) {
	for {
		c.line(msgAskRounds)
		c.line(msgSingleGameHint)
		c.line(msgRoundsPrompt)
		line, err := c.lines.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		rounds, err := ParseRounds(line)
		if err == nil {
			return rounds, nil
		}
		c.line(err.Error())
	}
}
