package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
	"github.com/iamasit07/connect-four/internal/transport/console"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		input         string
		rows, columns int
		wantErr       string
	}{
		{"", 6, 7, ""},
		{"   ", 6, 7, ""},
		{"5x9", 5, 9, ""},
		{"9 X 5", 9, 5, ""},
		{" 6 x 8 ", 6, 8, ""},
		{"4x7", 0, 0, "Board rows should be from 5 to 9"},
		{"10x7", 0, 0, "Board rows should be from 5 to 9"},
		{"6x3", 0, 0, "Board columns should be from 5 to 9"},
		{"6 by 7", 0, 0, "Invalid input"},
		{"x7", 0, 0, "Invalid input"},
		{"six x seven", 0, 0, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rows, columns, err := console.ParseDimensions(tt.input)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rows != tt.rows || columns != tt.columns {
				t.Fatalf("got %dx%d, want %dx%d", rows, columns, tt.rows, tt.columns)
			}
		})
	}
}

func TestParseRounds(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"1", 1, false},
		{" 3 ", 3, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"many", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := console.ParseRounds(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input string
		want  game.Input
	}{
		{"1", game.ColumnInput(0)},
		{" 7 ", game.ColumnInput(6)},
		{"0", game.ColumnInput(-1)},
		{"end", game.ExitInput()},
		{"abc", game.MalformedInput()},
		{"", game.MalformedInput()},
		{"3.5", game.MalformedInput()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := console.ParseMove(tt.input); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRenderBoard(t *testing.T) {
	b, err := domain.NewBoard(5, 5)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	moves := []struct {
		column int
		owner  domain.PlayerID
	}{
		{0, domain.First},
		{4, domain.Second},
		{4, domain.First},
	}
	for _, m := range moves {
		if _, err := domain.ApplyMove(b, m.column, m.owner); err != nil {
			t.Fatalf("ApplyMove(%d, %v): %v", m.column, m.owner, err)
		}
	}

	want := strings.Join([]string{
		" 1 2 3 4 5",
		"║ ║ ║ ║ ║ ║",
		"║ ║ ║ ║ ║ ║",
		"║ ║ ║ ║ ║ ║",
		"║ ║ ║ ║ ║o║",
		"║o║ ║ ║ ║*║",
		"╚═╩═╩═╩═╩═╝",
		"",
	}, "\n")

	if got := console.RenderBoard(b); got != want {
		t.Fatalf("board mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseLanguage(t *testing.T) {
	if got := console.ParseLanguage("not a tag!"); got != language.English {
		t.Fatalf("expected English fallback, got %v", got)
	}
	if got := console.ParseLanguage("de"); got != language.German {
		t.Fatalf("expected German, got %v", got)
	}
}

func runMatch(t *testing.T, rounds int, input string) (string, domain.Summary) {
	t.Helper()
	return runMatchIn(t, language.English, rounds, input)
}

func runMatchIn(t *testing.T, lang language.Tag, rounds int, input string) (string, domain.Summary) {
	t.Helper()
	var out bytes.Buffer
	c := console.NewConsole(strings.NewReader(input), &out, lang)

	m, err := game.NewMatch(game.MatchConfig{
		Rounds:       rounds,
		Rows:         6,
		Columns:      7,
		FirstPlayer:  "Anna",
		SecondPlayer: "Joan",
	}, c, c)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	summary, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), summary
}

func TestConsole_SingleGame(t *testing.T) {
	input := "1\nx\n0\n8\n7\n2\n7\n3\n7\n4\n"
	out, summary := runMatch(t, 1, input)

	if summary.Result != domain.ResultWinner || summary.Winner != domain.First {
		t.Fatalf("summary = %+v", summary)
	}
	for _, want := range []string{
		"Anna VS Joan\n",
		"6 X 7 board\n",
		"Single game\n",
		"Anna's turn:\n",
		"Joan's turn:\n",
		"Incorrect column number\n",
		"The column number is out of range (1 - 7)\n",
		"Player Anna won\n",
		"Game over!\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Score") {
		t.Fatalf("single game should not print a score:\n%s", out)
	}
}

func TestConsole_FullColumn(t *testing.T) {
	input := "1\n1\n1\n1\n1\n1\n1\nend\n"
	out, summary := runMatch(t, 1, input)

	if summary.Result != domain.ResultAborted {
		t.Fatalf("summary = %+v", summary)
	}
	if !strings.Contains(out, "Column 1 is full\n") {
		t.Fatalf("output missing full column message:\n%s", out)
	}
	if !strings.HasSuffix(out, "Game over!\n") {
		t.Fatalf("output should end with Game over!:\n%s", out)
	}
}

func TestConsole_MultipleGamesScore(t *testing.T) {
	win := "1\n7\n2\n7\n3\n7\n4\n"
	out, summary := runMatch(t, 2, win+win)

	if summary.Result != domain.ResultDraw {
		t.Fatalf("summary = %+v", summary)
	}
	for _, want := range []string{
		"Total 2 games\n",
		"Game #1\n",
		"Game #2\n",
		"Player Anna won\nScore\nAnna: 2 Joan: 0\n",
		"Player Joan won\nScore\nAnna: 2 Joan: 2\n",
		"The match is a draw\nGame over!\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsole_German(t *testing.T) {
	out, summary := runMatchIn(t, language.German, 2, "x\n9\nend\n")

	if summary.Result != domain.ResultAborted {
		t.Fatalf("summary = %+v", summary)
	}
	for _, want := range []string{
		"Anna gegen Joan\n",
		"Spielfeld 6 X 7\n",
		"Insgesamt 2 Spiele\n",
		"Spiel #1\n",
		"Anna ist am Zug:\n",
		"Ungültige Spaltennummer\n",
		"Die Spaltennummer liegt außerhalb des Bereichs (1 - 7)\n",
		"Spiel vorbei!\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	for _, english := range []string{"Incorrect column number", "turn:", "Game over!"} {
		if strings.Contains(out, english) {
			t.Fatalf("untranslated %q in output:\n%s", english, out)
		}
	}
}

func TestConsole_GermanSetup(t *testing.T) {
	var out bytes.Buffer
	c := console.NewConsole(strings.NewReader("4x7\n6x7\n"), &out, language.German)

	rows, columns, err := c.AskDimensions(context.Background())
	if err != nil || rows != 6 || columns != 7 {
		t.Fatalf("AskDimensions = %d, %d, %v", rows, columns, err)
	}
	text := out.String()
	for _, want := range []string{
		"Spielfeldgröße festlegen (Zeilen x Spalten)\n",
		"Die Zeilenanzahl muss zwischen 5 und 9 liegen\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestConsole_AskSetup(t *testing.T) {
	var out bytes.Buffer
	input := "Anna\n4x4\n\nmany\n3\n"
	c := console.NewConsole(strings.NewReader(input), &out, language.English)
	ctx := context.Background()

	name, err := c.AskName(ctx, console.FirstPlayerPrompt)
	if err != nil || name != "Anna" {
		t.Fatalf("AskName = %q, %v", name, err)
	}
	rows, columns, err := c.AskDimensions(ctx)
	if err != nil || rows != 6 || columns != 7 {
		t.Fatalf("AskDimensions = %d, %d, %v", rows, columns, err)
	}
	rounds, err := c.AskRounds(ctx)
	if err != nil || rounds != 3 {
		t.Fatalf("AskRounds = %d, %v", rounds, err)
	}

	text := out.String()
	if strings.Count(text, "Set the board dimensions (Rows x Columns)") != 2 {
		t.Fatalf("dimensions should be asked twice:\n%s", text)
	}
	if !strings.Contains(text, "Board rows should be from 5 to 9\n") {
		t.Fatalf("missing rows error:\n%s", text)
	}
	if !strings.Contains(text, "Invalid input\n") {
		t.Fatalf("missing rounds error:\n%s", text)
	}
}

func TestConsole_ReadAfterEOF(t *testing.T) {
	c := console.NewConsole(strings.NewReader(""), &bytes.Buffer{}, language.English)
	if _, err := c.AskName(context.Background(), "First player's name:"); err == nil {
		t.Fatal("expected error on empty input")
	}
}
