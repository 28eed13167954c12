package console

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prompts used by the setup command.
const (
	Title              = "Connect Four"
	FirstPlayerPrompt  = "First player's name:"
	SecondPlayerPrompt = "Second player's name:"
)

// Message keys. The English text doubles as the key and the fallback.
const (
	msgAskDimensions     = "Set the board dimensions (Rows x Columns)"
	msgDefaultDimensions = "Press Enter for default (6 x 7)"
	msgAskRounds         = "Do you want to play single or multiple games?"
	msgSingleGameHint    = "For a single game, input 1 or press Enter"
	msgRoundsPrompt      = "Input a number of games:"

	msgInvalidInput    = "Invalid input"
	msgRowsRange       = "Board rows should be from 5 to 9"
	msgColumnsRange    = "Board columns should be from 5 to 9"
	msgIncorrectColumn = "Incorrect column number"
	msgOutOfRange      = "The column number is out of range (1 - %d)"
	msgColumnFull      = "Column %d is full"

	msgVersus      = "%s VS %s"
	msgBoardSize   = "%d X %d board"
	msgTotalGames  = "Total %d games"
	msgSingleGame  = "Single game"
	msgGameNumber  = "Game #%d"
	msgTurn        = "%s's turn:"
	msgPlayerWon   = "Player %s won"
	msgRoundDraw   = "It is a draw"
	msgScore       = "Score"
	msgScoreLine   = "%s: %d %s: %d"
	msgMatchWinner = "%s won the match"
	msgMatchDraw   = "The match is a draw"
	msgGameOver    = "Game over!"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		Title:              "Vier gewinnt",
		FirstPlayerPrompt:  "Name des ersten Spielers:",
		SecondPlayerPrompt: "Name des zweiten Spielers:",

		msgAskDimensions:     "Spielfeldgröße festlegen (Zeilen x Spalten)",
		msgDefaultDimensions: "Enter drücken für den Standard (6 x 7)",
		msgAskRounds:         "Ein einzelnes Spiel oder mehrere Spiele?",
		msgSingleGameHint:    "Für ein einzelnes Spiel 1 eingeben oder Enter drücken",
		msgRoundsPrompt:      "Anzahl der Spiele eingeben:",

		msgInvalidInput:    "Ungültige Eingabe",
		msgRowsRange:       "Die Zeilenanzahl muss zwischen 5 und 9 liegen",
		msgColumnsRange:    "Die Spaltenanzahl muss zwischen 5 und 9 liegen",
		msgIncorrectColumn: "Ungültige Spaltennummer",
		msgOutOfRange:      "Die Spaltennummer liegt außerhalb des Bereichs (1 - %d)",
		msgColumnFull:      "Spalte %d ist voll",

		msgVersus:      "%s gegen %s",
		msgBoardSize:   "Spielfeld %d X %d",
		msgTotalGames:  "Insgesamt %d Spiele",
		msgSingleGame:  "Einzelspiel",
		msgGameNumber:  "Spiel #%d",
		msgTurn:        "%s ist am Zug:",
		msgPlayerWon:   "Spieler %s hat gewonnen",
		msgRoundDraw:   "Unentschieden",
		msgScore:       "Punktestand",
		msgMatchWinner: "%s gewinnt das Match",
		msgMatchDraw:   "Das Match endet unentschieden",
		msgGameOver:    "Spiel vorbei!",
	},
}

func init() {
	if err := registerTranslations(); err != nil {
		panic(err)
	}
}

// registerTranslations adds every translation to the default x/text catalog.
func registerTranslations() error {
	for tag, messages := range translations {
		for key, text := range messages {
			if err := message.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s message %q: %w", tag, key, err)
			}
		}
	}
	return nil
}
