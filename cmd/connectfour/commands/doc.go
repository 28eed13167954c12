// Package commands defines the connectfour CLI.
//
// The root command loads configuration (an optional .env file, then
// CONNECTFOUR_* environment variables, then flags), asks for anything still
// missing on the terminal and plays the configured number of rounds.
//
// Typing "end" instead of a column stops the match. Interrupting the process
// does the same.
package commands
