// Package console is the terminal front end: it asks for the game setup,
// reads column choices and prints the board and results.
package console

import (
	"bufio"
	"context"
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Console implements game.PlayerInput and game.Notifier over a terminal.
type Console struct {
	lines   *lineReader
	out     io.Writer
	printer *message.Printer

	// writeMu keeps prints from interleaving
	writeMu sync.Mutex

	// filled in from the session_start message
	names   [3]string
	columns int
}

func NewConsole(in io.Reader, out io.Writer, lang language.Tag) *Console {
	return &Console{
		lines:   newLineReader(in),
		out:     out,
		printer: message.NewPrinter(lang),
	}
}

// ParseLanguage falls back to English for unknown tags.
func ParseLanguage(tag string) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	return parsed
}

// line looks key up in the catalog for the console language and prints it
// on its own line.
func (c *Console) line(key message.Reference, args ...any) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.printer.Fprintf(c.out, key, args...)
	io.WriteString(c.out, "\n")
}

// write prints text as is.
func (c *Console) write(text string) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	io.WriteString(c.out, text)
}

// Say prints a catalog message such as Title.
func (c *Console) Say(key string) {
	c.line(key)
}

// lineReader scans in the background so a pending read can be abandoned
// when the context is cancelled.
type lineReader struct {
	lines chan string
	err   error // set before lines is closed
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lr.lines <- scanner.Text()
		}
		lr.err = scanner.Err()
		if lr.err == nil {
			lr.err = io.EOF
		}
		close(lr.lines)
	}()
	return lr
}

func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			return "", lr.err
		}
		return line, nil
	}
}
