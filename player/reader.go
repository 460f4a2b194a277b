package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

const quitCommand = "q"

// LineReader reads one move's worth of input at a time.
type LineReader interface {
	// NextLine returns the next trimmed line. It returns ErrQuit when the user
	// asks to quit, or the input ends.
	NextLine() (string, error)
}

func checkQuit(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == quitCommand {
		return "", ErrQuit
	}
	return line, nil
}

// BufLineReader reads lines from any reader, e.g. piped input.
type BufLineReader struct {
	r *bufio.Reader
}

func NewBufLineReader(r io.Reader) *BufLineReader {
	return &BufLineReader{r: bufio.NewReader(r)}
}

func (b *BufLineReader) NextLine() (string, error) {
	line, err := b.r.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return "", ErrQuit
	case err != nil && !errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return checkQuit(line)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// TermLineReader reads lines from an interactive terminal with line editing
// and history.
type TermLineReader struct {
	l *readline.Instance
}

func NewTermLineReader(prompt string) (*TermLineReader, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         "/tmp/abstract-game.readline.tmp",
		EOFPrompt:           quitCommand,
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return &TermLineReader{l: l}, nil
}

func (t *TermLineReader) NextLine() (string, error) {
	line, err := t.l.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", ErrQuit
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return checkQuit(line)
}

func (t *TermLineReader) Close() error {
	return t.l.Close()
}
