package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	clearSequence = "\033[H\033[2J"
	separatorLine = "---------------"
)

// Console is the text front end of a game: it renders boards and reads answers line by line.
type Console struct {
	out   io.Writer
	lines <-chan string
	clear bool
}

// New - starts reading lines from in. The reader goroutine ends when in is exhausted.
func New(in io.Reader, out io.Writer, clear bool) *Console {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return &Console{
		out:   out,
		lines: lines,
		clear: clear,
	}
}

// Prompt - prints text and waits for one line. End of input and ctx cancellation both return ErrAborted.
func (that *Console) Prompt(ctx context.Context, text string) (string, error) {
	if _, err := fmt.Fprint(that.out, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", apperror.ErrAborted
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrAborted
		}

		return strings.TrimSpace(line), nil
	}
}

// Render - prints the board with the players' chosen marks.
func (that *Console) Render(board entity.Board, humanMark, computerMark string) {
	symbols := map[entity.Cell]string{
		entity.Human:    humanMark,
		entity.Computer: computerMark,
		entity.Empty:    " ",
	}

	var sb strings.Builder

	sb.WriteString("\n" + separatorLine + "\n")
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			fmt.Fprintf(&sb, "| %s |", symbols[board.At(row, col)])
		}
		sb.WriteString("\n" + separatorLine + "\n")
	}

	that.Println(sb.String())
}

// Clear - wipes the terminal, unless clearing was disabled.
func (that *Console) Clear() {
	if !that.clear {
		return
	}

	fmt.Fprint(that.out, clearSequence)
}

func (that *Console) Println(a ...any) {
	fmt.Fprintln(that.out, a...)
}

func (that *Console) Printf(format string, a ...any) {
	fmt.Fprintf(that.out, format, a...)
}
