package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	promptMark  = "Choose X or O\nChosen: "
	promptFirst = "First to start?[y/n]: "
	promptMove  = "Use numpad (1..9): "

	msgBadChoice = "Bad choice"
	msgBadMove   = "Bad move"
)

type searcher interface {
	BestMove(ctx context.Context, board entity.Board, player entity.Cell) (entity.Result, error)
}

type terminal interface {
	Prompt(ctx context.Context, text string) (string, error)
	Render(board entity.Board, humanMark, computerMark string)
	Clear()
	Println(a ...any)
}

// GameController owns the board of one game and alternates the human and computer turns on it.
type GameController struct {
	logger   *slog.Logger
	searcher searcher
	term     terminal
	rnd      *rand.Rand

	board        entity.Board
	humanMark    string
	computerMark string
	humanFirst   bool
	moveDelay    time.Duration
}

// NewGameController - rnd is only used for the computer's opening move on an empty board.
func NewGameController(logger *slog.Logger, searcher searcher, term terminal, rnd *rand.Rand, moveDelay time.Duration) *GameController {
	return &GameController{
		logger:   logger.With("component", "game_controller"),
		searcher: searcher,
		term:     term,
		rnd:      rnd,

		humanMark:    console.MarkX,
		computerMark: console.MarkO,
		humanFirst:   true,
		moveDelay:    moveDelay,
	}
}

// Setup - decides the marks and who starts. Empty or invalid presets are asked for interactively.
func (that *GameController) Setup(ctx context.Context, humanMark, humanFirst string) error {
	log := that.logger.With("method", "Setup")

	mark, err := console.ParseMark(humanMark)
	if err != nil {
		if humanMark != "" {
			log.Warn("ignoring preset mark", "error", err)
		}

		if mark, err = ask(ctx, that.term, promptMark, console.ParseMark); err != nil {
			return err
		}
	}

	that.humanMark = mark
	that.computerMark = console.OtherMark(mark)

	that.term.Clear()

	first, err := console.ParseYesNo(humanFirst)
	if err != nil {
		if humanFirst != "" {
			log.Warn("ignoring preset first player", "error", err)
		}

		if first, err = ask(ctx, that.term, promptFirst, console.ParseYesNo); err != nil {
			return err
		}
	}

	that.humanFirst = first

	log.Info("game set up", "human_mark", that.humanMark, "human_first", that.humanFirst)

	return nil
}

// Play - runs turns until one side wins or the board is full, then shows the result.
func (that *GameController) Play(ctx context.Context) (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	turn := entity.Computer
	if that.humanFirst {
		turn = entity.Human
	}

	for !that.board.Outcome().IsFinished() {
		var err error
		if turn == entity.Human {
			err = that.HumanTurn(ctx)
		} else {
			err = that.ComputerTurn(ctx)
		}

		if err != nil {
			return entity.OutcomeInProgress, err
		}

		turn = turn.Opponent()
	}

	outcome := that.board.Outcome()
	that.announce(outcome)

	log.Info("game finished", "outcome", outcome.String(), "board", that.board.Key())

	return outcome, nil
}

// HumanTurn - asks for keys until one of them names an empty square.
func (that *GameController) HumanTurn(ctx context.Context) error {
	if that.board.Outcome().IsFinished() {
		return nil
	}

	that.term.Clear()
	that.term.Println(fmt.Sprintf("Human turn [%s]", that.humanMark))
	that.term.Render(that.board, that.humanMark, that.computerMark)

	for {
		text, err := that.term.Prompt(ctx, promptMove)
		if err != nil {
			return fmt.Errorf("failed to read human move: %w", err)
		}

		move, err := console.ParseKey(text)
		if err != nil {
			that.term.Println(msgBadChoice)
			continue
		}

		if !that.board.SetMove(move.Row, move.Col, entity.Human) {
			that.term.Println(msgBadMove)
			continue
		}

		that.logger.Debug("human moved", "row", move.Row, "col", move.Col)

		return nil
	}
}

// ComputerTurn - opens on a random square, searches for the best move otherwise.
func (that *GameController) ComputerTurn(ctx context.Context) error {
	if that.board.Outcome().IsFinished() {
		return nil
	}

	that.term.Clear()
	that.term.Println(fmt.Sprintf("Computer turn [%s]", that.computerMark))
	that.term.Render(that.board, that.humanMark, that.computerMark)

	move, err := that.chooseMove(ctx)
	if err != nil {
		return err
	}

	if !that.board.SetMove(move.Row, move.Col, entity.Computer) {
		return fmt.Errorf("%w: computer chose (%d, %d)", apperror.ErrInvalidMove, move.Row, move.Col)
	}

	that.logger.Debug("computer moved", "row", move.Row, "col", move.Col)

	return that.pause(ctx)
}

// Board - a copy of the current board.
func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) chooseMove(ctx context.Context) (entity.Move, error) {
	cells := that.board.EmptyCells()
	if len(cells) == 0 {
		return entity.Move{}, apperror.ErrNoMoves
	}

	if len(cells) == entity.CellCount {
		return cells[that.rnd.IntN(len(cells))], nil
	}

	result, err := that.searcher.BestMove(ctx, that.board, entity.Computer)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search computer move: %w", err)
	}

	if result.IsLeaf() {
		return entity.Move{}, apperror.ErrNoMoves
	}

	return *result.Move, nil
}

func (that *GameController) pause(ctx context.Context) error {
	if that.moveDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.moveDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return apperror.ErrAborted
	case <-timer.C:
		return nil
	}
}

func (that *GameController) announce(outcome entity.Outcome) {
	that.term.Clear()

	switch outcome {
	case entity.OutcomeHumanWins:
		that.term.Println(fmt.Sprintf("Human turn [%s]", that.humanMark))
		that.term.Render(that.board, that.humanMark, that.computerMark)
		that.term.Println("YOU WIN!")
	case entity.OutcomeComputerWins:
		that.term.Println(fmt.Sprintf("Computer turn [%s]", that.computerMark))
		that.term.Render(that.board, that.humanMark, that.computerMark)
		that.term.Println("YOU LOSE!")
	default:
		that.term.Render(that.board, that.humanMark, that.computerMark)
		that.term.Println("DRAW!")
	}
}

func ask[T any](ctx context.Context, term terminal, text string, parse func(string) (T, error)) (T, error) {
	var zero T

	for {
		answer, err := term.Prompt(ctx, text)
		if err != nil {
			return zero, fmt.Errorf("failed to read answer: %w", err)
		}

		value, err := parse(answer)
		if errors.Is(err, apperror.ErrBadChoice) {
			term.Println(msgBadChoice)
			continue
		}

		return value, err
	}
}
