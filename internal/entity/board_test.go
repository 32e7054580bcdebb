package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	h = Human
	c = Computer
	e = Empty
)

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board returns all nine cells in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: all nine coordinates are returned starting at (0,0)
		expected := []Move{
			{0, 0}, {0, 1}, {0, 2},
			{1, 0}, {1, 1}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		}
		require.Equal(t, expected, cells)
	})

	t.Run("Returns exactly the empty cells of a partial board", func(t *testing.T) {
		// Given: a board with four marks
		board := Board{
			{c, e, h},
			{e, c, e},
			{h, e, e},
		}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: five unique empty coordinates are returned
		require.Len(t, cells, 5)

		seen := make(map[Move]struct{}, len(cells))
		for _, cell := range cells {
			assert.Equal(t, Empty, board.At(cell.Row, cell.Col))
			seen[cell] = struct{}{}
		}
		assert.Len(t, seen, 5)
	})

	t.Run("Full board has no empty cells", func(t *testing.T) {
		// Given: a full board with no winner
		board := Board{
			{c, h, c},
			{c, h, h},
			{h, c, c},
		}

		// Then: no empty cells remain and nobody has won
		assert.Empty(t, board.EmptyCells())
		assert.False(t, board.Wins(Human))
		assert.False(t, board.Wins(Computer))
		assert.False(t, board.IsGameOver())
		assert.True(t, board.IsFull())
		assert.Equal(t, OutcomeDraw, board.Outcome())
	})
}

func TestBoard_SetMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: the human plays the center
		ok := board.SetMove(1, 1, Human)

		// Then: only the center changes
		require.True(t, ok)
		expected := Board{
			{e, e, e},
			{e, h, e},
			{e, e, e},
		}
		assert.Equal(t, expected, board)
	})

	t.Run("Does not touch an occupied cell", func(t *testing.T) {
		// Given: a board where the computer holds the corner
		board := Board{}
		require.True(t, board.SetMove(0, 0, Computer))
		before := board

		// When: the human tries the same corner
		ok := board.SetMove(0, 0, Human)

		// Then: the move is rejected and the board is unchanged
		assert.False(t, ok)
		assert.Equal(t, before, board)
	})

	t.Run("Rejects out of range coordinates", func(t *testing.T) {
		board := Board{}

		for _, move := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			assert.False(t, board.IsValidMove(move.Row, move.Col))
			assert.False(t, board.SetMove(move.Row, move.Col, Human))
		}
		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_Wins(t *testing.T) {
	// every line filled with the player's mark must win, on an otherwise empty board
	for i, line := range WinLines {
		for _, player := range []Cell{Human, Computer} {
			board := Board{}
			for _, m := range line {
				board[m.Row][m.Col] = player
			}

			assert.True(t, board.Wins(player), "line %d, %s", i, player)
			assert.False(t, board.Wins(player.Opponent()), "line %d, %s", i, player)
			assert.True(t, board.IsGameOver())
		}
	}

	tests := []struct {
		name  string
		board Board
		want  Cell
	}{
		{
			name:  "Empty board",
			board: Board{},
			want:  Empty,
		},
		{
			name: "Two in a row is not a win",
			board: Board{
				{c, c, e},
				{h, h, e},
				{e, e, e},
			},
			want: Empty,
		},
		{
			name: "Mixed line is not a win",
			board: Board{
				{c, h, c},
				{e, e, e},
				{e, e, e},
			},
			want: Empty,
		},
		{
			name: "Human wins on the anti-diagonal",
			board: Board{
				{c, c, h},
				{e, h, e},
				{h, e, c},
			},
			want: Human,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want == Human, tt.board.Wins(Human))
			assert.Equal(t, tt.want == Computer, tt.board.Wins(Computer))
		})
	}
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Computer row gives +1", func(t *testing.T) {
		// Given: row 0 held by the computer, the rest empty
		board := Board{
			{c, c, c},
			{e, e, e},
			{e, e, e},
		}

		// Then: the computer wins and the score is +1
		assert.True(t, board.Wins(Computer))
		assert.Equal(t, ComputerWins, board.Evaluate())
		assert.Equal(t, OutcomeComputerWins, board.Outcome())
	})

	t.Run("Human column gives -1", func(t *testing.T) {
		board := Board{
			{h, c, e},
			{h, c, e},
			{h, e, e},
		}

		assert.Equal(t, HumanWins, board.Evaluate())
		assert.Equal(t, OutcomeHumanWins, board.Outcome())
	})

	t.Run("Game in progress gives 0", func(t *testing.T) {
		board := Board{
			{h, c, e},
			{e, e, e},
			{e, e, e},
		}

		assert.Equal(t, DrawScore, board.Evaluate())
		assert.Equal(t, OutcomeInProgress, board.Outcome())
		assert.False(t, board.Outcome().IsFinished())
	})
}

func TestBoard_Key(t *testing.T) {
	board := Board{
		{c, e, h},
		{e, e, e},
		{e, e, c},
	}

	assert.Equal(t, "c.h.....c", board.Key())
	assert.Equal(t, ".........", (&Board{}).Key())
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, Computer, Human.Opponent())
	assert.Equal(t, Human, Computer.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
