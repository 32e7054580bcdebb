package entity

const (
	Human    Cell = -1
	Empty    Cell = 0
	Computer Cell = +1
)

const (
	HumanWins    Score = -1
	DrawScore    Score = 0
	ComputerWins Score = +1
)

const (
	BorderMin = 0
	BorderMax = 2

	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinLines - every row, column and diagonal as (row, col) triples.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Cell is the content of a single square. Human and Computer are sign-opposite.
type Cell int8

// Score is the terminal evaluation of a position from the computer's point of view.
type Score int

// Move is a 0-based (row, col) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a fixed 3x3 grid. It is a value type: assigning a board copies it.
type Board [BoardSize][BoardSize]Cell

// Opponent - returns the other player. Empty stays Empty.
func (that Cell) Opponent() Cell {
	return -that
}

func (that Cell) String() string {
	switch that {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

func (that Cell) keyRune() byte {
	switch that {
	case Human:
		return 'h'
	case Computer:
		return 'c'
	default:
		return '.'
	}
}

// InBounds - reports whether the move addresses a square of the board.
func (that Move) InBounds() bool {
	return that.Row >= BorderMin && that.Row <= BorderMax && that.Col >= BorderMin && that.Col <= BorderMax
}

// At - returns the cell at (row, col). The coordinates must be in bounds.
func (that Board) At(row, col int) Cell {
	return that[row][col]
}

// EmptyCells - returns the coordinates of all empty squares in row-major order.
func (that Board) EmptyCells() []Move {
	cells := make([]Move, 0, CellCount)

	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				cells = append(cells, Move{Row: row, Col: col})
			}
		}
	}

	return cells
}

// IsValidMove - true iff (row, col) is in bounds and currently empty.
func (that Board) IsValidMove(row, col int) bool {
	if !(Move{Row: row, Col: col}).InBounds() {
		return false
	}

	return that[row][col] == Empty
}

// SetMove - places player's mark on (row, col) if the move is valid. The board is left untouched otherwise.
func (that *Board) SetMove(row, col int, player Cell) bool {
	if !that.IsValidMove(row, col) {
		return false
	}

	that[row][col] = player

	return true
}

// Wins - reports whether any of the eight lines is entirely player's.
func (that Board) Wins(player Cell) bool {
	for _, line := range WinLines {
		if that[line[0].Row][line[0].Col] == player &&
			that[line[1].Row][line[1].Col] == player &&
			that[line[2].Row][line[2].Col] == player {
			return true
		}
	}

	return false
}

// IsGameOver - true iff either player has won. A full board without a winner is not reported here.
func (that Board) IsGameOver() bool {
	return that.Wins(Human) || that.Wins(Computer)
}

// IsFull - true when no empty squares remain.
func (that Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == Empty {
				return false
			}
		}
	}

	return true
}

// Evaluate - +1 if the computer has won, -1 if the human has won, 0 otherwise.
func (that Board) Evaluate() Score {
	switch {
	case that.Wins(Computer):
		return ComputerWins
	case that.Wins(Human):
		return HumanWins
	default:
		return DrawScore
	}
}

// Outcome - combines the win test with the full-board test.
func (that Board) Outcome() Outcome {
	switch {
	case that.Wins(Human):
		return OutcomeHumanWins
	case that.Wins(Computer):
		return OutcomeComputerWins
	case that.IsFull():
		return OutcomeDraw
	default:
		return OutcomeInProgress
	}
}

// Key - row-major encoding of the board, e.g. "c.h......".
func (that Board) Key() string {
	key := make([]byte, 0, CellCount)

	for row := range BoardSize {
		for col := range BoardSize {
			key = append(key, that[row][col].keyRune())
		}
	}

	return string(key)
}
