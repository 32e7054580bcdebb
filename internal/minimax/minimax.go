package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Minimax - returns the optimal move for player and the score the game reaches from it,
// searching depth plies. The board is passed by value, so the caller's board is never modified.
func Minimax(board entity.Board, depth int, player entity.Cell) entity.Result {
	if depth == 0 || board.IsGameOver() {
		return entity.Result{Score: board.Evaluate()}
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Result{Score: board.Evaluate()}
	}

	best := entity.Result{Score: math.MaxInt}
	if player == entity.Computer {
		best.Score = math.MinInt
	}

	for _, cell := range cells {
		next := board
		next[cell.Row][cell.Col] = player

		child := Minimax(next, depth-1, player.Opponent())

		if improves(player, child.Score, best.Score) {
			move := cell
			best = entity.Result{Move: &move, Score: child.Score}
		}
	}

	return best
}

// ties keep the first move found, so row-major order breaks them.
func improves(player entity.Cell, score, best entity.Score) bool {
	if player == entity.Computer {
		return score > best
	}

	return score < best
}
