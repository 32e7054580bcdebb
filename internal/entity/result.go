package entity

const (
	OutcomeInProgress Outcome = iota
	OutcomeHumanWins
	OutcomeComputerWins
	OutcomeDraw
)

// Outcome is the state of a game as seen by the turn controller.
type Outcome int

// Result is what a search returns: the recommended move and the score reached under optimal play.
// Move is nil for a leaf evaluation.
type Result struct {
	Move  *Move `json:"move,omitempty"`
	Score Score `json:"score"`
}

// IsLeaf - true when the result carries no move.
func (that Result) IsLeaf() bool {
	return that.Move == nil
}

func (that Outcome) IsFinished() bool {
	return that != OutcomeInProgress
}

func (that Outcome) String() string {
	switch that {
	case OutcomeHumanWins:
		return "human_wins"
	case OutcomeComputerWins:
		return "computer_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "in_progress"
	}
}
