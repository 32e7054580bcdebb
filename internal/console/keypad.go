package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	MarkX = "X"
	MarkO = "O"
)

// numpad layout, key 1 is the top-left square.
var keypad = map[int]entity.Move{
	1: {Row: 0, Col: 0}, 2: {Row: 0, Col: 1}, 3: {Row: 0, Col: 2},
	4: {Row: 1, Col: 0}, 5: {Row: 1, Col: 1}, 6: {Row: 1, Col: 2},
	7: {Row: 2, Col: 0}, 8: {Row: 2, Col: 1}, 9: {Row: 2, Col: 2},
}

// ParseKey - maps a key 1..9 to its board coordinate.
func ParseKey(text string) (entity.Move, error) {
	key, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: %q is not a number", apperror.ErrBadChoice, text)
	}

	move, ok := keypad[key]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: key %d is outside 1..9", apperror.ErrBadChoice, key)
	}

	return move, nil
}

// ParseMark - accepts x or o in any case.
func ParseMark(text string) (string, error) {
	switch mark := strings.ToUpper(strings.TrimSpace(text)); mark {
	case MarkX, MarkO:
		return mark, nil
	default:
		return "", fmt.Errorf("%w: mark %q", apperror.ErrBadChoice, text)
	}
}

// OtherMark - the mark left for the opponent.
func OtherMark(mark string) string {
	if mark == MarkX {
		return MarkO
	}

	return MarkX
}

// ParseYesNo - accepts y or n in any case.
func ParseYesNo(text string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: answer %q", apperror.ErrBadChoice, text)
	}
}
