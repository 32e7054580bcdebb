package apperror

import "errors"

var (
	ErrInvalidMove = errors.New("cell is occupied or out of range")
	ErrBadChoice   = errors.New("bad choice")
	ErrAborted     = errors.New("aborted by user")
	ErrNoMoves     = errors.New("no available moves")
	ErrCacheMiss   = errors.New("search result not cached")
)
