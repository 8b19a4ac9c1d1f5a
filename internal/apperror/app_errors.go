package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrRollInProgress    = errors.New("roll is already in progress")
	ErrNoPendingRoll     = errors.New("no roll is pending")
)
