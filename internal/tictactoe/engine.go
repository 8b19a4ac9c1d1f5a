package tictactoe

import (
	"errors"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	// WinCombos lists the 8 winning lines in fixed order: rows, columns,
	// diagonals. EvaluateBoard reports the first matching line.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

func MakeTurn(game *entity.TicTacToeGame, player string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board[cell] = player
	updateGameStatus(game, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.TicTacToeGame, playerTurn string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return ErrInvalidCell
	}

	if game.Turn != playerTurn {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move. The turn flips
// only when the game continues; a terminal move leaves it in place.
func updateGameStatus(game *entity.TicTacToeGame, player string) {
	winner, line := EvaluateBoard(game.Board)

	switch winner {
	case entity.PlayerX, entity.PlayerO:
		game.Winner = winner
		game.WinLine = []int{line[0], line[1], line[2]}
		game.Status = entity.StatusFinished
	case entity.PlayerTie:
		game.Winner = entity.PlayerTie
		game.Status = entity.StatusFinished
	default:
		game.Turn = toggleMark(player)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// EvaluateBoard scans the winning lines and returns the result for the
// given board: a player mark with the completed line, PlayerTie when the
// board is full with no winner, or an empty string while the game goes on.
func EvaluateBoard(board [9]string) (string, [3]int) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, combo
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return "", [3]int{}
		}
	}

	return entity.PlayerTie, [3]int{}
}
