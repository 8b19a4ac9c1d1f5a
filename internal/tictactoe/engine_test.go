package tictactoe

import (
	"testing"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// Given: create a new game
	actualGame := entity.NewTicTacToeGame("123", entity.PublicType)

	// Then: the game state should correspond to the expected initial state
	expectedGame := &entity.TicTacToeGame{
		ID:     "123",
		Board:  [9]string{"", "", "", "", "", "", "", "", ""},
		Turn:   entity.PlayerX,
		Winner: "",
		Status: entity.StatusWaiting,
		Type:   entity.PublicType,
	}

	require.Equal(t, expectedGame, actualGame)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: player X makes a turn
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		require.Equal(t, entity.PlayerX, game.Board[0])
		require.Equal(t, entity.PlayerO, game.Turn)
		require.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: new game with player X's queue
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: player X moves to cell 0
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		err = MakeTurn(game, entity.PlayerO, 0)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, ErrCellOccupied)

		// Then: the game state remains unchanged
		require.Equal(t, entity.PlayerX, game.Board[0])
		require.Equal(t, entity.PlayerO, game.Turn)
		require.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: player O tries to make a move when it is player X's turn
		err := MakeTurn(game, entity.PlayerO, 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// Then: the game state remains unchanged
		require.Equal(t, [9]string{}, game.Board)
		require.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: an invalid cell index is passed (greater than the range)
		err := MakeTurn(game, entity.PlayerX, 20)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: negative cell index is transmitted
		err := MakeTurn(game, entity.PlayerX, -1)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := &entity.TicTacToeGame{
			Board:  [9]string{entity.PlayerX, entity.PlayerX, entity.PlayerX, "", entity.PlayerO, "", "", entity.PlayerO, ""},
			Status: entity.StatusFinished,
			Turn:   entity.PlayerO,
		}

		// When: player O tries to make a move after the game is over
		err := MakeTurn(game, entity.PlayerO, 3)

		// Then: an error ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move records line and keeps turn", func(t *testing.T) {
		// Given: a game one move away from a top-row win
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing

		// When: X 0, O 3, X 1, O 4, X 2
		moves := []struct {
			mark string
			cell int
		}{
			{entity.PlayerX, 0},
			{entity.PlayerO, 3},
			{entity.PlayerX, 1},
			{entity.PlayerO, 4},
			{entity.PlayerX, 2},
		}
		for _, move := range moves {
			require.NoError(t, MakeTurn(game, move.mark, move.cell))
		}

		// Then: X wins with the top row and the turn does not flip
		require.Equal(t, entity.PlayerX, game.Winner)
		require.Equal(t, []int{0, 1, 2}, game.WinLine)
		require.Equal(t, entity.StatusFinished, game.Status)
		require.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Last move fills the board into a tie", func(t *testing.T) {
		// Given: a full board except one cell, no winning line possible
		game := &entity.TicTacToeGame{
			Board:  [9]string{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, ""},
			Status: entity.StatusOngoing,
			Turn:   entity.PlayerO,
		}

		// When: player O fills the last cell
		err := MakeTurn(game, entity.PlayerO, 8)
		require.NoError(t, err)

		// Then: the game is a tie with no winning line
		assert.Equal(t, entity.PlayerTie, game.Winner)
		assert.Empty(t, game.WinLine)
		assert.Equal(t, entity.StatusFinished, game.Status)
	})
}

func TestGame_EvaluateBoard(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a game where player X has a winning combination
		board := [9]string{entity.PlayerX, entity.PlayerO, "", entity.PlayerX, entity.PlayerO, "", entity.PlayerX, "", ""}

		// When: evaluate the board
		winner, line := EvaluateBoard(board)

		// Then: player X should be declared the winner on the left column
		require.Equal(t, entity.PlayerX, winner)
		require.Equal(t, [3]int{0, 3, 6}, line)
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a game where there is no winner yet
		board := [9]string{entity.PlayerX, entity.PlayerO, entity.PlayerX, "", entity.PlayerO, "", entity.PlayerX, "", ""}

		// When: evaluate the board
		winner, _ := EvaluateBoard(board)

		// Then: the game should continue (no winner)
		require.Equal(t, "", winner)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		board := [9]string{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX}

		// When: evaluate the board
		winner, _ := EvaluateBoard(board)

		// Then: the game should be declared a tie
		assert.Equal(t, entity.PlayerTie, winner)
	})

	t.Run("First matching line wins the scan", func(t *testing.T) {
		// Given: a pathological board where two lines are complete
		board := [9]string{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, "",
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
		}

		// When: evaluate the board
		winner, line := EvaluateBoard(board)

		// Then: the top row is reported because rows are scanned first
		require.Equal(t, entity.PlayerX, winner)
		require.Equal(t, [3]int{0, 1, 2}, line)
	})
}
