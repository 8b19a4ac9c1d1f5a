package service

import (
	"testing"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotService_MakeTurn(t *testing.T) {
	newBotGame := func() *entity.TicTacToeGame {
		game := entity.NewTicTacToeGame("123", entity.WithBotType)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{
			{ID: "p1", Mark: entity.PlayerX, GameID: game.ID},
			entity.NewBotPlayer(game.ID, entity.PlayerO),
		}
		return game
	}

	t.Run("Bot picks among empty cells", func(t *testing.T) {
		// Given: a bot game where X already took cell 0
		game := newBotGame()
		game.Board[0] = entity.PlayerX
		game.Turn = entity.PlayerO

		// When: the bot moves with a pinned draw of the first empty cell
		bot := NewBotService(func(n int) int {
			require.Equal(t, 8, n)
			return 0
		})
		err := bot.MakeTurn(game)

		// Then: the bot's mark lands on the first empty cell
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.Board[1])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a bot game with no empty cells
		game := newBotGame()
		for i := range game.Board {
			game.Board[i] = entity.PlayerX
		}

		// When: the bot tries to move
		bot := NewBotService(func(int) int { return 0 })
		err := bot.MakeTurn(game)

		// Then: an error ErrNoAvailableMoves must be returned
		require.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Error when no bot player is present", func(t *testing.T) {
		// Given: an ordinary two-player game
		game := entity.NewTicTacToeGame("123", entity.PublicType)
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{{ID: "p1", Mark: entity.PlayerX}}

		// When: the bot service is asked to move
		bot := NewBotService(func(int) int { return 0 })
		err := bot.MakeTurn(game)

		// Then: an error ErrBotNotFound must be returned
		require.ErrorIs(t, err, ErrBotNotFound)
	})
}

func TestDiceService_Roll(t *testing.T) {
	// Given: a dice service with a pinned draw
	t.Run("Lowest draw maps to one", func(t *testing.T) {
		dice := NewDiceService(func(n int) int {
			require.Equal(t, 6, n)
			return 0
		})
		assert.Equal(t, 1, dice.Roll())
	})

	t.Run("Highest draw maps to six", func(t *testing.T) {
		dice := NewDiceService(func(n int) int { return n - 1 })
		assert.Equal(t, 6, dice.Roll())
	})
}
