package usecase

import (
	"testing"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/repository"
	"github.com/playtable/boardgames-backend/internal/service"
	"github.com/playtable/boardgames-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T, st *suite.Suite, intn func(n int) int) (GameUseCase, service.PlayerService) {
	t.Helper()

	playerService := service.NewPlayerService(repository.NewPlayerRepository(st.Storage))
	gameService := service.NewTicTacToeService(repository.NewTicTacToeRepository(st.Storage))
	trackService := service.NewSnakeLadderService(repository.NewSnakeLadderRepository(st.Storage))
	botService := service.NewBotService(intn)
	diceService := service.NewDiceService(intn)

	gamePlay := service.NewGamePlayService(st.Logger, playerService, gameService, trackService, botService, diceService)

	return NewGameUseCase(playerService, gamePlay), playerService
}

func TestGameUseCase_GetOrCreatePlayer(t *testing.T) {
	ctx, st := suite.New(t)
	useCase, playerService := newUseCase(t, st, func(int) int { return 0 })

	t.Run("Creates a new player when playerID is empty", func(t *testing.T) {
		// When: calling GetOrCreatePlayer with an empty playerID
		player, err := useCase.GetOrCreatePlayer(ctx, "")

		// Then: a new player is created and persisted
		require.NoError(t, err)
		require.NotEmpty(t, player.ID)

		stored, err := playerService.GetPlayerByID(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, player.ID, stored.ID)
	})

	t.Run("Returns the existing player by id", func(t *testing.T) {
		// Given: a persisted player
		existing, err := playerService.CreatePlayer(ctx)
		require.NoError(t, err)

		// When: calling GetOrCreatePlayer with the known id
		player, err := useCase.GetOrCreatePlayer(ctx, existing.ID)

		// Then: the same player comes back
		require.NoError(t, err)
		assert.Equal(t, existing.ID, player.ID)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx, st := suite.New(t)
	useCase, playerService := newUseCase(t, st, func(int) int { return 0 })
	gameRepo := repository.NewTicTacToeRepository(st.Storage)

	// Given: a player in a local game
	player, err := useCase.GetOrCreatePlayer(ctx, "")
	require.NoError(t, err)

	game, err := useCase.GetOrCreateGame(ctx, player.ID, entity.LocalType)
	require.NoError(t, err)
	gameID := game.ID

	// When: the connection plays both marks to a top-row win
	for _, cell := range []int{0, 3, 1, 4} {
		game, err = useCase.MakeTurn(ctx, player.ID, cell)
		require.NoError(t, err)
	}

	game, err = useCase.MakeTurn(ctx, player.ID, 2)

	// Then: the terminal turn reports ErrGameFinished alongside the final state
	require.ErrorIs(t, err, apperror.ErrGameFinished)
	require.NotNil(t, game)
	assert.Equal(t, entity.PlayerX, game.Winner)
	assert.Equal(t, []int{0, 1, 2}, game.WinLine)
	assert.Equal(t, entity.PlayerX, game.Board[2])
	assert.Equal(t, entity.StatusFinished, game.Status)

	// Then: the session is gone from storage
	_, err = gameRepo.GetByID(ctx, gameID)
	assert.Equal(t, repository.ErrGameNotFound, err)

	// Then: the player is unbound and free to start a new game
	unbound, err := playerService.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Empty(t, unbound.GameID)
	assert.Empty(t, unbound.Mark)
}

func TestGameUseCase_ResolveRoll(t *testing.T) {
	// dice pinned to 3
	ctx, st := suite.New(t)
	useCase, playerService := newUseCase(t, st, func(int) int { return 2 })
	trackRepo := repository.NewSnakeLadderRepository(st.Storage)

	// Given: a track game with token 0 three cells from the finish
	player, err := useCase.GetOrCreatePlayer(ctx, "")
	require.NoError(t, err)

	game, err := useCase.GetOrCreateTrackGame(ctx, player.ID)
	require.NoError(t, err)
	gameID := game.ID

	game.Positions[0] = 97
	require.NoError(t, trackRepo.CreateOrUpdate(ctx, game))

	// When: the winning roll starts and resolves
	game, err = useCase.StartRoll(ctx, player.ID)
	require.NoError(t, err)
	require.True(t, game.Rolling)

	game, err = useCase.ResolveRoll(ctx, player.ID)

	// Then: the winning roll reports ErrGameFinished alongside the final state
	require.ErrorIs(t, err, apperror.ErrGameFinished)
	require.NotNil(t, game)
	assert.Equal(t, 100, game.Positions[0])
	assert.Equal(t, 0, game.Winner)
	assert.Equal(t, 3, game.LastDice)
	assert.Equal(t, entity.StatusFinished, game.Status)

	// Then: the session is gone from storage
	_, err = trackRepo.GetByID(ctx, gameID)
	assert.Equal(t, repository.ErrGameNotFound, err)

	// Then: the player is unbound
	unbound, err := playerService.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Empty(t, unbound.GameID)
}
