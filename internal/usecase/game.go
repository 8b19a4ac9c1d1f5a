package usecase

import (
	"context"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
)

// GameUseCase is the surface the transports consume.
type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.TicTacToeGame, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.TicTacToeGame, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.TicTacToeGame, error)

	GetOrCreateTrackGame(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error)
	StartRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error)
	ResolveRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.TicTacToeGame, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.TicTacToeGame, error)
	JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.TicTacToeGame, error)
	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.TicTacToeGame, error)
	CleanupGame(ctx context.Context, game *entity.TicTacToeGame)

	GetOrCreateTrackGame(ctx context.Context, player *entity.Player) (*entity.SnakeLadderGame, error)
	StartRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error)
	ResolveRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error)
	CleanupTrackGame(ctx context.Context, game *entity.SnakeLadderGame)
}

type gameUseCase struct {
	playerService   playerService
	gamePlayService gamePlayService
}

func NewGameUseCase(playerService playerService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gamePlayService: gamePlayService,
	}
}

func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetOrCreateGame(ctx context.Context, playerID, gameType string) (*entity.TicTacToeGame, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.gamePlayService.GetOrCreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID, playerID string) (*entity.TicTacToeGame, error) {
	if gameID == "" {
		game, err := that.gamePlayService.JoinWaitingPublicGame(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("failed to join a waiting game: %w", err)
		}

		return game, nil
	}

	game, err := that.gamePlayService.JoinGameByID(ctx, gameID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.TicTacToeGame, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, cell)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.gamePlayService.CleanupGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}

func (that *gameUseCase) GetOrCreateTrackGame(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.gamePlayService.GetOrCreateTrackGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create track game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) StartRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	game, err := that.gamePlayService.StartRoll(ctx, playerID)
	if err != nil {
		return game, fmt.Errorf("failed to start roll: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ResolveRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	game, err := that.gamePlayService.ResolveRoll(ctx, playerID)
	if err != nil {
		return game, fmt.Errorf("failed to resolve roll: %w", err)
	}

	if game.HasWinner() {
		that.gamePlayService.CleanupTrackGame(ctx, game)

		return game, apperror.ErrGameFinished
	}

	return game, nil
}
