package service

import (
	"context"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/pkg"
)

type SnakeLadderService interface {
	CreateGame(ctx context.Context, player *entity.Player) (*entity.SnakeLadderGame, *entity.Player, error)
	GetGameByID(ctx context.Context, id string) (*entity.SnakeLadderGame, error)
	UpdateGame(ctx context.Context, game *entity.SnakeLadderGame) error
	DeleteGame(ctx context.Context, gameID string) error
}

type snakeLadderRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.SnakeLadderGame) error
	GetByID(ctx context.Context, id string) (*entity.SnakeLadderGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type snakeLadderService struct {
	gameRepo snakeLadderRepo
}

func NewSnakeLadderService(gameRepo snakeLadderRepo) SnakeLadderService {
	return &snakeLadderService{
		gameRepo: gameRepo,
	}
}

// CreateGame starts a local two-token session. Both tokens are driven from
// the same connection, so the game is ongoing right away.
func (that *snakeLadderService) CreateGame(ctx context.Context, player *entity.Player) (*entity.SnakeLadderGame, *entity.Player, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewSnakeLadderGame(gameID, entity.LocalType)
	game.Status = entity.StatusOngoing

	player.GameID = gameID
	player.Mark = ""

	game.Players = []*entity.Player{player}
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, player, nil
}

func (that *snakeLadderService) GetGameByID(ctx context.Context, id string) (*entity.SnakeLadderGame, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *snakeLadderService) UpdateGame(ctx context.Context, game *entity.SnakeLadderGame) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *snakeLadderService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
