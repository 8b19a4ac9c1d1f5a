package service

import (
	"context"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/pkg"
)

type TicTacToeService interface {
	CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.TicTacToeGame, *entity.Player, error)
	GetGameByID(ctx context.Context, id string) (*entity.TicTacToeGame, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.TicTacToeGame, error)
	UpdateGame(ctx context.Context, game *entity.TicTacToeGame) error
	DeleteGame(ctx context.Context, gameID string) error
}

type tictactoeRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.TicTacToeGame) error
	GetByID(ctx context.Context, id string) (*entity.TicTacToeGame, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.TicTacToeGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type tictactoeService struct {
	gameRepo tictactoeRepo
}

func NewTicTacToeService(gameRepo tictactoeRepo) TicTacToeService {
	return &tictactoeService{
		gameRepo: gameRepo,
	}
}

func (that *tictactoeService) CreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.TicTacToeGame, *entity.Player, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewTicTacToeGame(gameID, gameType)

	player.GameID = gameID
	player.Mark = entity.PlayerX

	game.Players = []*entity.Player{player}

	// a local game has no second connection to wait for
	if game.IsLocal() {
		game.Status = entity.StatusOngoing
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("failed to create game from storage: %w", err)
	}

	return game, player, nil
}

func (that *tictactoeService) GetGameByID(ctx context.Context, id string) (*entity.TicTacToeGame, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *tictactoeService) GetWaitingPublicGame(ctx context.Context) (*entity.TicTacToeGame, error) {
	game, err := that.gameRepo.GetWaitingPublicGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve waiting public game from storage: %w", err)
	}

	return game, nil
}

func (that *tictactoeService) UpdateGame(ctx context.Context, game *entity.TicTacToeGame) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *tictactoeService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}
