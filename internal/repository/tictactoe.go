package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/redis/go-redis/v9"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrNoWaitingGames = errors.New("no waiting public games")
)

const (
	tictactoeKeyPrefix   = "game:ttt:"
	snakeLadderKeyPrefix = "game:snl:"
)

type TicTacToeRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.TicTacToeGame) error
	GetByID(ctx context.Context, id string) (*entity.TicTacToeGame, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.TicTacToeGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbTicTacToe struct {
	client *redis.Client
}

func NewTicTacToeRepository(client *redis.Client) TicTacToeRepository {
	return &dbTicTacToe{
		client: client,
	}
}

func (that *dbTicTacToe) CreateOrUpdate(ctx context.Context, game *entity.TicTacToeGame) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := tictactoeKeyPrefix + game.ID
	err = that.client.Set(ctx, gameKey, gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbTicTacToe) GetByID(ctx context.Context, id string) (*entity.TicTacToeGame, error) {
	gameKey := tictactoeKeyPrefix + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.TicTacToeGame{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.TicTacToeGame{}, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var existingGame entity.TicTacToeGame
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.TicTacToeGame{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// GetWaitingPublicGame - scans stored sessions for a public game that still
// waits for a second player.
func (that *dbTicTacToe) GetWaitingPublicGame(ctx context.Context) (*entity.TicTacToeGame, error) {
	iter := that.client.Scan(ctx, 0, tictactoeKeyPrefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		response, err := that.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}

		var game entity.TicTacToeGame
		if err = json.Unmarshal([]byte(response), &game); err != nil {
			continue
		}

		if game.IsPublic() && game.IsWaiting() {
			return &game, nil
		}
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan games: %w", err)
	}

	return nil, ErrNoWaitingGames
}

func (that *dbTicTacToe) DeleteByID(ctx context.Context, id string) error {
	gameKey := tictactoeKeyPrefix + id

	err := that.client.Del(ctx, gameKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	return nil
}
