package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/redis/go-redis/v9"
)

type SnakeLadderRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.SnakeLadderGame) error
	GetByID(ctx context.Context, id string) (*entity.SnakeLadderGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSnakeLadder struct {
	client *redis.Client
}

func NewSnakeLadderRepository(client *redis.Client) SnakeLadderRepository {
	return &dbSnakeLadder{
		client: client,
	}
}

func (that *dbSnakeLadder) CreateOrUpdate(ctx context.Context, game *entity.SnakeLadderGame) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := snakeLadderKeyPrefix + game.ID
	err = that.client.Set(ctx, gameKey, gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbSnakeLadder) GetByID(ctx context.Context, id string) (*entity.SnakeLadderGame, error) {
	gameKey := snakeLadderKeyPrefix + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.SnakeLadderGame{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.SnakeLadderGame{}, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var existingGame entity.SnakeLadderGame
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.SnakeLadderGame{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbSnakeLadder) DeleteByID(ctx context.Context, id string) error {
	gameKey := snakeLadderKeyPrefix + id

	err := that.client.Del(ctx, gameKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	return nil
}
