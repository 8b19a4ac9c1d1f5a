package service

import (
	"context"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/snakeladder"
)

func (that *gamePlayService) GetOrCreateTrackGame(ctx context.Context, player *entity.Player) (*entity.SnakeLadderGame, error) {
	if player.GameID != "" {
		game, err := that.trackService.GetGameByID(ctx, player.GameID)
		if err == nil {
			return game, nil
		}

		that.logger.Debug("player bound to a missing track game", "game_id", player.GameID)
	}

	game, updatedPlayer, err := that.trackService.CreateGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create track game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

// StartRoll opens the roll window for the token whose turn it is. The
// client reveals the dice after its animation delay by sending the resolve
// action; duplicate roll requests bounce off the engine's rolling gate.
func (that *gamePlayService) StartRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	game, err := that.trackGameByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = snakeladder.StartRoll(game); err != nil {
		return game, fmt.Errorf("failed to start roll: %w", err)
	}

	if err = that.trackService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) ResolveRoll(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	game, err := that.trackGameByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	dice := that.diceService.Roll()
	if err = snakeladder.ResolveRoll(game, dice); err != nil {
		return game, fmt.Errorf("failed to resolve roll: %w", err)
	}

	if err = that.trackService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) trackGameByPlayer(ctx context.Context, playerID string) (*entity.SnakeLadderGame, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.trackService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// CleanupTrackGame removes a finished session from storage and unbinds its
// players.
func (that *gamePlayService) CleanupTrackGame(ctx context.Context, game *entity.SnakeLadderGame) {
	log := that.logger.With("method", "CleanupTrackGame")

	for _, player := range game.Players {
		player.GameID = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to unbind player", "player_id", player.ID, "error", err)
		}
	}

	if err := that.trackService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "game_id", game.ID, "error", err)
	}
}
