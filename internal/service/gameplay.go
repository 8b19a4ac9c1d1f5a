package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/tictactoe"
)

type GamePlayService interface {
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

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   TicTacToeService
	trackService  SnakeLadderService
	botService    BotService
	diceService   DiceService
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService TicTacToeService,
	trackService SnakeLadderService,
	botService BotService,
	diceService DiceService,
) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		trackService:  trackService,
		botService:    botService,
		diceService:   diceService,
	}
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.TicTacToeGame, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsWaiting() {
		return game, apperror.ErrGameIsNotStarted
	}

	mark := player.Mark
	if game.IsLocal() {
		// one connection drives both marks; the turn check still
		// enforces alternation
		mark = game.Turn
	}

	if err = tictactoe.MakeTurn(game, mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.TicTacToeGame, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return that.connectToGame(ctx, game, player)
}

func (that *gamePlayService) JoinWaitingPublicGame(ctx context.Context, playerID string) (*entity.TicTacToeGame, error) {
	game, err := that.gameService.GetWaitingPublicGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get waiting public game: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return that.connectToGame(ctx, game, player)
}

func (that *gamePlayService) connectToGame(ctx context.Context, game *entity.TicTacToeGame, player *entity.Player) (*entity.TicTacToeGame, error) {
	if player.GameID == game.ID {
		return game, nil
	}

	// only a waiting game has a free seat; local and bot games run from
	// the moment they are created
	if !game.IsWaiting() || len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, game.ID)
	}

	player.GameID = game.ID
	player.Mark = entity.PlayerO
	if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string) (*entity.TicTacToeGame, error) {
	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err == nil {
			return game, nil
		}

		// stale binding, fall through and start fresh
		that.logger.Debug("player bound to a missing game", "game_id", player.GameID)
	}

	game, err := that.createGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, gameType string) (*entity.TicTacToeGame, error) {
	game, updatedPlayer, err := that.gameService.CreateGame(ctx, player, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	}

	return game, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.TicTacToeGame) error {
	botPlayer := entity.NewBotPlayer(game.ID, "")

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	playerMark, botMark := game.GetRandomMarks()
	for _, player := range game.Players {
		if !player.IsBot() {
			player.Mark = playerMark
			if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
		}
	}
	botPlayer.Mark = botMark

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if botMark == entity.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// CleanupGame removes a finished session from storage and unbinds its
// players.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.TicTacToeGame) {
	log := that.logger.With("method", "CleanupGame")

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to unbind player", "player_id", player.ID, "error", err)
		}
	}

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "game_id", game.ID, "error", err)
	}
}
