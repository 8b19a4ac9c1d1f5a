package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
)

func (that *Server) handleNewTrackGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewTrackGame")

	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Player is required")
	}

	that.registerConnection(payloadReq.Player.ID, conn)

	game, err := that.gameUseCase.GetOrCreateTrackGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get track game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	that.broadcastTrackGame(msg.Action, game)

	log.Info("Player started a track game", "gameID", game.ID)

	return nil
}

func (that *Server) handleTrackRoll(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleTrackRoll")

	playerID, err := that.trackPlayerID(msg, conn)
	if err != nil {
		return err
	}

	log = log.With("playerID", playerID)

	game, err := that.gameUseCase.StartRoll(ctx, playerID)

	switch {
	case errors.Is(err, apperror.ErrRollInProgress),
		errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, apperror.ErrGameFinished):
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to start roll", "error", err)
		return that.sendErrorResponse(conn, msg.Action, fmt.Sprintf("failed to start roll: %v", err))
	}

	that.broadcastTrackGame(msg.Action, game)

	log.Info("Roll started", "gameID", game.ID)

	return nil
}

func (that *Server) handleTrackRollResolve(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleTrackRollResolve")

	playerID, err := that.trackPlayerID(msg, conn)
	if err != nil {
		return err
	}

	log = log.With("playerID", playerID)

	game, err := that.gameUseCase.ResolveRoll(ctx, playerID)

	switch {
	case errors.Is(err, apperror.ErrGameFinished) && game != nil && game.HasWinner():
		// winning roll: the final positions still go out
		that.broadcastTrackGame(msg.Action, game)

		log.Info("Track game finished", "gameID", game.ID, "winner", game.Winner)

		return nil
	case errors.Is(err, apperror.ErrNoPendingRoll), errors.Is(err, apperror.ErrGameFinished):
		return that.sendErrorResponse(conn, msg.Action, err.Error())
	case err != nil:
		log.Error("failed to resolve roll", "error", err)
		return that.sendErrorResponse(conn, msg.Action, fmt.Sprintf("failed to resolve roll: %v", err))
	}

	that.broadcastTrackGame(msg.Action, game)

	log.Info("Roll resolved", "gameID", game.ID, "dice", game.LastDice)

	return nil
}

var errMissingPlayer = errors.New("player is missing in payload")

func (that *Server) trackPlayerID(msg *Message, conn *websocket.Conn) (string, error) {
	var payloadReq Payload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		if err := that.sendErrorResponse(conn, msg.Action, "Player is required"); err != nil {
			return "", err
		}

		return "", errMissingPlayer
	}

	that.registerConnection(payloadReq.Player.ID, conn)

	return payloadReq.Player.ID, nil
}

func (that *Server) broadcastTrackGame(action string, game *entity.SnakeLadderGame) {
	log := that.logger.With("method", "broadcastTrackGame", "gameID", game.ID)

	for _, player := range game.Players {
		conn, ok := that.connectionByPlayer(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{
			Player:    player,
			TrackGame: game,
		}

		if err := that.sendMessage(conn, action, payloadResp); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}
