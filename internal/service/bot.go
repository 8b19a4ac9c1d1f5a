package service

import (
	"errors"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/entity"
	"github.com/playtable/boardgames-backend/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.TicTacToeGame) error
}

type botService struct {
	// intn draws a uniform value in [0,n); injected so tests can pin moves
	intn func(n int) int
}

func NewBotService(intn func(n int) int) BotService {
	return &botService{
		intn: intn,
	}
}

func (that *botService) MakeTurn(game *entity.TicTacToeGame) error {
	availableCells := make([]int, 0, len(game.Board))
	for i, cell := range game.Board {
		if cell == entity.EmptyCell {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return ErrNoAvailableMoves
	}

	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	chosenCell := availableCells[that.intn(len(availableCells))]

	if err := tictactoe.MakeTurn(game, botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
