package service

import "github.com/playtable/boardgames-backend/internal/snakeladder"

type DiceService interface {
	Roll() int
}

type diceService struct {
	// intn draws a uniform value in [0,n); injected so tests can pin rolls
	intn func(n int) int
}

func NewDiceService(intn func(n int) int) DiceService {
	return &diceService{
		intn: intn,
	}
}

func (that *diceService) Roll() int {
	return snakeladder.MinDice + that.intn(snakeladder.MaxDice-snakeladder.MinDice+1)
}
