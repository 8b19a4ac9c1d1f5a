package entity

import "math/rand"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	LocalType   = "local"
	PublicType  = "public"
	WithBotType = "bot"
)

// TicTacToeGame holds the full state of one tic-tac-toe session.
// Cell index is row*3+col, zero-based.
type TicTacToeGame struct {
	ID      string    `json:"id"`
	Board   [9]string `json:"board"`
	Turn    string    `json:"player_turn"`
	Winner  string    `json:"winner,omitempty"`
	WinLine []int     `json:"win_line,omitempty"`
	Status  string    `json:"status"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewTicTacToeGame(id, gameType string) *TicTacToeGame {
	return &TicTacToeGame{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

func (that *TicTacToeGame) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *TicTacToeGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *TicTacToeGame) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *TicTacToeGame) IsPublic() bool {
	return that.Type == PublicType
}

func (that *TicTacToeGame) IsLocal() bool {
	return that.Type == LocalType
}

func (that *TicTacToeGame) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *TicTacToeGame) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}
