package entity

const BotType = "bot"

type Player struct {
	ID     string `json:"id"`
	Mark   string `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Type   string `json:"type,omitempty"`
}

func NewBotPlayer(gameID, mark string) *Player {
	return &Player{
		ID:     "bot:" + gameID,
		Mark:   mark,
		GameID: gameID,
		Type:   BotType,
	}
}

func (that *Player) IsBot() bool {
	return that.Type == BotType
}
