package websocket

import (
	"encoding/json"

	"github.com/playtable/boardgames-backend/internal/entity"
)

// Message is the envelope for every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries request fields and response state. Unused fields stay
// empty on the wire.
type Payload struct {
	Player    *entity.Player          `json:"player,omitempty"`
	Game      *entity.TicTacToeGame   `json:"game,omitempty"`
	TrackGame *entity.SnakeLadderGame `json:"track_game,omitempty"`
	Cell      *int                    `json:"cell,omitempty"`
	Error     string                  `json:"error,omitempty"`
}
