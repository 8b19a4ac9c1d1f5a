package entity

const (
	// FirstCell and LastCell bound the linear track; reaching LastCell wins.
	FirstCell = 1
	LastCell  = 100

	// NoWinner marks a game where neither token reached LastCell yet.
	NoWinner = -1

	TrackPlayers = 2
)

// Portals maps a cell to the cell a token is carried to when landing on it.
// Ladders move forward, snakes move backward; the resolver does not care
// which is which.
var Portals = map[int]int{
	// ladders
	2:  23,
	6:  45,
	20: 59,
	52: 72,
	57: 96,
	71: 92,
	// snakes
	43: 17,
	50: 5,
	56: 8,
	73: 15,
	84: 58,
	87: 49,
	98: 40,
}

// SnakeLadderGame holds the full state of one snake & ladder session.
// Turn indexes into Positions and Players.
type SnakeLadderGame struct {
	ID        string    `json:"id"`
	Positions [2]int    `json:"positions"`
	Turn      int       `json:"turn"`
	LastDice  int       `json:"last_dice,omitempty"`
	Rolling   bool      `json:"rolling,omitempty"`
	Winner    int       `json:"winner"`
	Status    string    `json:"status"`
	Players   []*Player `json:"players,omitempty"`
	Type      string    `json:"type,omitempty"`
}

func NewSnakeLadderGame(id, gameType string) *SnakeLadderGame {
	return &SnakeLadderGame{
		ID:        id,
		Positions: [2]int{FirstCell, FirstCell},
		Turn:      0,
		Winner:    NoWinner,
		Status:    StatusWaiting,
		Type:      gameType,
	}
}

func (that *SnakeLadderGame) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *SnakeLadderGame) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *SnakeLadderGame) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *SnakeLadderGame) IsLocal() bool {
	return that.Type == LocalType
}

func (that *SnakeLadderGame) HasWinner() bool {
	return that.Winner != NoWinner
}
