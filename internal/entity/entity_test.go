package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBotPlayer(t *testing.T) {
	// Given: a bot seated in a game
	bot := NewBotPlayer("456", PlayerO)

	// Then: the bot is bound to the game and marked as a bot
	require.Equal(t, "bot:456", bot.ID)
	require.Equal(t, "456", bot.GameID)
	require.True(t, bot.IsBot())

	// Then: a regular player is not a bot
	assert.False(t, (&Player{ID: "123"}).IsBot())
}

func TestGetRandomMarks(t *testing.T) {
	// Given: a bot game handing out marks
	game := NewTicTacToeGame("123", WithBotType)

	// Then: the two marks are always complementary
	for i := 0; i < 20; i++ {
		playerMark, botMark := game.GetRandomMarks()
		require.NotEqual(t, playerMark, botMark)
		assert.Contains(t, []string{PlayerX, PlayerO}, playerMark)
		assert.Contains(t, []string{PlayerX, PlayerO}, botMark)
	}
}

func TestSnakeLadderGame_Portals(t *testing.T) {
	// Then: every ladder climbs and every snake falls
	for src, dst := range Portals {
		require.NotEqual(t, src, dst)
		assert.GreaterOrEqual(t, dst, FirstCell)
		assert.LessOrEqual(t, dst, LastCell)
	}

	// Then: no portal starts on the first or last cell
	_, onFirst := Portals[FirstCell]
	_, onLast := Portals[LastCell]
	assert.False(t, onFirst)
	assert.False(t, onLast)
}
