package snakeladder

import (
	"errors"
	"fmt"

	"github.com/playtable/boardgames-backend/internal/apperror"
	"github.com/playtable/boardgames-backend/internal/entity"
)

const (
	MinDice = 1
	MaxDice = 6

	// maxPortalHops bounds portal chain resolution. The shipped table has
	// no cycles, so hitting the cap means a broken configuration.
	maxPortalHops = 16
)

var (
	ErrInvalidDice = errors.New("dice value out of range")
	ErrPortalCycle = errors.New("portal chain does not terminate")
)

// StartRoll begins the two-phase roll for the player whose turn it is.
// Between StartRoll and ResolveRoll no other roll may be started; the
// client owns the reveal delay.
func StartRoll(game *entity.SnakeLadderGame) error {
	if game.IsWaiting() {
		return apperror.ErrGameIsNotStarted
	}

	if game.IsFinished() || game.HasWinner() {
		return apperror.ErrGameFinished
	}

	if game.Rolling {
		return apperror.ErrRollInProgress
	}

	game.Rolling = true

	return nil
}

// ResolveRoll completes a pending roll with the given dice value. A move
// past the last cell is discarded, portals carry the token to their fixed
// point, and landing exactly on the last cell wins without flipping the
// turn.
func ResolveRoll(game *entity.SnakeLadderGame, dice int) error {
	if game.IsFinished() || game.HasWinner() {
		return apperror.ErrGameFinished
	}

	if !game.Rolling {
		return apperror.ErrNoPendingRoll
	}

	if dice < MinDice || dice > MaxDice {
		return fmt.Errorf("%w: %d", ErrInvalidDice, dice)
	}

	landed := game.Positions[game.Turn]
	if candidate := landed + dice; candidate <= entity.LastCell {
		resolved, err := resolvePortals(candidate)
		if err != nil {
			return err
		}

		landed = resolved
	}

	game.LastDice = dice
	game.Rolling = false
	game.Positions[game.Turn] = landed

	if game.Positions[game.Turn] == entity.LastCell {
		game.Winner = game.Turn
		game.Status = entity.StatusFinished

		return nil
	}

	game.Turn = toggleTurn(game.Turn)

	return nil
}

func toggleTurn(turn int) int {
	return 1 - turn
}

// resolvePortals - follows snake and ladder mappings until the token rests
// on a cell with no mapping.
func resolvePortals(pos int) (int, error) {
	for hop := 0; hop < maxPortalHops; hop++ {
		next, ok := entity.Portals[pos]
		if !ok {
			return pos, nil
		}

		pos = next
	}

	return 0, fmt.Errorf("%w: stuck at cell %d", ErrPortalCycle, pos)
}
