package contract

import "bingopot/sdk"

// drawImpl reveals one value for the game. The first draw closes the
// join phase and is gated on the join window having elapsed since
// creation; every later draw is gated on the minimum turn time since
// the previous one. Gates are minimum-elapsed checks only - a draw can
// be arbitrarily late, never early.
func drawImpl(payload *string, chain sdk.Chain) *string {
	in := *payload
	gameId := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	g := loadGame(chain, gameId)
	ensure(chain, g.Status != Completed, errGameIsOver)

	now := blockTime(chain)
	if g.Status == Joining {
		ensure(chain, now >= g.StartTime+joinWindow(chain), errGameNotStarted)
	} else {
		ensure(chain, now >= g.LastDrawTime+turnTime(chain), errWaitForNextTurn)
	}

	value := drawValue(entropySample(chain))
	g.Drawn.Insert(value)
	g.LastDrawTime = now
	g.Status = InProgress
	saveGame(chain, g)

	EmitValueDrawn(chain, g.ID, value, g.Drawn.Count())

	ret := UInt64ToString(uint64(value))
	return &ret
}
