package contract

import "bingopot/sdk"

// joinGameImpl buys the sender into a game that is still in its join
// phase. The board is derived before the fee draw, but nothing is
// written until the draw succeeded, so a rejected pull leaves no trace
// of the join.
func joinGameImpl(payload *string, chain sdk.Chain) *string {
	in := *payload
	gameId := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	joiner := senderAddress(chain)
	g := loadGame(chain, gameId)

	// The double-join condition wins over the phase guards: a player who
	// already holds a board is turned away the same way in every phase.
	if _, joined := loadBoard(chain, gameId, joiner); joined {
		chain.Abort(errCannotJoinTwice)
	}
	ensure(chain, g.Status != Completed, errGameIsOver)
	ensure(chain, g.Status != InProgress, errGameInProgress)

	// PlayerCount is the joiner's sequence number: it salts the board so
	// simultaneous joiners of one game get distinct cards.
	board := deriveBoard(entropySample(chain), g.PlayerCount, g.ID)

	pullEntryFee(chain, g)

	saveBoard(chain, gameId, joiner, &board)
	g.PlayerCount++
	saveGame(chain, g)

	EmitPlayerJoined(chain, g.ID, joiner, g.PlayerCount)
	return nil
}
