package contract

import "bingopot/sdk"

// bingoImpl lets a player claim the pot. The win check runs against the
// caller's immutable board and the game's drawn-value set; on success
// the entire pool (snapshotted fee times player count) is pushed to the
// caller and the game completes for good. The payout transfer happens
// before the completion write: an aborted push must not mark the game
// over, and a completed game must never pay twice.
func bingoImpl(payload *string, chain sdk.Chain) *string {
	in := *payload
	gameId := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	caller := senderAddress(chain)
	g := loadGame(chain, gameId)
	ensure(chain, g.Status != Completed, errGameIsOver)

	board, joined := loadBoard(chain, gameId, caller)
	ensure(chain, joined && !board.IsZero(), errNotAPlayer)

	// A failed check mutates nothing; the caller may try again after
	// further draws.
	ensure(chain, checkWin(&board, &g.Drawn), errBingoCheckFailed)

	payout := g.EntryFee * uint64(g.PlayerCount)
	if payout > 0 {
		chain.HiveTransfer(sdk.Address(caller), int64(payout), g.FeeAsset)
	}

	g.Status = Completed
	saveGame(chain, g)

	EmitGameOver(chain, g.ID, caller, payout, g.FeeAsset)

	ret := string(appendFixedPoint3(nil, payout))
	return &ret
}
