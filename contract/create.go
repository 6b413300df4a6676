package contract

import "bingopot/sdk"

// createGameImpl allocates the next sequential game id and opens the
// game for joining. The global entry fee and its asset are copied into
// the record; later fee updates never reach this game.
func createGameImpl(payload *string, chain sdk.Chain) *string {
	if payload != nil {
		ensure(chain, *payload == "", errTooManyArgs)
	}

	sender := senderAddress(chain)
	now := blockTime(chain)
	fee, asset := entryFeeConfig(chain)

	id := getGameCount(chain) + 1
	g := &Game{
		ID:           id,
		Status:       Joining,
		StartTime:    now,
		LastDrawTime: now,
		EntryFee:     fee,
		FeeAsset:     asset,
	}

	saveGame(chain, g)
	setGameCount(chain, id)
	EmitGameCreated(chain, id, sender, fee, asset)

	ret := UInt64ToString(id)
	return &ret
}
