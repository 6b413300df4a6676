package contract

import "bingopot/sdk"

// Read-only entrypoint impls. Responses are pipe-delimited fields, with
// comma-separated value lists inside a field.

// getGameImpl renders one game:
//
//	id|status|fee|asset|players|startTime|lastDrawTime|drawn count|v1,v2,...
func getGameImpl(payload *string, chain sdk.Chain) *string {
	in := *payload
	gameId := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	g := loadGame(chain, gameId)

	out := make([]byte, 0, 128)
	out = appendU64(out, g.ID)
	out = append(out, '|')
	out = appendU8(out, uint8(g.Status))
	out = append(out, '|')
	out = appendFixedPoint3(out, g.EntryFee)
	out = append(out, '|')
	out = append(out, g.FeeAsset.String()...)
	out = append(out, '|')
	out = appendU64(out, uint64(g.PlayerCount))
	out = append(out, '|')
	out = appendU64(out, g.StartTime)
	out = append(out, '|')
	out = appendU64(out, g.LastDrawTime)
	out = append(out, '|')
	values := g.Drawn.Values()
	out = appendU64(out, uint64(len(values)))
	out = append(out, '|')
	for i, v := range values {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendU8(out, v)
	}

	s := string(out)
	return &s
}

// getBoardImpl renders a player's 24 cell values as a comma-separated
// list. Payload is "<id>" for the caller's own board or "<id>|<player>".
// Aborts when the player never joined the game.
func getBoardImpl(payload *string, chain sdk.Chain) *string {
	in := *payload
	gameId := parseU64(chain, nextField(&in))
	player := nextField(&in)
	ensure(chain, in == "", errTooManyArgs)
	if player == "" {
		player = senderAddress(chain)
	}

	// Game must exist before the player check so the two conditions stay
	// distinguishable.
	loadGame(chain, gameId)

	board, joined := loadBoard(chain, gameId, player)
	ensure(chain, joined && !board.IsZero(), errNotAPlayer)

	out := make([]byte, 0, 4*BoardCells)
	for i, v := range board {
		if i > 0 {
			out = append(out, ',')
		}
		out = appendU8(out, v)
	}

	s := string(out)
	return &s
}

// getTotalGamesImpl returns the number of games created so far.
func getTotalGamesImpl(payload *string, chain sdk.Chain) *string {
	if payload != nil {
		ensure(chain, *payload == "", errTooManyArgs)
	}
	ret := UInt64ToString(getGameCount(chain))
	return &ret
}

// getEntryFeeImpl returns the current global fee as "amount|asset".
func getEntryFeeImpl(payload *string, chain sdk.Chain) *string {
	if payload != nil {
		ensure(chain, *payload == "", errTooManyArgs)
	}
	fee, asset := entryFeeConfig(chain)
	out := appendFixedPoint3(nil, fee)
	out = append(out, '|')
	out = append(out, asset.String()...)
	s := string(out)
	return &s
}

// getJoinWindowImpl returns the join window duration in seconds.
func getJoinWindowImpl(payload *string, chain sdk.Chain) *string {
	if payload != nil {
		ensure(chain, *payload == "", errTooManyArgs)
	}
	ret := UInt64ToString(joinWindow(chain))
	return &ret
}

// getTurnTimeImpl returns the minimum turn time in seconds.
func getTurnTimeImpl(payload *string, chain sdk.Chain) *string {
	if payload != nil {
		ensure(chain, *payload == "", errTooManyArgs)
	}
	ret := UInt64ToString(turnTime(chain))
	return &ret
}
