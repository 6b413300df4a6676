package contract

import "bingopot/sdk"

// codecVersion increments when the game storage encoding changes.
const codecVersion uint8 = 1

// ---------- State Keys ----------

// gameKey is the state key for one game record. Format: "g:<id>"
func gameKey(id uint64) string { return "g:" + UInt64ToString(id) }

// boardKey is the state key for one player's board. Format: "b:<id>:<addr>"
func boardKey(id uint64, player string) string {
	return "b:" + UInt64ToString(id) + ":" + player
}

// ---------- Game Counter ----------

// Game ids are sequential starting at 1; id 0 is reserved for
// "does not exist". The counter holds the id of the latest game.

func getGameCount(chain sdk.Chain) uint64 {
	ptr := chain.StateGetObject("g:count")
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64(chain, *ptr)
}

func setGameCount(chain sdk.Chain, n uint64) {
	chain.StateSetObject("g:count", UInt64ToString(n))
}

// ---------- Game Record Codec ----------

// saveGame serializes the full game record and writes it to chain state.
//
// Layout:
//
//	version | ID | Status | StartTime | LastDrawTime | EntryFee |
//	FeeAsset (u8 len + bytes) | PlayerCount | Drawn bitmap (32 bytes)
func saveGame(chain sdk.Chain, g *Game) {
	out := make([]byte, 0, 34+len(g.FeeAsset)+len(g.Drawn))

	out = append(out, codecVersion)
	out = appendU64BE(out, g.ID)
	out = append(out, byte(g.Status))
	out = appendU64BE(out, g.StartTime)
	out = appendU64BE(out, g.LastDrawTime)
	out = appendU64BE(out, g.EntryFee)
	out = appendStr8(chain, out, g.FeeAsset.String())
	out = appendU32BE(out, g.PlayerCount)
	out = append(out, g.Drawn[:]...)

	chain.StateSetObject(gameKey(g.ID), string(out))
}

// loadGame retrieves a game from state by id. Aborts when the id was
// never allocated.
func loadGame(chain sdk.Chain, id uint64) *Game {
	ptr := chain.StateGetObject(gameKey(id))
	if ptr == nil || *ptr == "" {
		chain.Abort(errGameNotCreated)
	}

	r := &rd{chain: chain, b: []byte(*ptr)}
	ensure(chain, r.u8() == codecVersion, "unsupported version")

	g := &Game{}
	g.ID = r.u64()
	g.Status = GameStatus(r.u8())
	g.StartTime = r.u64()
	g.LastDrawTime = r.u64()
	g.EntryFee = r.u64()
	g.FeeAsset = sdk.Asset(r.str8())
	g.PlayerCount = r.u32()
	copy(g.Drawn[:], r.bytes(len(g.Drawn)))
	r.mustEnd()

	return g
}

// ---------- Board Storage ----------

// saveBoard stores a player's 24 cell values as raw bytes. Boards are
// written exactly once, at join time.
func saveBoard(chain sdk.Chain, id uint64, player string, b *Board) {
	chain.StateSetObject(boardKey(id, player), string(b[:]))
}

// loadBoard returns the player's board and whether one was ever
// assigned.
func loadBoard(chain sdk.Chain, id uint64, player string) (Board, bool) {
	var b Board
	ptr := chain.StateGetObject(boardKey(id, player))
	if ptr == nil || *ptr == "" {
		return b, false
	}
	ensure(chain, len(*ptr) == BoardCells, "corrupt board data")
	copy(b[:], *ptr)
	return b, true
}
