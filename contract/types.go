package contract

import "bingopot/sdk"

// ---------- Types & Constants ----------

// GameStatus indicates where a game sits in its lifecycle.
// Transitions only ever move forward; Completed is terminal.
type GameStatus uint8

const (
	Joining    GameStatus = 0 // created, players may still buy in
	InProgress GameStatus = 1 // at least one value drawn, no more joins
	Completed  GameStatus = 2 // winner paid out
)

// BoardCells is the number of cells on a player board: a 5x5 card with
// the center kept as a permanent free space.
const BoardCells = 24

// Board is a player's fixed card, one value per cell (0..255).
// Assigned once at join time and never regenerated. The all-zero board
// doubles as the "never joined" sentinel in storage.
type Board [BoardCells]byte

// IsZero reports whether the board is the unset sentinel.
func (b *Board) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// DrawnSet is the membership bitmap of values drawn so far, one bit per
// possible value. It only ever grows until the game completes; inserting
// an already-drawn value is a no-op.
type DrawnSet [32]byte

// Insert marks v as drawn.
func (d *DrawnSet) Insert(v byte) {
	d[v/8] |= 1 << (v % 8)
}

// Has reports whether v has been drawn.
func (d *DrawnSet) Has(v byte) bool {
	return d[v/8]&(1<<(v%8)) != 0
}

// Count returns the number of distinct drawn values.
func (d *DrawnSet) Count() int {
	n := 0
	for _, b := range d {
		for b != 0 {
			n += int(b & 1)
			b >>= 1
		}
	}
	return n
}

// Values lists the drawn values in ascending order.
func (d *DrawnSet) Values() []byte {
	out := make([]byte, 0, 16)
	for v := 0; v < 256; v++ {
		if d.Has(byte(v)) {
			out = append(out, byte(v))
		}
	}
	return out
}

// Game is the full per-round state persisted via the binary codec.
//
// EntryFee and FeeAsset are value snapshots of the global configuration
// taken at creation; later admin updates never touch running games.
// PlayerCount doubles as the join sequence salt for board derivation and
// as the payout multiplier.
type Game struct {
	ID           uint64
	Status       GameStatus
	StartTime    uint64 // unix seconds, creation block time
	LastDrawTime uint64 // unix seconds, updated on every draw
	EntryFee     uint64 // fixed-point, 3 decimal places
	FeeAsset     sdk.Asset
	PlayerCount  uint32
	Drawn        DrawnSet
}

// ---------- Rejection conditions ----------

// Every guard violation aborts with one of these messages so callers can
// tell the conditions apart.
const (
	errGameNotCreated   = "game not created"
	errGameIsOver       = "game is over"
	errGameInProgress   = "game in progress"
	errCannotJoinTwice  = "cannot join twice"
	errGameNotStarted   = "game not started"
	errWaitForNextTurn  = "wait for next turn"
	errNotAPlayer       = "not a player"
	errBingoCheckFailed = "bingo check failed"
	errIntentMissing    = "intent missing"
	errWrongFeeToken    = "wrong fee token"
	errFeeNotCovered    = "entry fee not covered"
	errOwnerOnly        = "owner only"
	errTooManyArgs      = "too many arguments"
)
