package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bingopot/sdk"
)

// TestFullGame plays an entire game through the public flow: three
// players buy in at 10.000 hive, values are drawn until one of the
// boards is covered on a line, and the winner collects the pooled
// thirty hive.
func TestFullGame(t *testing.T) {
	chain := newTestChain()
	setFeeAs(t, chain, "10.000", sdk.AssetHive)

	id := createGame(t, chain)

	players := []sdk.Address{playerOne, playerTwo, playerThr}
	for _, p := range players {
		joinAs(t, chain, id, p, "10.000", sdk.AssetHive)
	}
	require.Equal(t, int64(30_000), chain.PoolBalance(sdk.AssetHive))

	boards := make([]Board, len(players))
	for i, p := range players {
		b, ok := loadBoard(chain, id, p.String())
		require.True(t, ok)
		boards[i] = b
	}

	// Draw until a line fills. Values cover a byte each tick, so a win
	// arrives long before the cap.
	winner := -1
	chain.Advance(5 * time.Minute)
	for round := 0; round < 20_000 && winner < 0; round++ {
		if round > 0 {
			chain.Advance(30 * time.Second)
		}
		drawImpl(pstr(UInt64ToString(id)), chain)
		g := loadGame(chain, id)
		for i := range boards {
			if checkWin(&boards[i], &g.Drawn) {
				winner = i
				break
			}
		}
	}
	require.GreaterOrEqual(t, winner, 0, "no board completed a line")

	// A non-winner claiming first is turned away with state intact.
	loser := (winner + 1) % len(players)
	if !checkWin(&boards[loser], &loadGame(chain, id).Drawn) {
		chain.SetSender(players[loser])
		expectAbort(t, errBingoCheckFailed, func() {
			bingoImpl(pstr(UInt64ToString(id)), chain)
		})
	}

	chain.SetSender(players[winner])
	ret := bingoImpl(pstr(UInt64ToString(id)), chain)
	require.NotNil(t, ret)
	require.Equal(t, "30.000", *ret)

	require.Equal(t, int64(0), chain.PoolBalance(sdk.AssetHive))
	require.Equal(t, int64(1_000_000+20_000), chain.BalanceOf(players[winner], sdk.AssetHive))

	g := loadGame(chain, id)
	require.Equal(t, Completed, g.Status)

	// The finished game rejects every further move.
	chain.SetSender(players[loser])
	expectAbort(t, errGameIsOver, func() {
		bingoImpl(pstr(UInt64ToString(id)), chain)
	})
	expectAbort(t, errGameIsOver, func() {
		drawImpl(pstr(UInt64ToString(id)), chain)
	})

	// And a fresh game starts cleanly alongside it.
	next := createGame(t, chain)
	require.Equal(t, id+1, next)
}
