package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bingopot/sdk"
)

// markWinning rewrites the game's drawn set so every value on the
// player's stored board counts as drawn.
func markWinning(t *testing.T, chain sdk.Chain, id uint64, player sdk.Address) {
	t.Helper()
	board, ok := loadBoard(chain, id, player.String())
	require.True(t, ok)
	g := loadGame(chain, id)
	for _, v := range board {
		g.Drawn.Insert(v)
	}
	g.Status = InProgress
	saveGame(chain, g)
}

func TestBingoPaysPooledFees(t *testing.T) {
	chain := newTestChain()
	setFeeAs(t, chain, "10.000", sdk.AssetHive)
	id := createGame(t, chain)
	joinAs(t, chain, id, playerOne, "10.000", sdk.AssetHive)
	joinAs(t, chain, id, playerTwo, "10.000", sdk.AssetHive)
	joinAs(t, chain, id, playerThr, "10.000", sdk.AssetHive)

	markWinning(t, chain, id, playerTwo)

	chain.SetSender(playerTwo)
	ret := bingoImpl(pstr(UInt64ToString(id)), chain)
	require.NotNil(t, ret)
	require.Equal(t, "30.000", *ret)

	require.Equal(t, int64(0), chain.PoolBalance(sdk.AssetHive))
	require.Equal(t, int64(1_000_000+20_000), chain.BalanceOf(playerTwo, sdk.AssetHive))
	require.Equal(t, Completed, loadGame(chain, id).Status)
}

func TestBingoNotAPlayer(t *testing.T) {
	chain := newTestChain()
	id := createGame(t, chain)
	joinAs(t, chain, id, playerOne, "1.000", sdk.AssetHive)

	chain.SetSender(playerTwo)
	expectAbort(t, errNotAPlayer, func() {
		bingoImpl(pstr(UInt64ToString(id)), chain)
	})
}

func TestBingoCheckFailedLeavesGameRunning(t *testing.T) {
	chain := newTestChain()
	id := createGame(t, chain)
	joinAs(t, chain, id, playerOne, "1.000", sdk.AssetHive)
	drawOnce(t, chain, id, 5*time.Minute)

	before := chain.Snapshot()
	chain.SetSender(playerOne)
	expectAbort(t, errBingoCheckFailed, func() {
		bingoImpl(pstr(UInt64ToString(id)), chain)
	})
	require.Equal(t, before, chain.Snapshot())
	require.Equal(t, InProgress, loadGame(chain, id).Status)
}

func TestBingoPaysOnlyOnce(t *testing.T) {
	chain := newTestChain()
	id := createGame(t, chain)
	joinAs(t, chain, id, playerOne, "1.000", sdk.AssetHive)
	markWinning(t, chain, id, playerOne)

	chain.SetSender(playerOne)
	bingoImpl(pstr(UInt64ToString(id)), chain)

	expectAbort(t, errGameIsOver, func() {
		bingoImpl(pstr(UInt64ToString(id)), chain)
	})
	expectAbort(t, errGameIsOver, func() {
		drawImpl(pstr(UInt64ToString(id)), chain)
	})
	chain.SetSender(playerTwo)
	chain.Credit(playerTwo, 1_000_000, sdk.AssetHive)
	chain.AllowTransfer("1.000", sdk.AssetHive)
	expectAbort(t, errGameIsOver, func() {
		joinGameImpl(pstr(UInt64ToString(id)), chain)
	})
}

func TestBingoUnknownGame(t *testing.T) {
	chain := newTestChain()
	chain.SetSender(playerOne)
	expectAbort(t, errGameNotCreated, func() {
		bingoImpl(pstr("9"), chain)
	})
}

func TestBingoFreeGamePaysNothing(t *testing.T) {
	chain := newTestChain()
	setFeeAs(t, chain, "0.000", sdk.AssetHive)
	id := createGame(t, chain)

	chain.SetSender(playerOne)
	joinGameImpl(pstr(UInt64ToString(id)), chain)
	markWinning(t, chain, id, playerOne)

	ret := bingoImpl(pstr(UInt64ToString(id)), chain)
	require.Equal(t, "0.000", *ret)
	require.Empty(t, chain.Transfers)
	require.Equal(t, Completed, loadGame(chain, id).Status)
}
