package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bingopot/sdk"
	"bingopot/simchain"
)

const (
	testOwner = sdk.Address("hive:admin")
	playerOne = sdk.Address("hive:alice")
	playerTwo = sdk.Address("hive:bob")
	playerThr = sdk.Address("hive:carol")
)

var testStart = time.Date(2025, 9, 3, 12, 0, 0, 0, time.UTC)

func newTestChain() *simchain.Chain {
	return simchain.New(testOwner, testStart)
}

func pstr(s string) *string { return &s }

// expectAbort runs fn and asserts it aborts with exactly msg.
func expectAbort(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected abort %q, got none", msg)
		ae, ok := r.(*sdk.AbortError)
		require.True(t, ok, "expected AbortError, got %v", r)
		require.Equal(t, msg, ae.Msg)
	}()
	fn()
}

// createGame runs g_create as the current sender and returns the id.
func createGame(t *testing.T, chain *simchain.Chain) uint64 {
	t.Helper()
	ret := createGameImpl(nil, chain)
	require.NotNil(t, ret)
	return parseU64(chain, *ret)
}

// joinAs buys the given player into the game with a covering intent.
// The player is funded first so the fee draw settles.
func joinAs(t *testing.T, chain *simchain.Chain, id uint64, player sdk.Address, limit string, asset sdk.Asset) {
	t.Helper()
	chain.SetSender(player)
	chain.Credit(player, 1_000_000, asset)
	chain.AllowTransfer(limit, asset)
	joinGameImpl(pstr(UInt64ToString(id)), chain)
}

// setFeeAs updates the global fee as the owner, then restores the
// previous sender.
func setFeeAs(t *testing.T, chain *simchain.Chain, amount string, asset sdk.Asset) {
	t.Helper()
	chain.SetSender(testOwner)
	setEntryFeeImpl(pstr(amount+"|"+asset.String()), chain)
}

// drawOnce advances past the relevant timing gate and draws a value.
func drawOnce(t *testing.T, chain *simchain.Chain, id uint64, gap time.Duration) byte {
	t.Helper()
	chain.Advance(gap)
	ret := drawImpl(pstr(UInt64ToString(id)), chain)
	require.NotNil(t, ret)
	return byte(parseU64(chain, *ret))
}
