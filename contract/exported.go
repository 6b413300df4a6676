//go:build wasm

// Host-facing entrypoints. go:wasmexport only compiles for wasm
// targets, so this file is excluded from host builds; tests and the
// local harness call the impl functions with their own chain.

package contract

import "bingopot/sdk"

// ---------- Game Entrypoints ----------

//go:wasmexport g_create
func CreateGame(payload *string) *string {
	return createGameImpl(payload, sdk.Active())
}

//go:wasmexport g_join
func JoinGame(payload *string) *string {
	return joinGameImpl(payload, sdk.Active())
}

//go:wasmexport g_draw
func Draw(payload *string) *string {
	return drawImpl(payload, sdk.Active())
}

//go:wasmexport g_bingo
func Bingo(payload *string) *string {
	return bingoImpl(payload, sdk.Active())
}

// ---------- Queries ----------

//go:wasmexport g_get
func GetGame(payload *string) *string {
	return getGameImpl(payload, sdk.Active())
}

//go:wasmexport g_board
func GetBoard(payload *string) *string {
	return getBoardImpl(payload, sdk.Active())
}

//go:wasmexport g_count
func GetTotalGames(payload *string) *string {
	return getTotalGamesImpl(payload, sdk.Active())
}

//go:wasmexport c_get_fee
func GetEntryFee(payload *string) *string {
	return getEntryFeeImpl(payload, sdk.Active())
}

//go:wasmexport c_get_join_window
func GetJoinWindow(payload *string) *string {
	return getJoinWindowImpl(payload, sdk.Active())
}

//go:wasmexport c_get_turn_time
func GetTurnTime(payload *string) *string {
	return getTurnTimeImpl(payload, sdk.Active())
}

// ---------- Admin ----------

//go:wasmexport c_set_fee
func SetEntryFee(payload *string) *string {
	return setEntryFeeImpl(payload, sdk.Active())
}

//go:wasmexport c_set_join_window
func SetJoinWindow(payload *string) *string {
	return setJoinWindowImpl(payload, sdk.Active())
}

//go:wasmexport c_set_turn_time
func SetTurnTime(payload *string) *string {
	return setTurnTimeImpl(payload, sdk.Active())
}
