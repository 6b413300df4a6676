package contract

import (
	"errors"

	"bingopot/sdk"
)

// ErrUnknownMethod is returned by Invoke for a method name that is not
// a deployed export.
var ErrUnknownMethod = errors.New("unknown method")

// entrypoints maps deployed export names to their impls.
var entrypoints = map[string]func(*string, sdk.Chain) *string{
	"g_create":          createGameImpl,
	"g_join":            joinGameImpl,
	"g_draw":            drawImpl,
	"g_bingo":           bingoImpl,
	"g_get":             getGameImpl,
	"g_board":           getBoardImpl,
	"g_count":           getTotalGamesImpl,
	"c_get_fee":         getEntryFeeImpl,
	"c_get_join_window": getJoinWindowImpl,
	"c_get_turn_time":   getTurnTimeImpl,
	"c_set_fee":         setEntryFeeImpl,
	"c_set_join_window": setJoinWindowImpl,
	"c_set_turn_time":   setTurnTimeImpl,
}

// Invoke dispatches an export by name against the given chain and
// converts an abort into a returned error. Host-side callers use this;
// on chain the wasm exports call the impls directly.
func Invoke(chain sdk.Chain, method string, payload string) (result *string, err error) {
	fn, ok := entrypoints[method]
	if !ok {
		return nil, ErrUnknownMethod
	}
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*sdk.AbortError)
			if !ok {
				panic(r)
			}
			result = nil
			err = ae
		}
	}()
	return fn(&payload, chain), nil
}
