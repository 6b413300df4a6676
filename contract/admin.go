package contract

import "bingopot/sdk"

// Owner-only configuration setters. Updates take effect for games
// created (fee) or drawn (durations) after the write; running games
// keep their fee snapshot.

// setEntryFeeImpl updates the global entry fee. Payload is
// "<amount>" or "<amount>|<asset>"; the amount uses up to 3 decimal
// places.
func setEntryFeeImpl(payload *string, chain sdk.Chain) *string {
	requireOwner(chain)

	in := *payload
	fee := parseFixedPoint3(chain, nextField(&in))
	assetStr := nextField(&in)
	ensure(chain, in == "", errTooManyArgs)

	_, asset := entryFeeConfig(chain)
	if assetStr != "" {
		asset = sdk.Asset(assetStr)
		ensure(chain, isValidAsset(asset), "invalid fee asset")
	}

	chain.StateSetObject(cfgFeeKey, UInt64ToString(fee))
	chain.StateSetObject(cfgFeeAssetKey, asset.String())
	EmitEntryFeeUpdated(chain, fee, asset)
	return nil
}

// setJoinWindowImpl updates the delay required between game creation
// and the first draw. Payload is the duration in seconds.
func setJoinWindowImpl(payload *string, chain sdk.Chain) *string {
	requireOwner(chain)

	in := *payload
	seconds := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	chain.StateSetObject(cfgJoinWindowKey, UInt64ToString(seconds))
	EmitJoinWindowUpdated(chain, seconds)
	return nil
}

// setTurnTimeImpl updates the minimum delay between consecutive draws.
// Payload is the duration in seconds.
func setTurnTimeImpl(payload *string, chain sdk.Chain) *string {
	requireOwner(chain)

	in := *payload
	seconds := parseU64(chain, nextField(&in))
	ensure(chain, in == "", errTooManyArgs)

	chain.StateSetObject(cfgTurnTimeKey, UInt64ToString(seconds))
	EmitTurnTimeUpdated(chain, seconds)
	return nil
}
