package contract

import "bingopot/sdk"

// Global configuration, owned by the contract owner and read-only to
// every game transition. Games snapshot the entry fee at creation; the
// two durations are read live at draw time.

const (
	cfgFeeKey        = "cfg:fee"
	cfgFeeAssetKey   = "cfg:fee_asset"
	cfgJoinWindowKey = "cfg:join_window"
	cfgTurnTimeKey   = "cfg:turn_time"
)

// Defaults apply until the owner sets a value.
const (
	defaultEntryFee   uint64 = 1000 // 1.000
	defaultJoinWindow uint64 = 300  // seconds before the first draw
	defaultTurnTime   uint64 = 30   // seconds between draws
)

const defaultFeeAsset = sdk.AssetHive

var validAssets = []sdk.Asset{sdk.AssetHive, sdk.AssetHbd}

// isValidAsset checks we only allow expected liquid tokens.
func isValidAsset(a sdk.Asset) bool {
	for _, v := range validAssets {
		if a == v {
			return true
		}
	}
	return false
}

func cfgU64(chain sdk.Chain, key string, def uint64) uint64 {
	ptr := chain.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return def
	}
	return parseU64(chain, *ptr)
}

// entryFeeConfig returns the current global fee and its asset.
func entryFeeConfig(chain sdk.Chain) (uint64, sdk.Asset) {
	fee := cfgU64(chain, cfgFeeKey, defaultEntryFee)
	asset := defaultFeeAsset
	if ptr := chain.StateGetObject(cfgFeeAssetKey); ptr != nil && *ptr != "" {
		asset = sdk.Asset(*ptr)
	}
	return fee, asset
}

// joinWindow returns the minimum delay between game creation and the
// first draw, in seconds.
func joinWindow(chain sdk.Chain) uint64 {
	return cfgU64(chain, cfgJoinWindowKey, defaultJoinWindow)
}

// turnTime returns the minimum delay between consecutive draws, in
// seconds.
func turnTime(chain sdk.Chain) uint64 {
	return cfgU64(chain, cfgTurnTimeKey, defaultTurnTime)
}

// requireOwner aborts unless the sender is the contract owner identity
// from the deployment environment.
func requireOwner(chain sdk.Chain) {
	owner := chain.GetEnvKey(sdk.EnvContractOwner)
	ensure(chain, owner != nil && *owner != "", "contract owner not set")
	ensure(chain, senderAddress(chain) == *owner, errOwnerOnly)
}
