package contract

import "bingopot/sdk"

// Escrow boundary. The token ledger itself is external: HiveDraw pulls
// the entry fee from the joining player, HiveTransfer pushes the pooled
// payout to the winner. Both calls abort on failure, which must leave
// the enclosing transition unapplied - callers draw or transfer before
// writing any state.

// TransferAllow is a parsed transfer.allow intent: the caller permits
// the contract to draw up to Limit of Token. Limit carries the same
// 3-decimal fixed-point scale as fee amounts.
type TransferAllow struct {
	Limit uint64
	Token sdk.Asset
}

// GetFirstTransferAllow scans intents for one transfer.allow
// instruction and returns its parsed token+limit. Nil if missing.
func GetFirstTransferAllow(chain sdk.Chain, intents []sdk.Intent) *TransferAllow {
	for _, intent := range intents {
		if intent.Type == "transfer.allow" {
			token := sdk.Asset(intent.Args["token"])
			if !isValidAsset(token) {
				chain.Abort("invalid intent token")
			}
			limit := parseFixedPoint3(chain, intent.Args["limit"])
			return &TransferAllow{
				Limit: limit,
				Token: token,
			}
		}
	}
	return nil
}

// pullEntryFee draws the game's snapshotted fee from the sender. The
// transaction must carry a transfer.allow intent for the fee asset
// whose limit covers the fee.
func pullEntryFee(chain sdk.Chain, g *Game) {
	if g.EntryFee == 0 {
		return
	}
	ta := GetFirstTransferAllow(chain, chain.GetEnv().Intents)
	ensure(chain, ta != nil, errIntentMissing)
	ensure(chain, ta.Token == g.FeeAsset, errWrongFeeToken)
	ensure(chain, ta.Limit >= g.EntryFee, errFeeNotCovered)
	chain.HiveDraw(int64(g.EntryFee), g.FeeAsset)
}
