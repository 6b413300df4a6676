package contract

import "bingopot/sdk"

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event with the given type and attributes and
// logs it as JSON. Events are observability only: never read back,
// never retried.
func emitEvent(chain sdk.Chain, eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(chain, event, eventType+" event data"))
}

// EmitGameCreated emits an event when a new game opens for joining.
func EmitGameCreated(chain sdk.Chain, gameId uint64, createdBy string, fee uint64, asset sdk.Asset) {
	emitEvent(chain, "gameCreated", map[string]string{
		"id":    UInt64ToString(gameId),
		"by":    createdBy,
		"fee":   string(appendFixedPoint3(nil, fee)),
		"asset": asset.String(),
	})
}

// EmitPlayerJoined emits an event when a player buys into a game.
func EmitPlayerJoined(chain sdk.Chain, gameId uint64, player string, players uint32) {
	emitEvent(chain, "playerJoined", map[string]string{
		"id":      UInt64ToString(gameId),
		"player":  player,
		"players": UInt64ToString(uint64(players)),
	})
}

// EmitValueDrawn emits an event for every draw, including repeats.
func EmitValueDrawn(chain sdk.Chain, gameId uint64, value byte, distinct int) {
	emitEvent(chain, "valueDrawn", map[string]string{
		"id":       UInt64ToString(gameId),
		"value":    UInt64ToString(uint64(value)),
		"distinct": UInt64ToString(uint64(distinct)),
	})
}

// EmitGameOver emits the terminal event with winner and payout.
func EmitGameOver(chain sdk.Chain, gameId uint64, winner string, payout uint64, asset sdk.Asset) {
	emitEvent(chain, "gameOver", map[string]string{
		"id":     UInt64ToString(gameId),
		"winner": winner,
		"payout": string(appendFixedPoint3(nil, payout)),
		"asset":  asset.String(),
	})
}

// EmitEntryFeeUpdated emits an event when the owner changes the global
// entry fee. Running games keep their snapshot.
func EmitEntryFeeUpdated(chain sdk.Chain, fee uint64, asset sdk.Asset) {
	emitEvent(chain, "entryFeeUpdated", map[string]string{
		"fee":   string(appendFixedPoint3(nil, fee)),
		"asset": asset.String(),
	})
}

// EmitJoinWindowUpdated emits an event when the owner changes the join
// window duration.
func EmitJoinWindowUpdated(chain sdk.Chain, seconds uint64) {
	emitEvent(chain, "joinWindowUpdated", map[string]string{
		"seconds": UInt64ToString(seconds),
	})
}

// EmitTurnTimeUpdated emits an event when the owner changes the minimum
// turn time.
func EmitTurnTimeUpdated(chain sdk.Chain, seconds uint64) {
	emitEvent(chain, "turnTimeUpdated", map[string]string{
		"seconds": UInt64ToString(seconds),
	})
}
