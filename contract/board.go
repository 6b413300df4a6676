package contract

import (
	"crypto/sha256"

	"bingopot/sdk"
)

// Board and draw derivation. Both consume the per-tick entropy sample:
// the digest of the current block id. The sample is predictable by
// block producers; acceptable for this game, and swapping the oracle
// only means changing entropySample (the rest is pure).

// entropySample returns this tick's entropy bytes.
func entropySample(chain sdk.Chain) []byte {
	ptr := chain.GetEnvKey(sdk.EnvBlockId)
	ensure(chain, ptr != nil && *ptr != "", "block id missing")
	sum := sha256.Sum256([]byte(*ptr))
	return sum[:]
}

// deriveBoard hashes (entropy, join sequence, game id) and truncates the
// digest to the 24 cell values. playerCount is the join sequence number
// of the new player; it keeps two joiners of the same game within one
// block from receiving identical boards.
//
// Cell values are not deduplicated: a board can repeat numbers, which
// makes some lines easier to cover. Kept as-is.
func deriveBoard(entropy []byte, playerCount uint32, gameID uint64) Board {
	h := sha256.New()
	h.Write(entropy)

	var salt [12]byte
	salt[0] = byte(playerCount >> 24)
	salt[1] = byte(playerCount >> 16)
	salt[2] = byte(playerCount >> 8)
	salt[3] = byte(playerCount)
	for i := 0; i < 8; i++ {
		salt[4+i] = byte(gameID >> (56 - 8*i))
	}
	h.Write(salt[:])

	var b Board
	copy(b[:], h.Sum(nil)[:BoardCells])
	return b
}

// drawValue extracts this tick's drawn value: the leading byte of the
// entropy sample. Repeats across ticks are absorbed by the drawn-value
// set.
func drawValue(entropy []byte) byte {
	return entropy[0]
}
