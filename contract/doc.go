// Package contract implements a pooled-fee bingo game that runs as a
// chain contract: players buy into a numbered round, a host reveals
// pseudo-random values over time, and the first player whose board
// covers a winning line claims the entire pool.
//
// Every entrypoint runs against the registered sdk.Chain; the impl
// functions take the chain explicitly so tests and the local harness
// can substitute their own.
package contract
