package sdk

// Chain is the set of host facilities contract code runs against.
// Production entrypoints receive the registered active chain; tests and
// the local harness pass their own implementation.
//
// Abort must not return: implementations either trap (wasm host) or
// panic with *AbortError (in-process chains).
type Chain interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() Env
	GetEnvKey(key string) *string
	HiveDraw(amount int64, asset Asset)
	HiveTransfer(to Address, amount int64, asset Asset)
}

var active Chain

// Use registers the chain the exported entrypoints run against.
// The deployment glue calls this once before dispatching; the CLI
// harness points it at a simulated chain.
func Use(c Chain) { active = c }

// Active returns the registered chain.
func Active() Chain { return active }
