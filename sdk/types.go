package sdk

// Address is a chain account identity, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Asset is a liquid token symbol accepted by the ledger.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is a caller-signed instruction attached to a transaction,
// such as a transfer allowance the contract may draw against.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Env is the transaction environment exposed to contract code.
type Env struct {
	Sender  Address
	TxId    string
	Intents []Intent
}

// Env keys readable through Chain.GetEnvKey.
const (
	EnvSender        = "msg.sender"
	EnvBlockId       = "block.id"
	EnvBlockTime     = "block.timestamp"
	EnvContractOwner = "contract.owner"
)

// AbortError is the value an aborting chain implementation panics with.
// Host runtimes trap instead; recovering this type is only meaningful
// against in-process chains.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return "abort: " + e.Msg }
