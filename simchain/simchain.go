// Package simchain provides an in-memory chain for driving the contract
// in tests and from the local harness: key/value state, per-account
// token balances, block progression, and transfer intents. Aborts are
// realized as *sdk.AbortError panics so callers can observe the exact
// rejection a host runtime would trap on.
package simchain

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bingopot/sdk"
)

const timeLayout = "2006-01-02T15:04:05"

// TransferKind distinguishes ledger movements.
type TransferKind string

const (
	// Draw pulls funds from the sender into the contract pool.
	Draw TransferKind = "draw"
	// Transfer pushes funds from the contract pool to an account.
	Transfer TransferKind = "transfer"
)

// TransferRecord is one settled ledger movement.
type TransferRecord struct {
	TxId   string
	Kind   TransferKind
	From   sdk.Address
	To     sdk.Address
	Amount int64
	Asset  sdk.Asset
}

// Chain is an in-memory sdk.Chain.
type Chain struct {
	state    map[string]string
	balances map[sdk.Address]map[sdk.Asset]int64
	pool     map[sdk.Asset]int64

	owner     sdk.Address
	sender    sdk.Address
	intents   []sdk.Intent
	blockId   string
	blockTime string
	txId      string

	// Transfers and LogLines record everything the contract did, in
	// order, for assertions.
	Transfers []TransferRecord
	LogLines  []string

	log *zap.SugaredLogger
}

// New returns a chain with an empty state at the given start time.
// Logging is off until SetLogger.
func New(owner sdk.Address, start time.Time) *Chain {
	c := &Chain{
		state:    make(map[string]string),
		balances: make(map[sdk.Address]map[sdk.Asset]int64),
		pool:     make(map[sdk.Asset]int64),
		owner:    owner,
		sender:   owner,
		log:      zap.NewNop().Sugar(),
	}
	c.NextBlock(uuid.NewString(), start)
	return c
}

// SetLogger routes chain activity to the given logger.
func (c *Chain) SetLogger(log *zap.SugaredLogger) { c.log = log }

// ---------- Scenario controls ----------

// NextBlock advances the chain to a new block. The block id feeds the
// contract's entropy sample, so tests pin it to fix boards and draws.
func (c *Chain) NextBlock(id string, at time.Time) {
	c.blockId = id
	c.blockTime = at.UTC().Format(timeLayout)
	c.txId = uuid.NewString()
	c.log.Debugw("new block", "id", id, "time", c.blockTime)
}

// BlockTime returns the current block time.
func (c *Chain) BlockTime() time.Time {
	t, _ := time.Parse(timeLayout, c.blockTime)
	return t
}

// Advance moves the block time forward by d, keeping the block id
// derivable from the previous one.
func (c *Chain) Advance(d time.Duration) {
	c.NextBlock(uuid.NewString(), c.BlockTime().Add(d))
}

// SetSender switches the transaction sender and clears any intents of
// the previous one.
func (c *Chain) SetSender(addr sdk.Address) {
	c.sender = addr
	c.intents = nil
	c.txId = uuid.NewString()
}

// AllowTransfer attaches a transfer.allow intent to the next calls of
// the current sender.
func (c *Chain) AllowTransfer(limit string, asset sdk.Asset) {
	c.intents = append(c.intents, sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": asset.String()},
	})
}

// ClearIntents drops all attached intents.
func (c *Chain) ClearIntents() { c.intents = nil }

// Credit funds an account out of thin air.
func (c *Chain) Credit(addr sdk.Address, amount int64, asset sdk.Asset) {
	c.account(addr)[asset] += amount
}

// BalanceOf returns an account's balance.
func (c *Chain) BalanceOf(addr sdk.Address, asset sdk.Asset) int64 {
	return c.account(addr)[asset]
}

// PoolBalance returns the funds currently escrowed by the contract.
func (c *Chain) PoolBalance(asset sdk.Asset) int64 { return c.pool[asset] }

// Snapshot returns a copy of the raw state map.
func (c *Chain) Snapshot() map[string]string {
	out := make(map[string]string, len(c.state))
	for k, v := range c.state {
		out[k] = v
	}
	return out
}

func (c *Chain) account(addr sdk.Address) map[sdk.Asset]int64 {
	m, ok := c.balances[addr]
	if !ok {
		m = make(map[sdk.Asset]int64)
		c.balances[addr] = m
	}
	return m
}

// ---------- sdk.Chain ----------

func (c *Chain) StateSetObject(key, value string) {
	c.state[key] = value
	c.log.Debugw("state set", "key", key, "bytes", len(value))
}

func (c *Chain) StateGetObject(key string) *string {
	v, ok := c.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (c *Chain) Abort(msg string) {
	c.log.Debugw("abort", "msg", msg, "sender", c.sender)
	panic(&sdk.AbortError{Msg: msg})
}

func (c *Chain) Log(msg string) {
	c.LogLines = append(c.LogLines, msg)
	c.log.Infow("contract log", "msg", msg)
}

func (c *Chain) GetEnv() sdk.Env {
	return sdk.Env{
		Sender:  c.sender,
		TxId:    c.txId,
		Intents: append([]sdk.Intent(nil), c.intents...),
	}
}

func (c *Chain) GetEnvKey(key string) *string {
	var v string
	switch key {
	case sdk.EnvSender:
		v = c.sender.String()
	case sdk.EnvBlockId:
		v = c.blockId
	case sdk.EnvBlockTime:
		v = c.blockTime
	case sdk.EnvContractOwner:
		v = c.owner.String()
	default:
		return nil
	}
	return &v
}

// HiveDraw moves funds from the sender into the contract pool. Aborts
// when the sender cannot cover the amount, like the ledger would.
func (c *Chain) HiveDraw(amount int64, asset sdk.Asset) {
	acct := c.account(c.sender)
	if acct[asset] < amount {
		c.Abort("insufficient funds")
	}
	acct[asset] -= amount
	c.pool[asset] += amount
	c.Transfers = append(c.Transfers, TransferRecord{
		TxId:   c.txId,
		Kind:   Draw,
		From:   c.sender,
		Amount: amount,
		Asset:  asset,
	})
	c.log.Infow("hive draw", "from", c.sender, "amount", amount, "asset", asset)
}

// HiveTransfer moves funds from the contract pool to an account. Aborts
// when the pool cannot cover the amount.
func (c *Chain) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	if c.pool[asset] < amount {
		c.Abort("insufficient contract funds")
	}
	c.pool[asset] -= amount
	c.account(to)[asset] += amount
	c.Transfers = append(c.Transfers, TransferRecord{
		TxId:   c.txId,
		Kind:   Transfer,
		To:     to,
		Amount: amount,
		Asset:  asset,
	})
	c.log.Infow("hive transfer", "to", to, "amount", amount, "asset", asset)
}

var _ sdk.Chain = (*Chain)(nil)
