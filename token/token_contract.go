package token

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"

	"github.com/nspcc-dev/nep5-ledger/common"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Context groups the collaborators a single invocation runs against.
	// Store holds ledger records, Witness answers authorization checks
	// and Events consumes contract notifications.
	Context struct {
		Store   common.Store
		Witness common.Witness
		Events  EventSink
	}

	// Holder is an initial balance record passed to Deploy.
	Holder struct {
		Account util.Uint160
		Amount  int64
	}
)

// EventSink consumes contract notifications. Notifications are produced
// only on successful state-changing paths.
type EventSink interface {
	Notify(name string, args ...stackitem.Item)
}

const (
	symbol      = "NEPV"
	decimals    = 8
	circulation = "TokenCirculation"
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// Symbol returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals returns precision of token balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply returns the total amount of tokens in circulation.
func TotalSupply(ctx Context) uint64 {
	return token.getSupply(ctx)
}

// BalanceOf returns the token balance of the specified account, zero for
// accounts with no record.
func BalanceOf(ctx Context, account util.Uint160) uint64 {
	value, _ := common.GetAmount(ctx.Store, account.BytesBE())
	return value
}

// Transfer moves amount between two accounts. It can be invoked only by
// the owner of the source account. A transfer to self succeeds without
// touching the ledger.
//
// Produces a Transfer notification.
func Transfer(ctx Context, from, to util.Uint160, amount int64) bool {
	return token.transfer(ctx, from, to, amount)
}

// TransferFrom moves amount between two accounts on behalf of the source
// account owner. The recipient must have been granted a sufficient
// allowance by the owner beforehand; no witness check is performed. A
// transfer to self succeeds without touching the ledger.
//
// Produces a Transfer notification.
func TransferFrom(ctx Context, from, to util.Uint160, amount int64) bool {
	return token.transferFrom(ctx, from, to, amount)
}

// Approve adds amount to what spender may draw from the owner's balance.
// It can be invoked only by the owner and only while the owner's current
// balance covers the amount. The balance is not tracked afterwards: the
// granted allowance stays valid even if the balance later drops.
//
// Produces an Approval notification.
func Approve(ctx Context, owner, spender util.Uint160, amount int64) bool {
	return token.approve(ctx, owner, spender, amount)
}

// Allowance returns the amount spender may still draw from the owner's
// balance, zero for pairs with no prior approval.
func Allowance(ctx Context, owner, spender util.Uint160) uint64 {
	return token.allowance(ctx, owner, spender)
}

// Deploy seeds the initial token distribution and records the total
// supply under the circulation key. It can be performed once, and either
// writes all holders or none.
func Deploy(ctx Context, holders []Holder) bool {
	return token.deploy(ctx, holders)
}

func (t Token) getSupply(ctx Context) uint64 {
	supply, _ := common.GetAmount(ctx.Store, []byte(t.CirculationKey))
	return supply
}

func (t Token) transfer(ctx Context, from, to util.Uint160, amount int64) bool {
	if amount <= 0 {
		return false
	}

	if ctx.Witness == nil || !ctx.Witness.CheckWitness(from) {
		return false
	}

	if from.Equals(to) {
		return true
	}

	fromBalance, _ := common.GetAmount(ctx.Store, from.BytesBE())
	if fromBalance < uint64(amount) {
		return false
	}

	toBalance, _ := common.GetAmount(ctx.Store, to.BytesBE())
	newToBalance, ok := common.AddAmount(toBalance, uint64(amount))
	if !ok {
		return false
	}

	if fromBalance == uint64(amount) {
		ctx.Store.Delete(from.BytesBE())
	} else {
		common.PutAmount(ctx.Store, from.BytesBE(), fromBalance-uint64(amount))
	}

	common.PutAmount(ctx.Store, to.BytesBE(), newToBalance)

	notifyTransfer(ctx, from, to, amount)

	return true
}

func (t Token) transferFrom(ctx Context, from, to util.Uint160, amount int64) bool {
	if amount <= 0 {
		return false
	}

	// the balance and allowance writes below assume disjoint keys, so a
	// transfer to self succeeds without touching the ledger, same as in
	// direct transfer
	if from.Equals(to) {
		return true
	}

	// the allowance is keyed by (owner, recipient): the recipient is the
	// party the owner authorized to draw the funds
	key := allowanceKey(from, to)

	allowance, _ := common.GetAmount(ctx.Store, key)
	if allowance < uint64(amount) {
		return false
	}

	fromBalance, _ := common.GetAmount(ctx.Store, from.BytesBE())
	if fromBalance < uint64(amount) {
		return false
	}

	toBalance, _ := common.GetAmount(ctx.Store, to.BytesBE())
	newToBalance, ok := common.AddAmount(toBalance, uint64(amount))
	if !ok {
		return false
	}

	// zero results are written back explicitly, unlike in direct transfer
	common.PutAmount(ctx.Store, key, allowance-uint64(amount))
	common.PutAmount(ctx.Store, to.BytesBE(), newToBalance)
	common.PutAmount(ctx.Store, from.BytesBE(), fromBalance-uint64(amount))

	notifyTransfer(ctx, from, to, amount)

	return true
}

func (t Token) approve(ctx Context, owner, spender util.Uint160, amount int64) bool {
	if ctx.Witness == nil || !ctx.Witness.CheckWitness(owner) {
		return false
	}

	balance, _ := common.GetAmount(ctx.Store, owner.BytesBE())
	if amount > 0 && balance < uint64(amount) {
		return false
	}

	key := allowanceKey(owner, spender)

	allowance, _ := common.GetAmount(ctx.Store, key)
	newAllowance, ok := common.ApplyDelta(allowance, amount)
	if !ok {
		return false
	}

	common.PutAmount(ctx.Store, key, newAllowance)

	if ctx.Events != nil {
		ctx.Events.Notify("Approval",
			stackitem.NewByteArray(owner.BytesBE()),
			stackitem.NewByteArray(spender.BytesBE()),
			stackitem.NewBigInteger(big.NewInt(amount)))
	}

	return true
}

func (t Token) allowance(ctx Context, owner, spender util.Uint160) uint64 {
	value, _ := common.GetAmount(ctx.Store, allowanceKey(owner, spender))
	return value
}

func (t Token) deploy(ctx Context, holders []Holder) bool {
	if _, ok := common.GetAmount(ctx.Store, []byte(t.CirculationKey)); ok {
		return false
	}

	var supply uint64
	seen := make(map[util.Uint160]bool, len(holders))
	for _, h := range holders {
		if h.Amount <= 0 || seen[h.Account] {
			return false
		}
		seen[h.Account] = true

		var ok bool
		supply, ok = common.AddAmount(supply, uint64(h.Amount))
		if !ok {
			return false
		}
	}

	for _, h := range holders {
		common.PutAmount(ctx.Store, h.Account.BytesBE(), uint64(h.Amount))
	}
	common.PutAmount(ctx.Store, []byte(t.CirculationKey), supply)

	return true
}

func allowanceKey(owner, spender util.Uint160) []byte {
	return append(owner.BytesBE(), spender.BytesBE()...)
}

func notifyTransfer(ctx Context, from, to util.Uint160, amount int64) {
	if ctx.Events == nil {
		return
	}
	ctx.Events.Notify("Transfer",
		stackitem.NewByteArray(from.BytesBE()),
		stackitem.NewByteArray(to.BytesBE()),
		stackitem.NewBigInteger(big.NewInt(amount)))
}
