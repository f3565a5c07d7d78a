// Package host runs token contract invocations against persistent
// storage with the commit-on-success semantics of a chain execution
// environment: every invocation is all-or-nothing and sequential
// invocations observe each other's committed effects.
package host

import (
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"go.uber.org/zap"

	"github.com/nspcc-dev/nep5-ledger/common"
	"github.com/nspcc-dev/nep5-ledger/storage"
	"github.com/nspcc-dev/nep5-ledger/token"
)

// Notification is a contract event delivered to subscribers after the
// producing invocation has been committed.
type Notification struct {
	Name  string
	Items []stackitem.Item
}

// Host executes token contract invocations one by one. Each invocation
// runs on a write-back overlay of the backing store which is persisted
// only when the invocation succeeds, so failed calls leave no trace in
// the ledger.
//
// Host methods must not be called concurrently.
type Host struct {
	store common.Store
	log   *zap.Logger
	subs  []func(Notification)
}

// New creates a Host over the given backing store. A nil logger disables
// logging.
func New(store common.Store, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{
		store: store,
		log:   log,
	}
}

// OnNotification registers f to receive notifications of committed
// invocations, in production order.
func (h *Host) OnNotification(f func(Notification)) {
	h.subs = append(h.subs, f)
}

// Deploy seeds the initial token distribution. Like any invocation it is
// all-or-nothing.
func (h *Host) Deploy(holders []token.Holder) bool {
	overlay := storage.NewOverlay(h.store)

	ok := token.Deploy(token.Context{Store: overlay}, holders)
	if ok {
		overlay.Persist()
	}

	h.log.Info("deploy finished",
		zap.Bool("ok", ok),
		zap.Int("holders", len(holders)))

	return ok
}

// Call runs a single contract invocation signed by the given accounts and
// returns its result together with the notifications it produced. State
// changes and notifications of failed invocations are discarded.
func (h *Host) Call(signers []util.Uint160, operation string, args ...stackitem.Item) (stackitem.Item, []Notification) {
	id := uuid.New()
	overlay := storage.NewOverlay(h.store)
	events := new(eventBuffer)

	ctx := token.Context{
		Store:   overlay,
		Witness: common.Signers(signers),
		Events:  events,
	}

	res := token.Invoke(ctx, operation, args)
	if failed(res) {
		h.log.Info("invocation failed",
			zap.Stringer("id", id),
			zap.String("operation", operation),
			zap.Strings("signers", signerStrings(signers)))
		return res, nil
	}

	overlay.Persist()
	for _, n := range events.list {
		for _, sub := range h.subs {
			sub(n)
		}
	}

	h.log.Info("invocation committed",
		zap.Stringer("id", id),
		zap.String("operation", operation),
		zap.Strings("signers", signerStrings(signers)),
		zap.Int("notifications", len(events.list)))

	return res, events.list
}

// BalanceOf returns the committed balance of the account.
func (h *Host) BalanceOf(account util.Uint160) uint64 {
	return token.BalanceOf(h.readCtx(), account)
}

// Allowance returns the committed allowance of the (owner, spender) pair.
func (h *Host) Allowance(owner, spender util.Uint160) uint64 {
	return token.Allowance(h.readCtx(), owner, spender)
}

// TotalSupply returns the committed total supply.
func (h *Host) TotalSupply() uint64 {
	return token.TotalSupply(h.readCtx())
}

func (h *Host) readCtx() token.Context {
	return token.Context{Store: h.store}
}

// failed reports whether res denotes a failed invocation: a false boolean
// or the unknown-operation diagnostic.
func failed(res stackitem.Item) bool {
	switch res.Type() {
	case stackitem.BooleanT:
		ok, err := res.TryBool()
		return err != nil || !ok
	case stackitem.ByteArrayT:
		data, err := res.TryBytes()
		return err != nil || string(data) == token.UnknownOperation
	default:
		return false
	}
}

func signerStrings(signers []util.Uint160) []string {
	ss := make([]string, len(signers))
	for i := range signers {
		ss[i] = address.Uint160ToString(signers[i])
	}
	return ss
}

type eventBuffer struct {
	list []Notification
}

func (b *eventBuffer) Notify(name string, args ...stackitem.Item) {
	b.list = append(b.list, Notification{
		Name:  name,
		Items: args,
	})
}
