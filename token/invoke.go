package token

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Operation names recognized by Invoke.
const (
	OpTransfer     = "transfer"
	OpTransferFrom = "transferFrom"
	OpApprove      = "approve"
	OpAllowance    = "allowance"
)

// UnknownOperation is returned by Invoke for unrecognized operation names.
const UnknownOperation = "unknown operation"

type (
	transferOp struct {
		from   util.Uint160
		to     util.Uint160
		amount int64
	}

	transferFromOp struct {
		from   util.Uint160
		to     util.Uint160
		amount int64
	}

	approveOp struct {
		owner   util.Uint160
		spender util.Uint160
		amount  int64
	}

	allowanceOp struct {
		owner   util.Uint160
		spender util.Uint160
	}
)

// Invoke is the contract entry point. It validates the operation name and
// argument list, runs the corresponding handler and converts its result
// into a stack item. Unrecognized operations yield the UnknownOperation
// diagnostic, malformed argument lists yield false before any handler
// logic runs.
func Invoke(ctx Context, operation string, args []stackitem.Item) stackitem.Item {
	op, known := decodeOperation(operation, args)
	if !known {
		return stackitem.Make(UnknownOperation)
	}

	switch v := op.(type) {
	case transferOp:
		return stackitem.NewBool(token.transfer(ctx, v.from, v.to, v.amount))
	case transferFromOp:
		return stackitem.NewBool(token.transferFrom(ctx, v.from, v.to, v.amount))
	case approveOp:
		return stackitem.NewBool(token.approve(ctx, v.owner, v.spender, v.amount))
	case allowanceOp:
		value := token.allowance(ctx, v.owner, v.spender)
		return stackitem.NewBigInteger(new(big.Int).SetUint64(value))
	default:
		// recognized operation with a malformed argument list
		return stackitem.NewBool(false)
	}
}

// decodeOperation converts the raw operation name and argument list into
// one of the typed operation values. The second result reports whether
// the name itself is recognized; a recognized name with arguments that do
// not decode (wrong arity, malformed address, amount out of range) yields
// a nil operation.
func decodeOperation(operation string, args []stackitem.Item) (interface{}, bool) {
	switch operation {
	case OpTransfer, OpTransferFrom:
		from, to, amount, ok := decodeTransferArgs(args)
		if !ok {
			return nil, true
		}
		if operation == OpTransfer {
			return transferOp{from: from, to: to, amount: amount}, true
		}
		return transferFromOp{from: from, to: to, amount: amount}, true
	case OpApprove:
		owner, spender, amount, ok := decodeTransferArgs(args)
		if !ok {
			return nil, true
		}
		return approveOp{owner: owner, spender: spender, amount: amount}, true
	case OpAllowance:
		if len(args) != 2 {
			return nil, true
		}
		owner, ok := decodeAddress(args[0])
		if !ok {
			return nil, true
		}
		spender, ok := decodeAddress(args[1])
		if !ok {
			return nil, true
		}
		return allowanceOp{owner: owner, spender: spender}, true
	default:
		return nil, false
	}
}

func decodeTransferArgs(args []stackitem.Item) (util.Uint160, util.Uint160, int64, bool) {
	if len(args) != 3 {
		return util.Uint160{}, util.Uint160{}, 0, false
	}
	first, ok := decodeAddress(args[0])
	if !ok {
		return util.Uint160{}, util.Uint160{}, 0, false
	}
	second, ok := decodeAddress(args[1])
	if !ok {
		return util.Uint160{}, util.Uint160{}, 0, false
	}
	amount, ok := decodeAmount(args[2])
	if !ok {
		return util.Uint160{}, util.Uint160{}, 0, false
	}
	return first, second, amount, true
}

func decodeAddress(item stackitem.Item) (util.Uint160, bool) {
	data, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, false
	}
	addr, err := util.Uint160DecodeBytesBE(data)
	if err != nil {
		return util.Uint160{}, false
	}
	return addr, true
}

// decodeAmount accepts any integer representable in int64. Larger values
// can not fit the ledger's arithmetic and are rejected at the boundary.
func decodeAmount(item stackitem.Item) (int64, bool) {
	n, err := item.TryInteger()
	if err != nil || !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}
