package common

import "github.com/nspcc-dev/neo-go/pkg/util"

// Witness reports whether the current invocation is authorized to act as
// the given account. The host backs it with the signature (witness) check
// of the carrier transaction.
type Witness interface {
	CheckWitness(acc util.Uint160) bool
}

// Signers is a Witness defined by the accounts that signed the
// invocation: exactly those accounts are authorized.
type Signers []util.Uint160

// CheckWitness implements Witness.
func (s Signers) CheckWitness(acc util.Uint160) bool {
	for i := range s {
		if s[i].Equals(acc) {
			return true
		}
	}
	return false
}
