/*
Package token implements a NEP-5 style fungible token ledger.

The ledger keeps two kinds of records in contract storage: balances keyed
by the 20-byte account address and allowances keyed by the owner address
immediately followed by the spender address. Both addresses are fixed
length, so composite keys can not collide with each other or with balance
keys. A missing record reads as zero.

Direct transfers remove a balance record drained to exactly zero, while
delegated transfers write all resulting records back even when they are
zero. Both behaviors follow the reference contract.

# Contract notifications

Transfer notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token
