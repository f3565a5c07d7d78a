// Command dump prints the contents of a token ledger database as JSON:
// token info, total supply, balance and allowance records.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"

	"github.com/nspcc-dev/nep5-ledger/common"
	"github.com/nspcc-dev/nep5-ledger/storage"
	"github.com/nspcc-dev/nep5-ledger/token"
)

type ledgerDump struct {
	Symbol      string            `json:"symbol"`
	Decimals    int               `json:"decimals"`
	TotalSupply uint64            `json:"totalSupply"`
	Balances    []balanceRecord   `json:"balances"`
	Allowances  []allowanceRecord `json:"allowances"`
}

type balanceRecord struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

type allowanceRecord struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Key     string `json:"key"`
	Amount  uint64 `json:"amount"`
}

func main() {
	dbPath := flag.String("db", "", "Path to the BoltDB ledger database")

	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing ledger database path")
	}

	err := _dump(*dbPath, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(dbPath string, w io.Writer) error {
	st, err := storage.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("open ledger database: %w", err)
	}

	defer st.Close()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err = enc.Encode(collect(st))
	if err != nil {
		return fmt.Errorf("encode ledger dump: %w", err)
	}

	return nil
}

func collect(st common.Store) ledgerDump {
	d := ledgerDump{
		Symbol:      token.Symbol(),
		Decimals:    token.Decimals(),
		TotalSupply: token.TotalSupply(token.Context{Store: st}),
	}

	st.Seek(nil, func(key, value []byte) bool {
		amount, ok := common.DecodeAmount(value)
		if !ok {
			return true
		}

		// records are told apart by key length: a single address is a
		// balance, two concatenated addresses are an allowance
		switch len(key) {
		case util.Uint160Size:
			account, err := util.Uint160DecodeBytesBE(key)
			if err != nil {
				return true
			}
			d.Balances = append(d.Balances, balanceRecord{
				Account: address.Uint160ToString(account),
				Amount:  amount,
			})
		case 2 * util.Uint160Size:
			owner, err := util.Uint160DecodeBytesBE(key[:util.Uint160Size])
			if err != nil {
				return true
			}
			spender, err := util.Uint160DecodeBytesBE(key[util.Uint160Size:])
			if err != nil {
				return true
			}
			d.Allowances = append(d.Allowances, allowanceRecord{
				Owner:   address.Uint160ToString(owner),
				Spender: address.Uint160ToString(spender),
				Key:     base58.Encode(key),
				Amount:  amount,
			})
		}

		return true
	})

	return d
}
