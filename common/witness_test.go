package common_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/nep5-ledger/common"
)

func TestSigners(t *testing.T) {
	a := util.Uint160{1}
	b := util.Uint160{2}
	c := util.Uint160{3}

	w := common.Signers{a, b}
	require.True(t, w.CheckWitness(a))
	require.True(t, w.CheckWitness(b))
	require.False(t, w.CheckWitness(c))
	require.False(t, common.Signers(nil).CheckWitness(a))
}
