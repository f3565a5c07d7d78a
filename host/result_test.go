package host

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"

	"github.com/nspcc-dev/nep5-ledger/token"
)

func TestFailedResultDetection(t *testing.T) {
	require.True(t, failed(stackitem.NewBool(false)))
	require.False(t, failed(stackitem.NewBool(true)))

	// only the diagnostic string denotes failure, not any byte array
	require.True(t, failed(stackitem.Make(token.UnknownOperation)))
	require.False(t, failed(stackitem.NewByteArray([]byte("mint"))))

	require.False(t, failed(stackitem.Make(42)))
}
