package tests

import (
	"math/rand"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// randomPeerID produces a libp2p-style peer identifier.
func randomPeerID() string {
	return "12D3KooW" + base58.Encode(randomBytes(24))
}

func signerKey(s neotest.Signer) *keys.PrivateKey {
	return s.(neotest.SingleSigner).Account().PrivateKey()
}

func pub(s neotest.Signer) []byte {
	return signerKey(s).PublicKey().Bytes()
}
