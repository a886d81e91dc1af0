package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/providers"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/providers/providerstate"
)

const providersPath = "../providers"

func deployProvidersContract(t *testing.T, e *neotest.Executor, addrToken, treasury util.Uint160, fee int64) util.Uint160 {
	args := make([]interface{}, 3)
	args[0] = addrToken
	args[1] = treasury
	args[2] = fee

	c := neotest.CompileFile(t, e.CommitteeHash, providersPath, path.Join(providersPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func newProvidersInvoker(t *testing.T, fee int64) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e)
	h := deployProvidersContract(t, e, tokenHash, e.CommitteeHash, fee)
	return e.CommitteeInvoker(h), e.CommitteeInvoker(tokenHash)
}

func registerProvider(t *testing.T, c *neotest.ContractInvoker, owner, operator neotest.Signer) int64 {
	s, err := c.TestInvoke(t, "providerCount")
	if err != nil {
		t.Fatal(err)
	}
	id := s.Pop().BigInt().Int64() + 1

	c.WithSigners(owner).Invoke(t, id, "registerProvider", pub(owner), pub(operator), randomBytes(16))
	return id
}

func TestProviders_Version(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)
	c.Invoke(t, common.Version, "version")
}

func TestProviders_Register(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)

	c.Invoke(t, 0, "providerCount")

	id := registerProvider(t, c, owner, operator)
	c.Invoke(t, 1, "providerCount")
	c.Invoke(t, stackitem.NewBool(true), "isActive", id)
	c.Invoke(t, stackitem.NewByteArray(pub(owner)), "ownerOf", id)

	// ids are monotonic
	id2 := registerProvider(t, c, owner, operator)
	if id2 <= id {
		t.Fatalf("expected id %d to grow past %d", id2, id)
	}

	c.WithSigners(operator).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"registerProvider", pub(owner), pub(operator), randomBytes(16))

	c.InvokeFail(t, providers.ErrNotFound, "get", int64(100))
}

func TestProviders_RegistrationFee(t *testing.T) {
	const fee = 250

	c, tok := newProvidersInvoker(t, fee)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)

	// nothing to pay the fee with
	c.WithSigners(owner).InvokeFail(t, providers.ErrFeeFailed,
		"registerProvider", pub(owner), pub(operator), randomBytes(16))

	tokenMint(t, tok, owner.ScriptHash(), fee)
	registerProvider(t, c, owner, operator)

	tok.Invoke(t, 0, "balanceOf", owner.ScriptHash())
	tok.Invoke(t, fee, "balanceOf", c.CommitteeHash)
}

func TestProviders_Peers(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	id := registerProvider(t, c, owner, operator)

	peer := randomPeerID()

	c.Invoke(t, stackitem.NewBool(false), "resolvePeer", id, peer)

	c.WithSigners(operator).Invoke(t, stackitem.Null{}, "addPeer", id, peer)
	c.Invoke(t, stackitem.NewBool(true), "resolvePeer", id, peer)

	// adding twice is a no-op
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "addPeer", id, peer)

	outsider := c.NewAccount(t)
	c.WithSigners(outsider).InvokeFail(t, providers.ErrAccessDenied, "addPeer", id, randomPeerID())

	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "removePeer", id, peer)
	c.Invoke(t, stackitem.NewBool(false), "resolvePeer", id, peer)

	// removing a missing peer is a no-op
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "removePeer", id, peer)
}

func TestProviders_PeerKeyIsolation(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	for i := int64(1); i <= 257; i++ {
		c.WithSigners(owner).Invoke(t, i, "registerProvider", pub(owner), pub(operator), randomBytes(16))
	}

	// a crafted peer string of provider 1 must not resolve as a peer of a
	// provider whose id spans more bytes
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "addPeer", int64(1), "\x01abc")
	c.Invoke(t, stackitem.NewBool(true), "resolvePeer", int64(1), "\x01abc")
	c.Invoke(t, stackitem.NewBool(false), "resolvePeer", int64(257), "abc")
}

func TestProviders_State(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	id := registerProvider(t, c, owner, operator)

	c.WithSigners(operator).Invoke(t, stackitem.Null{}, "updateState", id, int64(providerstate.Inactive))
	c.Invoke(t, stackitem.NewBool(false), "isActive", id)

	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "updateState", id, int64(providerstate.Active))
	c.Invoke(t, stackitem.NewBool(true), "isActive", id)

	c.WithSigners(owner).InvokeFail(t, "unsupported state", "updateState", id, int64(42))
}

func TestProviders_Jail(t *testing.T) {
	c, _ := newProvidersInvoker(t, 0)

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	id := registerProvider(t, c, owner, operator)

	c.WithSigners(owner).InvokeFail(t, common.ErrCommitteeWitnessFailed, "jail", id)

	c.Invoke(t, stackitem.Null{}, "jail", id)
	c.Invoke(t, stackitem.NewBool(true), "isJailed", id)
	c.Invoke(t, stackitem.NewBool(false), "isActive", id)

	c.Invoke(t, stackitem.Null{}, "unjail", id)
	c.Invoke(t, stackitem.NewBool(false), "isJailed", id)
	c.Invoke(t, stackitem.NewBool(true), "isActive", id)
}
