package tests

import (
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/appstoreconst"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/pricemode"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
)

const appstorePath = "../appstore"

const (
	testPeerID = "12D3KooWAppPeer"

	priceCPU         = 2
	priceGPU         = 3
	priceMemoryGB    = 5
	priceStorageGB   = 7
	priceBandwidthGB = 11

	testFeeRate      = 100 // 10%
	testVerifierRate = 50  // 5%
	gigabyte         = 1_000_000_000
)

type appstoreEnv struct {
	appstore  *neotest.ContractInvoker
	token     *neotest.ContractInvoker
	providers *neotest.ContractInvoker
	staking   *neotest.ContractInvoker
	treasury  util.Uint160
}

func deployAppstoreContract(t *testing.T, e *neotest.Executor,
	addrToken, addrProviders, addrStaking, treasury util.Uint160, rewardLock int64) util.Uint160 {
	args := make([]interface{}, 5)
	args[0] = addrToken
	args[1] = addrProviders
	args[2] = addrStaking
	args[3] = treasury
	args[4] = rewardLock

	c := neotest.CompileFile(t, e.CommitteeHash, appstorePath, path.Join(appstorePath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func newAppstoreEnv(t *testing.T, rewardLock int64) *appstoreEnv {
	e := newExecutor(t)

	tokenHash := deployTokenContract(t, e)
	tok := e.CommitteeInvoker(tokenHash)
	treasury := tok.NewAccount(t).ScriptHash()

	providersHash := deployProvidersContract(t, e, tokenHash, treasury, 0)
	stakingHash := deployStakingContract(t, e, tokenHash, treasury, 0)
	appstoreHash := deployAppstoreContract(t, e, tokenHash, providersHash, stakingHash, treasury, rewardLock)

	return &appstoreEnv{
		appstore:  e.CommitteeInvoker(appstoreHash),
		token:     tok,
		providers: e.CommitteeInvoker(providersHash),
		staking:   e.CommitteeInvoker(stakingHash),
		treasury:  treasury,
	}
}

func (env *appstoreEnv) createApp(t *testing.T, owner, operator neotest.Signer, budget int64) int64 {
	if budget > 0 {
		tokenMint(t, env.token, owner.ScriptHash(), budget)
	}

	args := []interface{}{
		pub(owner), pub(operator), []byte{}, testPeerID, "subnet-app",
		int64(pricemode.Vector),
		priceCPU, priceGPU, priceMemoryGB, priceStorageGB, priceBandwidthGB,
		testFeeRate, testVerifierRate, budget,
	}

	s, err := env.appstore.TestInvoke(t, "appCount")
	require.NoError(t, err)
	id := s.Pop().BigInt().Int64() + 1

	env.appstore.WithSigners(owner).Invoke(t, id, "createApp", args...)
	return id
}

func (env *appstoreEnv) registerProvider(t *testing.T, owner, operator neotest.Signer) int64 {
	id := registerProvider(t, env.providers, owner, operator)
	env.providers.WithSigners(owner).Invoke(t, stackitem.Null{}, "addPeer", id, testPeerID)
	return id
}

func (env *appstoreEnv) accrual(t *testing.T, appID, providerID int64) (pending, unlockAt, totalClaimed, lastReportAt int64) {
	s, err := env.appstore.TestInvoke(t, "getAccrual", appID, providerID)
	require.NoError(t, err)

	fields := s.Pop().Array()
	require.Len(t, fields, 4)
	for i, dst := range []*int64{&pending, &unlockAt, &totalClaimed, &lastReportAt} {
		v, err := fields[i].TryInteger()
		require.NoError(t, err)
		*dst = v.Int64()
	}
	return
}

type usageReport struct {
	appID, providerID int64
	peerID            string
	cpu, gpu          int64
	memory, storage   int64
	upload, download  int64
	duration          int64
	timestamp         int64
}

func defaultUsage(appID, providerID int64) usageReport {
	return usageReport{
		appID:      appID,
		providerID: providerID,
		peerID:     testPeerID,
		cpu:        4,
		gpu:        1,
		memory:     2 * gigabyte,
		storage:    3 * gigabyte,
		upload:     gigabyte,
		download:   gigabyte,
		duration:   10,
		timestamp:  1000,
	}
}

// expected reward of defaultUsage with the test price vector:
// 10 * (4*2 + 1*3 + 5*2 + 7*3 + 11*2) = 640.
const defaultReward = 640

func (u usageReport) message(t *testing.T) []byte {
	item := stackitem.NewStruct([]stackitem.Item{
		stackitem.Make("SubnetUsageV1"),
		stackitem.Make(u.appID),
		stackitem.Make(u.providerID),
		stackitem.Make(u.peerID),
		stackitem.Make(u.cpu),
		stackitem.Make(u.gpu),
		stackitem.Make(u.memory),
		stackitem.Make(u.storage),
		stackitem.Make(u.upload),
		stackitem.Make(u.download),
		stackitem.Make(u.duration),
		stackitem.Make(u.timestamp),
	})

	data, err := stackitem.Serialize(item)
	require.NoError(t, err)
	return data
}

func (u usageReport) args(t *testing.T, signerKeys ...*keys.PrivateKey) []interface{} {
	msg := u.message(t)

	pubs := make([]interface{}, len(signerKeys))
	sigs := make([]interface{}, len(signerKeys))
	for i, k := range signerKeys {
		pubs[i] = k.PublicKey().Bytes()
		sigs[i] = k.Sign(msg)
	}

	return []interface{}{
		u.appID, u.providerID, u.peerID,
		u.cpu, u.gpu, u.memory, u.storage, u.upload, u.download,
		u.duration, u.timestamp,
		pubs, sigs,
	}
}

func TestAppstore_Version(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	env.appstore.Invoke(t, common.Version, "version")
}

func TestAppstore_CreateApp(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)

	c.Invoke(t, 0, "appCount")
	c.Invoke(t, stackitem.NewBool(false), "appExists", int64(1))

	id := env.createApp(t, owner, operator, 10_000)
	c.Invoke(t, 1, "appCount")
	c.Invoke(t, stackitem.NewBool(true), "appExists", id)

	// the budget moved into contract custody
	env.token.Invoke(t, 0, "balanceOf", owner.ScriptHash())
	env.token.Invoke(t, 10_000, "balanceOf", c.Hash)

	c.InvokeFail(t, appstoreconst.ErrUnknownApp, "getApp", int64(100))

	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrRateTooHigh, "createApp",
		pub(owner), pub(operator), []byte{}, testPeerID, "over-limit",
		int64(pricemode.Vector), priceCPU, priceGPU, priceMemoryGB, priceStorageGB, priceBandwidthGB,
		1001, testVerifierRate, 0)

	// owner witness is required
	c.WithSigners(operator).InvokeFail(t, common.ErrOwnerWitnessFailed, "createApp",
		pub(owner), pub(operator), []byte{}, testPeerID, "no-witness",
		int64(pricemode.Vector), priceCPU, priceGPU, priceMemoryGB, priceStorageGB, priceBandwidthGB,
		testFeeRate, testVerifierRate, 0)

	// the deposit transfer fails without funds
	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrDepositFailed, "createApp",
		pub(owner), pub(operator), []byte{}, testPeerID, "unfunded",
		int64(pricemode.Vector), priceCPU, priceGPU, priceMemoryGB, priceStorageGB, priceBandwidthGB,
		testFeeRate, testVerifierRate, 1)
}

func TestAppstore_Deposit(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	id := env.createApp(t, owner, operator, 1000)

	tokenMint(t, env.token, operator.ScriptHash(), 500)
	c.WithSigners(operator).Invoke(t, stackitem.Null{}, "deposit", id, 500)
	env.token.Invoke(t, 1500, "balanceOf", c.Hash)

	outsider := c.NewAccount(t)
	c.WithSigners(outsider).InvokeFail(t, appstoreconst.ErrNotOwnerOrOperator, "deposit", id, 1)
	c.WithSigners(owner).InvokeFail(t, "non-positive amount", "deposit", id, 0)
	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrUnknownApp, "deposit", int64(100), 1)
}

func TestAppstore_ReportUsage(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	appID := env.createApp(t, owner, operator, 10_000)

	provOwner := c.NewAccount(t)
	provOperator := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, provOperator)

	u := defaultUsage(appID, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	pending, _, claimed, lastReport := env.accrual(t, appID, provID)
	require.EqualValues(t, defaultReward, pending)
	require.EqualValues(t, 0, claimed)
	require.EqualValues(t, u.timestamp, lastReport)

	// replays and stale timestamps are rejected
	c.InvokeFail(t, appstoreconst.ErrStaleReport, "reportUsage", u.args(t, signerKey(owner))...)
	stale := u
	stale.timestamp--
	c.InvokeFail(t, appstoreconst.ErrStaleReport, "reportUsage", stale.args(t, signerKey(owner))...)

	// operator signature is enough as well
	next := u
	next.timestamp++
	c.Invoke(t, stackitem.Null{}, "reportUsage", next.args(t, signerKey(operator))...)

	pending, _, _, _ = env.accrual(t, appID, provID)
	require.EqualValues(t, 2*defaultReward, pending)

	// a random key cannot attest alone
	next.timestamp++
	c.InvokeFail(t, appstoreconst.ErrInvalidSignature, "reportUsage",
		next.args(t, signerKey(c.NewAccount(t)))...)

	// a signature over another message is rejected
	tampered := next
	tampered.cpu++
	tamperedArgs := next.args(t, signerKey(owner))
	tamperedArgs[3] = tampered.cpu
	c.InvokeFail(t, appstoreconst.ErrInvalidSignature, "reportUsage", tamperedArgs...)

	// unknown peer
	badPeer := next
	badPeer.peerID = "12D3KooWUnknown"
	c.InvokeFail(t, appstoreconst.ErrUnknownPeer, "reportUsage", badPeer.args(t, signerKey(owner))...)

	// inactive provider
	env.providers.Invoke(t, stackitem.Null{}, "jail", provID)
	c.InvokeFail(t, appstoreconst.ErrInactiveProvider, "reportUsage", next.args(t, signerKey(owner))...)
	env.providers.Invoke(t, stackitem.Null{}, "unjail", provID)

	// a report past the remaining budget is rejected whole
	huge := next
	huge.duration = 1_000_000
	c.InvokeFail(t, appstoreconst.ErrInsufficientBudget, "reportUsage", huge.args(t, signerKey(owner))...)

	// and the rejection left the accrual untouched
	pending, _, _, _ = env.accrual(t, appID, provID)
	require.EqualValues(t, 2*defaultReward, pending)
}

func TestAppstore_VerifierQuorum(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	appID := env.createApp(t, owner, operator, 10_000)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))

	v1 := c.NewAccount(t)
	v2 := c.NewAccount(t)
	v3 := c.NewAccount(t)

	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setVerifiers", appID,
		[]interface{}{pub(v1), pub(v2), pub(v3)})
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(pub(v1)),
		stackitem.NewByteArray(pub(v2)),
		stackitem.NewByteArray(pub(v3)),
	}), "getVerifiers", appID)

	u := defaultUsage(appID, provID)

	// quorum of a 3-member set is 3
	c.InvokeFail(t, appstoreconst.ErrInvalidSignature, "reportUsage",
		u.args(t, signerKey(v1), signerKey(v2))...)

	// duplicates don't add votes
	c.InvokeFail(t, appstoreconst.ErrInvalidSignature, "reportUsage",
		u.args(t, signerKey(v1), signerKey(v1), signerKey(v2))...)

	// an outsider key poisons the whole report
	c.InvokeFail(t, appstoreconst.ErrInvalidSignature, "reportUsage",
		u.args(t, signerKey(v1), signerKey(v2), signerKey(c.NewAccount(t)))...)

	c.Invoke(t, stackitem.Null{}, "reportUsage",
		u.args(t, signerKey(v1), signerKey(v2), signerKey(v3))...)

	pending, _, _, _ := env.accrual(t, appID, provID)
	require.EqualValues(t, defaultReward, pending)
}

func TestAppstore_RemoveInactiveVerifier(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	appID := env.createApp(t, owner, c.NewAccount(t), 0)

	a := c.NewAccount(t)
	b := c.NewAccount(t)
	d := c.NewAccount(t)
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setVerifiers", appID,
		[]interface{}{pub(a), pub(b), pub(d)})

	c.InvokeFail(t, "index out of range", "removeInactiveVerifier", appID, int64(3))
	c.InvokeFail(t, appstoreconst.ErrVerifierNotSlashed, "removeInactiveVerifier", appID, int64(1))

	tokenMint(t, env.token, b.ScriptHash(), minStake)
	env.staking.WithSigners(b).Invoke(t, stackitem.Null{}, "stake", pub(b), minStake)
	env.staking.Invoke(t, stackitem.Null{}, "slash", pub(b), 10)

	// the last member is swapped into the freed slot
	c.Invoke(t, stackitem.Null{}, "removeInactiveVerifier", appID, int64(1))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(pub(a)),
		stackitem.NewByteArray(pub(d)),
	}), "getVerifiers", appID)

	tokenMint(t, env.token, a.ScriptHash(), minStake)
	env.staking.WithSigners(a).Invoke(t, stackitem.Null{}, "stake", pub(a), minStake)
	env.staking.Invoke(t, stackitem.Null{}, "slash", pub(a), 10)

	c.Invoke(t, stackitem.Null{}, "removeInactiveVerifier", appID, int64(0))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(pub(d)),
	}), "getVerifiers", appID)
}

func TestAppstore_ClaimReward(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	appID := env.createApp(t, owner, operator, 10_000)

	provOwner := c.NewAccount(t)
	provOperator := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, provOperator)

	outsider := c.NewAccount(t)
	c.WithSigners(outsider).InvokeFail(t, appstoreconst.ErrNotOwnerOrOperator, "claimReward", provID, appID)

	u := defaultUsage(appID, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	// gross 640 splits into 64 fee, 28 verifier cut and 548 net
	const (
		fee         = defaultReward * testFeeRate / 1000
		verifierFee = (defaultReward - fee) * testVerifierRate / 1000
		net         = defaultReward - fee - verifierFee
	)

	c.WithSigners(provOwner).Invoke(t, net, "claimReward", provID, appID)

	env.token.Invoke(t, fee, "balanceOf", env.treasury)
	// no assigned verifier, the cut goes to the operator
	env.token.Invoke(t, verifierFee, "balanceOf", operator.ScriptHash())
	env.token.Invoke(t, net, "balanceOf", provOwner.ScriptHash())
	env.token.Invoke(t, 10_000-defaultReward, "balanceOf", c.Hash)

	pending, _, claimed, _ := env.accrual(t, appID, provID)
	require.EqualValues(t, 0, pending)
	require.EqualValues(t, defaultReward, claimed)

	c.WithSigners(provOwner).InvokeFail(t, appstoreconst.ErrNoRewards, "claimReward", provID, appID)

	// a fresh accrual can be claimed by the application side too
	next := u
	next.timestamp++
	c.Invoke(t, stackitem.Null{}, "reportUsage", next.args(t, signerKey(owner))...)
	c.WithSigners(operator).Invoke(t, net, "claimReward", provID, appID)
}

func TestAppstore_RewardLock(t *testing.T) {
	lock := int64(30 * 24 * time.Hour / time.Millisecond)
	env := newAppstoreEnv(t, lock)
	c := env.appstore

	owner := c.NewAccount(t)
	appID := env.createApp(t, owner, c.NewAccount(t), 10_000)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))

	u := defaultUsage(appID, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	c.WithSigners(provOwner).InvokeFail(t, appstoreconst.ErrRewardLocked, "claimReward", provID, appID)

	_, unlockAt, _, _ := env.accrual(t, appID, provID)
	require.NotZero(t, unlockAt)

	// new accruals join the batch without moving the unlock time
	next := u
	next.timestamp++
	c.Invoke(t, stackitem.Null{}, "reportUsage", next.args(t, signerKey(owner))...)

	_, unlockAt2, _, _ := env.accrual(t, appID, provID)
	require.EqualValues(t, unlockAt, unlockAt2)
}

func TestAppstore_RefundProvider(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	appID := env.createApp(t, owner, c.NewAccount(t), defaultReward)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))

	u := defaultUsage(appID, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrProviderNotJailed, "refundProvider", appID, provID)

	env.providers.Invoke(t, stackitem.Null{}, "jail", provID)

	c.WithSigners(provOwner).InvokeFail(t, appstoreconst.ErrProviderJailed, "claimReward", provID, appID)
	c.WithSigners(provOwner).InvokeFail(t, common.ErrOwnerWitnessFailed, "refundProvider", appID, provID)

	c.WithSigners(owner).Invoke(t, defaultReward, "refundProvider", appID, provID)

	pending, _, _, _ := env.accrual(t, appID, provID)
	require.EqualValues(t, 0, pending)

	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrNoRewards, "refundProvider", appID, provID)

	env.providers.Invoke(t, stackitem.Null{}, "unjail", provID)
	c.WithSigners(provOwner).InvokeFail(t, appstoreconst.ErrNoRewards, "claimReward", provID, appID)

	// the refund restored the whole budget
	next := u
	next.timestamp++
	c.Invoke(t, stackitem.Null{}, "reportUsage", next.args(t, signerKey(owner))...)
}

func TestAppstore_ExampleScenario(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)

	const (
		price  = 10_000_000_000_000 // 1e-5 of an 18-decimal unit
		budget = 2_000_000_000_000_000_000
	)

	tokenMint(t, env.token, owner.ScriptHash(), budget)
	args := []interface{}{
		pub(owner), pub(operator), []byte{}, testPeerID, "reference-app",
		int64(pricemode.Vector),
		price, price, price, price, price,
		50, 0, budget,
	}
	c.WithSigners(owner).Invoke(t, 1, "createApp", args...)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))

	u := usageReport{
		appID:      1,
		providerID: provID,
		peerID:     testPeerID,
		cpu:        10,
		gpu:        5,
		memory:     10 * gigabyte,
		storage:    20 * gigabyte,
		upload:     1 * gigabyte,
		download:   2 * gigabyte,
		duration:   3600,
		timestamp:  1000,
	}
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	// 3600 * (10+5+10+20+3) * price
	reward := big.NewInt(1_728_000_000_000_000_000)
	s, err := c.TestInvoke(t, "getAccrual", int64(1), provID)
	require.NoError(t, err)
	pending, err := s.Pop().Array()[0].TryInteger()
	require.NoError(t, err)
	require.Zero(t, reward.Cmp(pending))

	fee := new(big.Int).Div(new(big.Int).Mul(reward, big.NewInt(50)), big.NewInt(1000))
	net := new(big.Int).Sub(reward, fee)

	c.WithSigners(provOwner).Invoke(t, stackitem.NewBigInteger(net), "claimReward", provID, int64(1))

	env.token.Invoke(t, stackitem.NewBigInteger(fee), "balanceOf", env.treasury)
	env.token.Invoke(t, stackitem.NewBigInteger(net), "balanceOf", provOwner.ScriptHash())
}

func TestAppstore_UnitSumPricing(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)

	tokenMint(t, env.token, owner.ScriptHash(), 1_000_000)
	args := []interface{}{
		pub(owner), pub(operator), []byte{}, testPeerID, "unit-sum-app",
		int64(pricemode.UnitSum),
		0, 0, 0, 0, 0,
		0, 0, 1_000_000,
	}
	c.WithSigners(owner).Invoke(t, 1, "createApp", args...)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))

	u := defaultUsage(1, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	// 10 * (4 + 1 + 2 + 3 + 2) = 120 normalized units
	pending, _, _, _ := env.accrual(t, 1, provID)
	require.EqualValues(t, 120, pending)
}

func TestAppstore_AccrualPairIsolation(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	// ids 1 and 257 produce composed keys of the same length, so a sloppy
	// key encoding would alias (app 257, provider 1) with (app 1, provider 257)
	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	for i := 0; i < 256; i++ {
		env.createApp(t, owner, operator, 0)
	}
	appID := env.createApp(t, owner, operator, 10_000)
	require.EqualValues(t, 257, appID)

	provOwner := c.NewAccount(t)
	provID := env.registerProvider(t, provOwner, c.NewAccount(t))
	require.EqualValues(t, 1, provID)

	u := defaultUsage(appID, provID)
	c.Invoke(t, stackitem.Null{}, "reportUsage", u.args(t, signerKey(owner))...)

	pending, _, _, _ := env.accrual(t, appID, provID)
	require.EqualValues(t, defaultReward, pending)

	pending, unlockAt, claimed, last := env.accrual(t, 1, 257)
	require.Zero(t, pending)
	require.Zero(t, unlockAt)
	require.Zero(t, claimed)
	require.Zero(t, last)
}

func TestAppstore_Setters(t *testing.T) {
	env := newAppstoreEnv(t, 0)
	c := env.appstore

	owner := c.NewAccount(t)
	operator := c.NewAccount(t)
	appID := env.createApp(t, owner, operator, 0)

	newOperator := c.NewAccount(t)
	c.WithSigners(operator).InvokeFail(t, common.ErrOwnerWitnessFailed, "setOperator", appID, pub(newOperator))
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setOperator", appID, pub(newOperator))

	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setVerifier", appID, pub(c.NewAccount(t)))
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setPeerID", appID, "12D3KooWNewPeer")
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setFeeRate", appID, 500)
	c.WithSigners(owner).InvokeFail(t, appstoreconst.ErrRateTooHigh, "setFeeRate", appID, 1001)
	c.WithSigners(owner).Invoke(t, stackitem.Null{}, "setVerifierRewardRate", appID, 250)

	treasury := c.NewAccount(t).ScriptHash()
	c.WithSigners(owner).InvokeFail(t, common.ErrCommitteeWitnessFailed, "setTreasury", treasury)
	c.Invoke(t, stackitem.Null{}, "setTreasury", treasury)
	s, err := c.TestInvoke(t, "treasury")
	require.NoError(t, err)
	require.Equal(t, treasury.BytesBE(), s.Pop().Bytes())

	c.Invoke(t, stackitem.Null{}, "setRewardLockDuration", 12345)
	c.Invoke(t, 12345, "rewardLockDuration")
}
