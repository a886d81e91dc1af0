package appstore

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/appstoreconst"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/pricemode"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
)

type (
	// App is the on-chain record of a metered application.
	App struct {
		ID       int
		Owner    interop.PublicKey
		Operator interop.PublicKey
		// Verifier receives the verifier cut of settled rewards. May be
		// empty, in which case the cut goes to the operator.
		Verifier interop.PublicKey
		PeerID   string
		Name     string

		Budget      int
		SpentBudget int

		// FeeRate and VerifierRewardRate are parts per 1000.
		FeeRate            int
		VerifierRewardRate int

		PriceMode           pricemode.Type
		PricePerCPU         int
		PricePerGPU         int
		PricePerMemoryGB    int
		PricePerStorageGB   int
		PricePerBandwidthGB int
	}

	// Accrual tracks rewards credited to a (application, provider) pair
	// but not yet claimed.
	Accrual struct {
		Pending      int
		UnlockAt     int
		TotalClaimed int
		LastReportAt int
	}

	// usageRecord is the exact tuple signed by usage attestations. Tag
	// domain-separates the signature from any other message.
	usageRecord struct {
		Tag               string
		AppID             int
		ProviderID        int
		PeerID            string
		UsedCPU           int
		UsedGPU           int
		UsedMemoryBytes   int
		UsedStorageBytes  int
		UsedUploadBytes   int
		UsedDownloadBytes int
		Duration          int
		Timestamp         int
	}

	// providerRecord is a copy of providers.Provider to prevent
	// cross-contract imports that may fail due to internal `_deploy` calls.
	providerRecord struct {
		ID       int
		Owner    interop.PublicKey
		Operator interop.PublicKey
		Info     []byte
		State    int
		Jailed   bool
	}
)

const (
	// attestationDomain is the tag of every signed usage record.
	attestationDomain = "SubnetUsageV1"

	// rateDenominator is the denominator of fee and verifier reward rates.
	rateDenominator = 1000

	// gigabyte normalizes byte counters of usage reports.
	gigabyte = 1_000_000_000
)

const (
	counterKey = 'i'

	appPrefix          = 'a'
	verifierListPrefix = 'v'
	accrualPrefix      = 'r'

	tokenContractKey     = 't'
	providersContractKey = 'p'
	stakingContractKey   = 's'
	treasuryKey          = 'y'
	rewardLockKey        = 'l'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	args := data.([]any)
	addrToken := args[0].(interop.Hash160)
	addrProviders := args[1].(interop.Hash160)
	addrStaking := args[2].(interop.Hash160)
	treasury := args[3].(interop.Hash160)
	rewardLock := args[4].(int)

	if len(addrToken) != interop.Hash160Len ||
		len(addrProviders) != interop.Hash160Len ||
		len(addrStaking) != interop.Hash160Len ||
		len(treasury) != interop.Hash160Len {
		panic("invalid deploy arguments")
	}
	if rewardLock < 0 {
		panic("negative reward lock duration")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, providersContractKey, addrProviders)
	storage.Put(ctx, stakingContractKey, addrStaking)
	storage.Put(ctx, treasuryKey, treasury)
	storage.Put(ctx, rewardLockKey, rewardLock)

	runtime.Log("appstore contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update", contract.All,
		script, manifest, common.AppendVersion(data))
	runtime.Log("appstore contract updated")
}

// CreateApp registers a new application and returns its id. It must be
// witnessed by the owner key. The initial budget, if non-zero, is
// transferred from the owner's token account into contract custody.
//
// Fee and verifier reward rates are parts per 1000 and may not exceed 1000.
// The verifier key may be empty.
func CreateApp(ownerKey, operatorKey, verifierKey interop.PublicKey,
	peerID, name string, priceMode pricemode.Type,
	pricePerCPU, pricePerGPU, pricePerMemoryGB, pricePerStorageGB, pricePerBandwidthGB int,
	feeRate, verifierRewardRate, initialBudget int) int {
	if len(ownerKey) != interop.PublicKeyCompressedLen {
		panic("invalid owner")
	}
	if len(operatorKey) != interop.PublicKeyCompressedLen {
		panic("invalid operator")
	}
	if len(verifierKey) != 0 && len(verifierKey) != interop.PublicKeyCompressedLen {
		panic("invalid verifier")
	}
	checkRate(feeRate)
	checkRate(verifierRewardRate)
	if priceMode != pricemode.Vector && priceMode != pricemode.UnitSum {
		panic("unsupported price mode")
	}
	if pricePerCPU < 0 || pricePerGPU < 0 || pricePerMemoryGB < 0 ||
		pricePerStorageGB < 0 || pricePerBandwidthGB < 0 {
		panic("negative price")
	}
	if initialBudget < 0 {
		panic("negative budget")
	}

	common.CheckOwnerWitness(ownerKey)

	ctx := storage.GetContext()
	id := getCounter(ctx) + 1
	storage.Put(ctx, counterKey, id)

	if initialBudget > 0 {
		depositToSelf(ctx, contract.CreateStandardAccount(ownerKey), initialBudget, id)
	}

	app := App{
		ID:                  id,
		Owner:               ownerKey,
		Operator:            operatorKey,
		Verifier:            verifierKey,
		PeerID:              peerID,
		Name:                name,
		Budget:              initialBudget,
		SpentBudget:         0,
		FeeRate:             feeRate,
		VerifierRewardRate:  verifierRewardRate,
		PriceMode:           priceMode,
		PricePerCPU:         pricePerCPU,
		PricePerGPU:         pricePerGPU,
		PricePerMemoryGB:    pricePerMemoryGB,
		PricePerStorageGB:   pricePerStorageGB,
		PricePerBandwidthGB: pricePerBandwidthGB,
	}
	putApp(ctx, app)

	runtime.Notify("AppCreated", id, ownerKey)
	return id
}

// Deposit adds funds to the application budget. It must be witnessed by the
// application owner or operator; the witnessed account pays.
func Deposit(appID int, amount int) {
	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	app := getApp(ctx, appID)

	var payer interop.Hash160
	if runtime.CheckWitness(app.Owner) {
		payer = contract.CreateStandardAccount(app.Owner)
	} else if runtime.CheckWitness(app.Operator) {
		payer = contract.CreateStandardAccount(app.Operator)
	} else {
		panic(appstoreconst.ErrNotOwnerOrOperator)
	}

	depositToSelf(ctx, payer, amount, appID)

	app.Budget += amount
	putApp(ctx, app)

	runtime.Notify("Deposit", appID, amount)
}

// SetOperator replaces the application operator key. Owner only.
func SetOperator(appID int, operatorKey interop.PublicKey) {
	if len(operatorKey) != interop.PublicKeyCompressedLen {
		panic("invalid operator")
	}

	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	app.Operator = operatorKey
	putApp(ctx, app)
}

// SetVerifier replaces the application's assigned verifier key. An empty
// key redirects the verifier cut to the operator. Owner only.
func SetVerifier(appID int, verifierKey interop.PublicKey) {
	if len(verifierKey) != 0 && len(verifierKey) != interop.PublicKeyCompressedLen {
		panic("invalid verifier")
	}

	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	app.Verifier = verifierKey
	putApp(ctx, app)
}

// SetPeerID replaces the application peer id. Owner only.
func SetPeerID(appID int, peerID string) {
	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	app.PeerID = peerID
	putApp(ctx, app)
}

// SetFeeRate replaces the treasury fee rate (parts per 1000) applied at
// settlement. Owner only. Rates above 1000 are rejected.
func SetFeeRate(appID int, feeRate int) {
	checkRate(feeRate)

	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	app.FeeRate = feeRate
	putApp(ctx, app)
}

// SetVerifierRewardRate replaces the verifier reward rate (parts per 1000)
// applied at settlement. Owner only. Rates above 1000 are rejected.
func SetVerifierRewardRate(appID int, verifierRewardRate int) {
	checkRate(verifierRewardRate)

	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	app.VerifierRewardRate = verifierRewardRate
	putApp(ctx, app)
}

// SetVerifiers replaces the ordered verifier set co-signing usage
// attestations for the application. Owner only.
func SetVerifiers(appID int, verifierKeys []interop.PublicKey) {
	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	list := [][]byte{}
	for i := 0; i < len(verifierKeys); i++ {
		key := verifierKeys[i]
		if len(key) != interop.PublicKeyCompressedLen {
			panic("invalid verifier")
		}
		list = append(list, key)
	}

	common.SetSerialized(ctx, verifierListKey(appID), list)
}

// GetVerifiers returns the ordered verifier set of the application.
func GetVerifiers(appID int) [][]byte {
	ctx := storage.GetReadOnlyContext()
	getApp(ctx, appID) // existence check

	return common.GetList(ctx, verifierListKey(appID))
}

// RemoveInactiveVerifier removes the verifier at the given index of the
// application's verifier set if the staking contract reports it slashed.
// The last member is swapped into the freed slot, so indices are not stable
// across removals and must be re-fetched after every call. Callable by
// anyone.
func RemoveInactiveVerifier(appID int, index int) {
	ctx := storage.GetContext()
	getApp(ctx, appID) // existence check

	list := common.GetList(ctx, verifierListKey(appID))
	if index < 0 || index >= len(list) {
		panic("index out of range")
	}

	key := list[index]
	addrStaking := storage.Get(ctx, stakingContractKey).(interop.Hash160)
	slashed := contract.Call(addrStaking, "isSlashed", contract.ReadOnly, key).(bool)
	if !slashed {
		panic(appstoreconst.ErrVerifierNotSlashed)
	}

	list[index] = list[len(list)-1]
	shortened := make([][]byte, 0)
	for i := 0; i < len(list)-1; i++ {
		shortened = append(shortened, list[i])
	}
	common.SetSerialized(ctx, verifierListKey(appID), shortened)

	runtime.Notify("VerifierRemoved", appID, interop.PublicKey(key))
}

// ReportUsage validates a signed usage attestation and converts it into a
// locked reward accrual for the (application, provider) pair.
//
// The attestation message is the serialized usage record tagged with the
// attestation domain; signers and signatures are parallel lists. A single
// valid signature of the application owner or operator satisfies the
// policy; otherwise a 2/3+1 quorum of the application's verifier set must
// have signed, counted without duplicates. Any signer outside these sets
// and any signature failing verification rejects the whole report.
//
// Timestamps must strictly increase per (application, provider) pair, which
// rejects stale and replayed reports. The reward is priced per the
// application's pricing mode and must fit into the remaining budget.
func ReportUsage(appID, providerID int, peerID string,
	usedCPU, usedGPU, usedMemoryBytes, usedStorageBytes, usedUploadBytes, usedDownloadBytes int,
	duration, timestamp int,
	signers []interop.PublicKey, signatures []interop.Signature) {
	if usedCPU < 0 || usedGPU < 0 || usedMemoryBytes < 0 || usedStorageBytes < 0 ||
		usedUploadBytes < 0 || usedDownloadBytes < 0 || duration < 0 || timestamp <= 0 {
		panic("invalid usage value")
	}

	ctx := storage.GetContext()
	app := getApp(ctx, appID)

	addrProviders := storage.Get(ctx, providersContractKey).(interop.Hash160)
	if !contract.Call(addrProviders, "isActive", contract.ReadOnly, providerID).(bool) {
		panic(appstoreconst.ErrInactiveProvider)
	}
	if !contract.Call(addrProviders, "resolvePeer", contract.ReadOnly, providerID, peerID).(bool) {
		panic(appstoreconst.ErrUnknownPeer)
	}

	accrual := getAccrual(ctx, appID, providerID)
	if timestamp <= accrual.LastReportAt {
		panic(appstoreconst.ErrStaleReport)
	}

	record := usageRecord{
		Tag:               attestationDomain,
		AppID:             appID,
		ProviderID:        providerID,
		PeerID:            peerID,
		UsedCPU:           usedCPU,
		UsedGPU:           usedGPU,
		UsedMemoryBytes:   usedMemoryBytes,
		UsedStorageBytes:  usedStorageBytes,
		UsedUploadBytes:   usedUploadBytes,
		UsedDownloadBytes: usedDownloadBytes,
		Duration:          duration,
		Timestamp:         timestamp,
	}
	checkAttestation(ctx, app, std.Serialize(record), signers, signatures)

	reward := calculateReward(app, usedCPU, usedGPU, usedMemoryBytes,
		usedStorageBytes, usedUploadBytes, usedDownloadBytes, duration)

	if app.SpentBudget+reward > app.Budget {
		panic(appstoreconst.ErrInsufficientBudget)
	}

	app.SpentBudget += reward
	putApp(ctx, app)

	if accrual.Pending == 0 {
		accrual.UnlockAt = runtime.GetTime() + rewardLockDuration(ctx)
	}
	accrual.Pending += reward
	accrual.LastReportAt = timestamp
	putAccrual(ctx, appID, providerID, accrual)

	runtime.Notify("UsageAccepted", appID, providerID, peerID, reward)
}

// ClaimReward settles the matured pending reward of the (application,
// provider) pair. It must be witnessed by the provider owner or operator,
// or by the application owner or operator.
//
// The gross amount R splits into `fee = R*feeRate/1000` for the treasury,
// `verifierFee = (R-fee)*verifierRewardRate/1000` for the application's
// verifier (operator when unset) and the remainder for the provider owner.
// Any transfer failure aborts the whole claim. Returns the net amount.
func ClaimReward(providerID, appID int) int {
	ctx := storage.GetContext()
	app := getApp(ctx, appID)

	addrProviders := storage.Get(ctx, providersContractKey).(interop.Hash160)
	provider := contract.Call(addrProviders, "get", contract.ReadOnly, providerID).(providerRecord)

	if !runtime.CheckWitness(provider.Owner) &&
		!runtime.CheckWitness(provider.Operator) &&
		!runtime.CheckWitness(app.Owner) &&
		!runtime.CheckWitness(app.Operator) {
		panic(appstoreconst.ErrNotOwnerOrOperator)
	}

	if provider.Jailed {
		panic(appstoreconst.ErrProviderJailed)
	}

	accrual := getAccrual(ctx, appID, providerID)
	gross := accrual.Pending
	if gross == 0 {
		panic(appstoreconst.ErrNoRewards)
	}
	if runtime.GetTime() < accrual.UnlockAt {
		panic(appstoreconst.ErrRewardLocked)
	}

	fee := gross * app.FeeRate / rateDenominator
	verifierFee := (gross - fee) * app.VerifierRewardRate / rateDenominator
	net := gross - fee - verifierFee

	addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	if fee > 0 {
		treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)
		mustTransfer(addrToken, self, treasury, fee, common.FeeDetails(appID))
	}
	if verifierFee > 0 {
		verifier := app.Verifier
		if len(verifier) == 0 {
			verifier = app.Operator
		}
		mustTransfer(addrToken, self, contract.CreateStandardAccount(verifier),
			verifierFee, common.VerifierRewardDetails(appID))
	}
	payee := contract.CreateStandardAccount(provider.Owner)
	mustTransfer(addrToken, self, payee, net, common.RewardDetails(appID, providerID))

	accrual.Pending = 0
	accrual.TotalClaimed += gross
	putAccrual(ctx, appID, providerID, accrual)

	runtime.Notify("RewardClaimed", appID, providerID, net, fee, verifierFee, payee)
	return net
}

// RefundProvider moves the whole pending accrual of a jailed provider back
// into the application's spendable budget. Only the application owner may
// invoke it, and only while the provider is jailed. No tokens leave
// contract custody. Returns the refunded amount.
func RefundProvider(appID, providerID int) int {
	ctx := storage.GetContext()
	app := getApp(ctx, appID)
	common.CheckOwnerWitness(app.Owner)

	addrProviders := storage.Get(ctx, providersContractKey).(interop.Hash160)
	if !contract.Call(addrProviders, "isJailed", contract.ReadOnly, providerID).(bool) {
		panic(appstoreconst.ErrProviderNotJailed)
	}

	accrual := getAccrual(ctx, appID, providerID)
	amount := accrual.Pending
	if amount == 0 {
		panic(appstoreconst.ErrNoRewards)
	}

	app.SpentBudget -= amount
	putApp(ctx, app)

	accrual.Pending = 0
	putAccrual(ctx, appID, providerID, accrual)

	runtime.Notify("ProviderRefunded", appID, providerID, amount)
	return amount
}

// SetTreasury replaces the treasury account receiving settlement fees. It
// can be invoked only by the committee.
func SetTreasury(treasury interop.Hash160) {
	if len(treasury) != interop.Hash160Len {
		panic("invalid treasury")
	}

	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	storage.Put(ctx, treasuryKey, treasury)
}

// SetRewardLockDuration replaces the reward lock duration (milliseconds)
// applied to new accrual batches. It can be invoked only by the committee.
func SetRewardLockDuration(duration int) {
	if duration < 0 {
		panic("negative reward lock duration")
	}

	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	storage.Put(ctx, rewardLockKey, duration)
}

// Treasury returns the treasury account.
func Treasury() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, treasuryKey).(interop.Hash160)
}

// RewardLockDuration returns the reward lock duration in milliseconds.
func RewardLockDuration() int {
	ctx := storage.GetReadOnlyContext()
	return rewardLockDuration(ctx)
}

// GetApp returns the application record.
//
// If the application doesn't exist, it panics with ErrUnknownApp.
func GetApp(appID int) App {
	ctx := storage.GetReadOnlyContext()
	return getApp(ctx, appID)
}

// AppExists returns true if the application id is registered.
func AppExists(appID int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, appKey(appID)) != nil
}

// AppCount returns the number of registered applications.
func AppCount() int {
	ctx := storage.GetReadOnlyContext()
	return getCounter(ctx)
}

// GetAccrual returns the accrual record of the (application, provider)
// pair. Pairs without history yield a zero record.
//
// If the application doesn't exist, it panics with ErrUnknownApp.
func GetAccrual(appID, providerID int) Accrual {
	ctx := storage.GetReadOnlyContext()
	getApp(ctx, appID) // existence check

	return getAccrual(ctx, appID, providerID)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// checkAttestation panics with ErrInvalidSignature unless the signer list
// satisfies the application's signing policy for msg.
func checkAttestation(ctx storage.Context, app App, msg []byte,
	signers []interop.PublicKey, signatures []interop.Signature) {
	if len(signers) == 0 || len(signers) != len(signatures) {
		panic(appstoreconst.ErrInvalidSignature)
	}

	verifierSet := common.GetList(ctx, verifierListKey(app.ID))

	var (
		seen       [][]byte
		votes      int
		authorized bool
	)
	for i := 0; i < len(signers); i++ {
		pub := signers[i]
		sig := signatures[i]
		if len(pub) != interop.PublicKeyCompressedLen || len(sig) != interop.SignatureLen {
			panic(appstoreconst.ErrInvalidSignature)
		}
		if !crypto.VerifyWithECDsa(msg, pub, sig, crypto.Secp256r1) {
			panic(appstoreconst.ErrInvalidSignature)
		}

		if keyInList(seen, pub) {
			continue
		}
		seen = append(seen, pub)

		if common.BytesEqual(pub, app.Owner) || common.BytesEqual(pub, app.Operator) {
			authorized = true
			continue
		}
		if !keyInList(verifierSet, pub) {
			panic(appstoreconst.ErrInvalidSignature)
		}
		votes++
	}

	if authorized {
		return
	}
	if len(verifierSet) == 0 || votes < common.QuorumThreshold(len(verifierSet)) {
		panic(appstoreconst.ErrInvalidSignature)
	}
}

// calculateReward prices the usage per the application's pricing mode.
// Byte counters normalize to decimal gigabytes; bandwidth combines upload
// and download. VM integers are 256 bit wide, so the arithmetic cannot
// silently wrap.
func calculateReward(app App, usedCPU, usedGPU, usedMemoryBytes, usedStorageBytes,
	usedUploadBytes, usedDownloadBytes, duration int) int {
	bandwidthBytes := usedUploadBytes + usedDownloadBytes

	if app.PriceMode == pricemode.UnitSum {
		return duration * (usedCPU + usedGPU +
			usedMemoryBytes/gigabyte + usedStorageBytes/gigabyte + bandwidthBytes/gigabyte)
	}

	total := usedCPU*app.PricePerCPU +
		usedGPU*app.PricePerGPU +
		app.PricePerMemoryGB*usedMemoryBytes/gigabyte +
		app.PricePerStorageGB*usedStorageBytes/gigabyte +
		app.PricePerBandwidthGB*bandwidthBytes/gigabyte
	return duration * total
}

func checkRate(rate int) {
	if rate < 0 || rate > rateDenominator {
		panic(appstoreconst.ErrRateTooHigh)
	}
}

func depositToSelf(ctx storage.Context, payer interop.Hash160, amount, appID int) {
	addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	self := runtime.GetExecutingScriptHash()

	ok := contract.Call(addrToken, "transfer", contract.All,
		payer, self, amount, common.DepositDetails(appID)).(bool)
	if !ok {
		panic(appstoreconst.ErrDepositFailed)
	}
}

func mustTransfer(addrToken, from, to interop.Hash160, amount int, details []byte) {
	ok := contract.Call(addrToken, "transfer", contract.All,
		from, to, amount, details).(bool)
	if !ok {
		panic(appstoreconst.ErrPayoutFailed)
	}
}

func keyInList(list [][]byte, key []byte) bool {
	for i := 0; i < len(list); i++ {
		if common.BytesEqual(list[i], key) {
			return true
		}
	}

	return false
}

func getCounter(ctx storage.Context) int {
	count := storage.Get(ctx, counterKey)
	if count != nil {
		return count.(int)
	}

	return 0
}

func rewardLockDuration(ctx storage.Context) int {
	return storage.Get(ctx, rewardLockKey).(int)
}

func appKey(appID int) []byte {
	return append([]byte{appPrefix}, convert.ToBytes(appID)...)
}

func verifierListKey(appID int) []byte {
	return append([]byte{verifierListPrefix}, convert.ToBytes(appID)...)
}

// accrualKey composes the storage key of an (application, provider) pair.
// Both ids are encoded fixed-width so that keys of distinct pairs can never
// collide.
func accrualKey(appID, providerID int) []byte {
	key := append([]byte{accrualPrefix}, idBytes(appID)...)
	return append(key, idBytes(providerID)...)
}

// idBytes encodes a positive id as exactly 8 little-endian bytes.
func idBytes(id int) []byte {
	b := convert.ToBytes(id)
	for len(b) < 8 {
		b = append(b, 0)
	}

	return b
}

func getApp(ctx storage.Context, appID int) App {
	data := storage.Get(ctx, appKey(appID))
	if data == nil {
		panic(appstoreconst.ErrUnknownApp)
	}

	return std.Deserialize(data.([]byte)).(App)
}

func putApp(ctx storage.Context, app App) {
	common.SetSerialized(ctx, appKey(app.ID), app)
}

func getAccrual(ctx storage.Context, appID, providerID int) Accrual {
	data := storage.Get(ctx, accrualKey(appID, providerID))
	if data == nil {
		return Accrual{}
	}

	return std.Deserialize(data.([]byte)).(Accrual)
}

func putAccrual(ctx storage.Context, appID, providerID int, accrual Accrual) {
	common.SetSerialized(ctx, accrualKey(appID, providerID), accrual)
}
