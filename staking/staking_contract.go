package staking

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/staking/stakestate"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/staking/stakingconst"
)

type (
	// StakeRecord groups the collateral state of a single verifier key.
	StakeRecord struct {
		Verifier        interop.PublicKey
		Amount          int
		SlashPercentage int
		Status          stakestate.Type
		ExitRequestedAt int
	}
)

const (
	stakePrefix = 's'

	tokenContractKey = 't'
	treasuryKey      = 'y'
	minStakeKey      = 'm'
	exitLockKey      = 'e'
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
	treasury := args[1].(interop.Hash160)
	minStake := args[2].(int)
	exitLock := args[3].(int)

	if len(addrToken) != interop.Hash160Len || len(treasury) != interop.Hash160Len {
		panic("invalid deploy arguments")
	}
	if minStake < 0 || exitLock < 0 {
		panic("invalid deploy arguments")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, treasuryKey, treasury)
	storage.Put(ctx, minStakeKey, minStake)
	storage.Put(ctx, exitLockKey, exitLock)

	runtime.Log("staking contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update", contract.All,
		script, manifest, common.AppendVersion(data))
	runtime.Log("staking contract updated")
}

// Stake transfers verifier collateral into contract custody. It must be
// witnessed by the verifier key. The first call must meet the configured
// minimum; further calls top the collateral up while the stake is still
// Registered.
func Stake(verifierKey interop.PublicKey, amount int) {
	if len(verifierKey) != interop.PublicKeyCompressedLen {
		panic("invalid verifier key")
	}
	if amount <= 0 {
		panic("non-positive amount")
	}

	common.CheckWitness(verifierKey)

	ctx := storage.GetContext()
	rec, ok := tryGetStake(ctx, verifierKey)
	if !ok {
		minStake := storage.Get(ctx, minStakeKey).(int)
		if amount < minStake {
			panic(stakingconst.ErrBelowMinimum)
		}

		rec = StakeRecord{
			Verifier: verifierKey,
			Status:   stakestate.Registered,
		}
	} else if rec.Status != stakestate.Registered {
		panic("stake is not accepting top-ups")
	}

	addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	from := contract.CreateStandardAccount(verifierKey)
	self := runtime.GetExecutingScriptHash()

	okT := contract.Call(addrToken, "transfer", contract.All,
		from, self, amount, common.StakeDetails()).(bool)
	if !okT {
		panic(stakingconst.ErrTransferFailed)
	}

	rec.Amount += amount
	putStake(ctx, rec)

	runtime.Notify("Stake", verifierKey, amount)
}

// Slash records a slash percentage (whole percent, 0..100) against the
// verifier collateral. It can be invoked only by the committee. A repeated
// slash replaces the stored percentage, it never compounds. Slashing an
// Exiting stake keeps its status (transitions never move backwards); an
// Exited stake cannot be slashed.
func Slash(verifierKey interop.PublicKey, percentage int) {
	common.CheckCommitteeWitness()

	if percentage < 0 || percentage > 100 {
		panic(stakingconst.ErrBadPercentage)
	}

	ctx := storage.GetContext()
	rec := getStake(ctx, verifierKey)
	if rec.Status == stakestate.Exited {
		panic(stakingconst.ErrAlreadyExited)
	}

	rec.SlashPercentage = percentage
	if rec.Status == stakestate.Registered {
		rec.Status = stakestate.Slashed
	}
	putStake(ctx, rec)

	runtime.Notify("Slash", verifierKey, percentage)
}

// Exit drives the two-phase collateral release. It must be witnessed by the
// verifier key. The first call moves the stake to Exiting and records the
// request time. A second call after the configured exit lock releases
// `amount*(100-slashPercentage)/100` to the verifier, moves the forfeited
// remainder to the treasury and marks the stake Exited. A second call before
// the lock has elapsed fails with ErrStillLocked.
func Exit(verifierKey interop.PublicKey) {
	common.CheckWitness(verifierKey)

	ctx := storage.GetContext()
	rec := getStake(ctx, verifierKey)

	switch rec.Status {
	case stakestate.Registered, stakestate.Slashed:
		rec.Status = stakestate.Exiting
		rec.ExitRequestedAt = runtime.GetTime()
		putStake(ctx, rec)

		runtime.Notify("ExitRequested", verifierKey, rec.ExitRequestedAt)
	case stakestate.Exiting:
		exitLock := storage.Get(ctx, exitLockKey).(int)
		if runtime.GetTime() < rec.ExitRequestedAt+exitLock {
			panic(stakingconst.ErrStillLocked)
		}

		release := rec.Amount * (100 - rec.SlashPercentage) / 100
		forfeit := rec.Amount - release

		addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		self := runtime.GetExecutingScriptHash()
		to := contract.CreateStandardAccount(verifierKey)

		if release > 0 {
			ok := contract.Call(addrToken, "transfer", contract.All,
				self, to, release, common.StakeReleaseDetails()).(bool)
			if !ok {
				panic(stakingconst.ErrTransferFailed)
			}
		}
		if forfeit > 0 {
			treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)
			ok := contract.Call(addrToken, "transfer", contract.All,
				self, treasury, forfeit, common.StakeForfeitDetails()).(bool)
			if !ok {
				panic(stakingconst.ErrTransferFailed)
			}
		}

		rec.Amount = 0
		rec.Status = stakestate.Exited
		putStake(ctx, rec)

		runtime.Notify("Exit", verifierKey, release, forfeit)
	default:
		panic(stakingconst.ErrAlreadyExited)
	}
}

// Get returns the stake record of the verifier key.
//
// If no collateral is recorded, it panics with ErrUnknownStake.
func Get(verifierKey interop.PublicKey) StakeRecord {
	ctx := storage.GetReadOnlyContext()
	return getStake(ctx, verifierKey)
}

// StatusOf returns the stake status of the verifier key.
//
// If no collateral is recorded, it panics with ErrUnknownStake.
func StatusOf(verifierKey interop.PublicKey) stakestate.Type {
	ctx := storage.GetReadOnlyContext()
	return getStake(ctx, verifierKey).Status
}

// IsSlashed returns true if the verifier key carries a non-zero slash
// percentage. Unknown keys are reported as not slashed.
func IsSlashed(verifierKey interop.PublicKey) bool {
	ctx := storage.GetReadOnlyContext()
	rec, ok := tryGetStake(ctx, verifierKey)
	if !ok {
		return false
	}

	return rec.SlashPercentage > 0
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func stakeKey(verifierKey interop.PublicKey) []byte {
	return append([]byte{stakePrefix}, verifierKey...)
}

func getStake(ctx storage.Context, verifierKey interop.PublicKey) StakeRecord {
	rec, ok := tryGetStake(ctx, verifierKey)
	if !ok {
		panic(stakingconst.ErrUnknownStake)
	}

	return rec
}

func tryGetStake(ctx storage.Context, verifierKey interop.PublicKey) (StakeRecord, bool) {
	data := storage.Get(ctx, stakeKey(verifierKey))
	if data == nil {
		return StakeRecord{}, false
	}

	return std.Deserialize(data.([]byte)).(StakeRecord), true
}

func putStake(ctx storage.Context, rec StakeRecord) {
	common.SetSerialized(ctx, stakeKey(rec.Verifier), rec)
}
