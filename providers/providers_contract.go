package providers

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/common"
	"github.com/unicornultrafoundation/subnet-contracts-sub001/providers/providerstate"
)

type (
	// Provider groups the on-chain state of a single compute provider.
	Provider struct {
		ID       int
		Owner    interop.PublicKey
		Operator interop.PublicKey
		Info     []byte
		State    providerstate.Type
		Jailed   bool
	}
)

const (
	// ErrNotFound is thrown when the provider id is not registered.
	ErrNotFound = "provider not found"
	// ErrInvalidOwner is thrown when the owner key has invalid format.
	ErrInvalidOwner = "invalid owner"
	// ErrInvalidOperator is thrown when the operator key has invalid format.
	ErrInvalidOperator = "invalid operator"
	// ErrInvalidPeer is thrown when the peer id is empty.
	ErrInvalidPeer = "invalid peer id"
	// ErrAccessDenied is thrown when operation is denied for caller.
	ErrAccessDenied = "access denied"
	// ErrFeeFailed is thrown when the registration fee cannot be paid.
	ErrFeeFailed = "registration fee payment failed"
)

const (
	counterKey = 'c'

	providerPrefix = 'p'
	peerPrefix     = 'e'

	tokenContractKey = 't'
	treasuryKey      = 'y'
	feeKey           = 'f'
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
	fee := args[2].(int)

	if len(addrToken) != interop.Hash160Len || len(treasury) != interop.Hash160Len {
		panic("invalid deploy arguments")
	}
	if fee < 0 {
		panic("negative registration fee")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, treasuryKey, treasury)
	storage.Put(ctx, feeKey, fee)

	runtime.Log("providers contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update", contract.All,
		script, manifest, common.AppendVersion(data))
	runtime.Log("providers contract updated")
}

// RegisterProvider registers a new compute provider controlled by the given
// owner and operator keys and returns its id. It must be witnessed by the
// owner. The flat registration fee, if configured, is transferred from the
// owner's account to the treasury.
func RegisterProvider(ownerKey, operatorKey interop.PublicKey, info []byte) int {
	if len(ownerKey) != interop.PublicKeyCompressedLen {
		panic(ErrInvalidOwner)
	}
	if len(operatorKey) != interop.PublicKeyCompressedLen {
		panic(ErrInvalidOperator)
	}

	common.CheckOwnerWitness(ownerKey)

	ctx := storage.GetContext()
	id := getCounter(ctx) + 1
	storage.Put(ctx, counterKey, id)

	fee := storage.Get(ctx, feeKey).(int)
	if fee > 0 {
		addrToken := storage.Get(ctx, tokenContractKey).(interop.Hash160)
		treasury := storage.Get(ctx, treasuryKey).(interop.Hash160)
		from := contract.CreateStandardAccount(ownerKey)

		ok := contract.Call(addrToken, "transfer", contract.All,
			from, treasury, fee, common.RegistrationFeeDetails(id)).(bool)
		if !ok {
			panic(ErrFeeFailed)
		}
	}

	p := Provider{
		ID:       id,
		Owner:    ownerKey,
		Operator: operatorKey,
		Info:     info,
		State:    providerstate.Active,
		Jailed:   false,
	}
	putProvider(ctx, p)

	runtime.Notify("ProviderRegistered", id, ownerKey)
	return id
}

// AddPeer binds an opaque peer id to the provider. It must be witnessed by
// the provider owner or operator. Rebinding an existing peer is a no-op.
func AddPeer(providerID int, peerID string) {
	if len(peerID) == 0 {
		panic(ErrInvalidPeer)
	}

	ctx := storage.GetContext()
	p := getProvider(ctx, providerID)

	checkOwnerOrOperator(p)

	key := peerKey(providerID, peerID)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, []byte{1})
	runtime.Notify("AddPeer", providerID, peerID)
}

// RemovePeer unbinds a peer id from the provider. It must be witnessed by
// the provider owner or operator. Removing an unknown peer is a no-op.
func RemovePeer(providerID int, peerID string) {
	if len(peerID) == 0 {
		panic(ErrInvalidPeer)
	}

	ctx := storage.GetContext()
	p := getProvider(ctx, providerID)

	checkOwnerOrOperator(p)

	key := peerKey(providerID, peerID)
	if storage.Get(ctx, key) == nil {
		return
	}

	storage.Delete(ctx, key)
	runtime.Notify("RemovePeer", providerID, peerID)
}

// UpdateState changes the operational state of the provider. State MUST be
// from the [providerstate.Type] enum. It must be witnessed by the provider
// owner or operator.
func UpdateState(providerID int, state providerstate.Type) {
	if state != providerstate.Active &&
		state != providerstate.Inactive &&
		state != providerstate.Maintenance {
		panic("unsupported state")
	}

	ctx := storage.GetContext()
	p := getProvider(ctx, providerID)

	checkOwnerOrOperator(p)

	p.State = state
	putProvider(ctx, p)

	runtime.Notify("UpdateState", providerID, int(state))
}

// Jail marks the provider ineligible for reward claims. It can be invoked
// only by the committee.
func Jail(providerID int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	p := getProvider(ctx, providerID)
	if p.Jailed {
		return
	}

	p.Jailed = true
	putProvider(ctx, p)

	runtime.Notify("Jail", providerID)
}

// Unjail lifts the jailed mark from the provider. It can be invoked only by
// the committee.
func Unjail(providerID int) {
	common.CheckCommitteeWitness()

	ctx := storage.GetContext()
	p := getProvider(ctx, providerID)
	if !p.Jailed {
		return
	}

	p.Jailed = false
	putProvider(ctx, p)

	runtime.Notify("Unjail", providerID)
}

// Get returns the provider record.
//
// If the provider doesn't exist, it panics with ErrNotFound.
func Get(providerID int) Provider {
	ctx := storage.GetReadOnlyContext()
	return getProvider(ctx, providerID)
}

// OwnerOf returns the owner key of the provider.
//
// If the provider doesn't exist, it panics with ErrNotFound.
func OwnerOf(providerID int) interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	return getProvider(ctx, providerID).Owner
}

// IsActive returns true if the provider is in the Active state and not
// jailed.
//
// If the provider doesn't exist, it panics with ErrNotFound.
func IsActive(providerID int) bool {
	ctx := storage.GetReadOnlyContext()
	p := getProvider(ctx, providerID)
	return p.State == providerstate.Active && !p.Jailed
}

// IsJailed returns true if the provider is jailed.
//
// If the provider doesn't exist, it panics with ErrNotFound.
func IsJailed(providerID int) bool {
	ctx := storage.GetReadOnlyContext()
	return getProvider(ctx, providerID).Jailed
}

// ResolvePeer returns true if the peer id is bound to the provider.
//
// If the provider doesn't exist, it panics with ErrNotFound.
func ResolvePeer(providerID int, peerID string) bool {
	ctx := storage.GetReadOnlyContext()
	getProvider(ctx, providerID) // existence check

	return storage.Get(ctx, peerKey(providerID, peerID)) != nil
}

// ProviderCount returns the number of registered providers.
func ProviderCount() int {
	ctx := storage.GetReadOnlyContext()
	return getCounter(ctx)
}

// ListProviders returns an iterator over all registered provider records.
func ListProviders() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{providerPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkOwnerOrOperator(p Provider) {
	if runtime.CheckWitness(p.Owner) {
		return
	}
	if runtime.CheckWitness(p.Operator) {
		return
	}
	panic(ErrAccessDenied)
}

func getCounter(ctx storage.Context) int {
	count := storage.Get(ctx, counterKey)
	if count != nil {
		return count.(int)
	}

	return 0
}

func providerKey(providerID int) []byte {
	return append([]byte{providerPrefix}, convert.ToBytes(providerID)...)
}

// peerKey composes the storage key of a (provider, peer) binding. The id is
// encoded fixed-width so a crafted peer string of one provider can never
// collide with a peer of another.
func peerKey(providerID int, peerID string) []byte {
	key := append([]byte{peerPrefix}, idBytes(providerID)...)
	return append(key, []byte(peerID)...)
}

// idBytes encodes a positive id as exactly 8 little-endian bytes.
func idBytes(id int) []byte {
	b := convert.ToBytes(id)
	for len(b) < 8 {
		b = append(b, 0)
	}

	return b
}

func getProvider(ctx storage.Context, providerID int) Provider {
	data := storage.Get(ctx, providerKey(providerID))
	if data == nil {
		panic(ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(Provider)
}

func putProvider(ctx storage.Context, p Provider) {
	common.SetSerialized(ctx, providerKey(p.ID), p)
}
