// Package providers contains RPC wrappers for Subnet Providers contract.
package providers

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ProvidersProvider is a contract-specific providers.Provider type used by its methods.
type ProvidersProvider struct {
	ID *big.Int
	Owner *keys.PublicKey
	Operator *keys.PublicKey
	Info []byte
	State *big.Int
	Jailed bool
}

// ProviderRegisteredEvent represents "ProviderRegistered" event emitted by the contract.
type ProviderRegisteredEvent struct {
	ProviderID *big.Int
	OwnerKey *keys.PublicKey
}

// AddPeerEvent represents "AddPeer" event emitted by the contract.
type AddPeerEvent struct {
	ProviderID *big.Int
	PeerID string
}

// RemovePeerEvent represents "RemovePeer" event emitted by the contract.
type RemovePeerEvent struct {
	ProviderID *big.Int
	PeerID string
}

// UpdateStateEvent represents "UpdateState" event emitted by the contract.
type UpdateStateEvent struct {
	ProviderID *big.Int
	State *big.Int
}

// JailEvent represents "Jail" event emitted by the contract.
type JailEvent struct {
	ProviderID *big.Int
}

// UnjailEvent represents "Unjail" event emitted by the contract.
type UnjailEvent struct {
	ProviderID *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Get invokes `get` method of contract.
func (c *ContractReader) Get(providerID *big.Int) (*ProvidersProvider, error) {
	return itemToProvidersProvider(unwrap.Item(c.invoker.Call(c.hash, "get", providerID)))
}

// IsActive invokes `isActive` method of contract.
func (c *ContractReader) IsActive(providerID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isActive", providerID))
}

// IsJailed invokes `isJailed` method of contract.
func (c *ContractReader) IsJailed(providerID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isJailed", providerID))
}

// ListProviders invokes `listProviders` method of contract.
func (c *ContractReader) ListProviders() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listProviders"))
}

// ListProvidersExpanded is similar to ListProviders (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListProvidersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listProviders", _numOfIteratorItems))
}

// OwnerOf invokes `ownerOf` method of contract.
func (c *ContractReader) OwnerOf(providerID *big.Int) (*keys.PublicKey, error) {
	return unwrap.PublicKey(c.invoker.Call(c.hash, "ownerOf", providerID))
}

// ProviderCount invokes `providerCount` method of contract.
func (c *ContractReader) ProviderCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "providerCount"))
}

// ResolvePeer invokes `resolvePeer` method of contract.
func (c *ContractReader) ResolvePeer(providerID *big.Int, peerID string) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "resolvePeer", providerID, peerID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddPeer creates a transaction invoking `addPeer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddPeer(providerID *big.Int, peerID string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addPeer", providerID, peerID)
}

// AddPeerTransaction creates a transaction invoking `addPeer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddPeerTransaction(providerID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addPeer", providerID, peerID)
}

// AddPeerUnsigned creates a transaction invoking `addPeer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddPeerUnsigned(providerID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addPeer", nil, providerID, peerID)
}

// Jail creates a transaction invoking `jail` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Jail(providerID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "jail", providerID)
}

// JailTransaction creates a transaction invoking `jail` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) JailTransaction(providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "jail", providerID)
}

// JailUnsigned creates a transaction invoking `jail` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) JailUnsigned(providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "jail", nil, providerID)
}

// RegisterProvider creates a transaction invoking `registerProvider` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterProvider(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, info []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerProvider", ownerKey, operatorKey, info)
}

// RegisterProviderTransaction creates a transaction invoking `registerProvider` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterProviderTransaction(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, info []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerProvider", ownerKey, operatorKey, info)
}

// RegisterProviderUnsigned creates a transaction invoking `registerProvider` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterProviderUnsigned(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, info []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerProvider", nil, ownerKey, operatorKey, info)
}

// RemovePeer creates a transaction invoking `removePeer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemovePeer(providerID *big.Int, peerID string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removePeer", providerID, peerID)
}

// RemovePeerTransaction creates a transaction invoking `removePeer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemovePeerTransaction(providerID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removePeer", providerID, peerID)
}

// RemovePeerUnsigned creates a transaction invoking `removePeer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemovePeerUnsigned(providerID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removePeer", nil, providerID, peerID)
}

// Unjail creates a transaction invoking `unjail` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unjail(providerID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unjail", providerID)
}

// UnjailTransaction creates a transaction invoking `unjail` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnjailTransaction(providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unjail", providerID)
}

// UnjailUnsigned creates a transaction invoking `unjail` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnjailUnsigned(providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unjail", nil, providerID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateState creates a transaction invoking `updateState` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateState(providerID *big.Int, state *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateState", providerID, state)
}

// UpdateStateTransaction creates a transaction invoking `updateState` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateStateTransaction(providerID *big.Int, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateState", providerID, state)
}

// UpdateStateUnsigned creates a transaction invoking `updateState` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateStateUnsigned(providerID *big.Int, state *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateState", nil, providerID, state)
}

// itemToProvidersProvider converts stack item into *ProvidersProvider.
func itemToProvidersProvider(item stackitem.Item, err error) (*ProvidersProvider, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ProvidersProvider)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ProvidersProvider from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ProvidersProvider) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = func (item stackitem.Item) (*keys.PublicKey, error) {
		b, err := item.TryBytes()
		if err != nil {
			return nil, err
		}
		k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, err
		}
		return k, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Operator, err = func (item stackitem.Item) (*keys.PublicKey, error) {
		b, err := item.TryBytes()
		if err != nil {
			return nil, err
		}
		k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, err
		}
		return k, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	res.Info, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Info: %w", err)
	}

	index++
	res.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	index++
	res.Jailed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Jailed: %w", err)
	}

	return nil
}

// ProviderRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "ProviderRegistered" name from the provided [result.ApplicationLog].
func ProviderRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProviderRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProviderRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProviderRegistered" {
				continue
			}
			event := new(ProviderRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProviderRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProviderRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *ProviderRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.OwnerKey, err = func (item stackitem.Item) (*keys.PublicKey, error) {
		b, err := item.TryBytes()
		if err != nil {
			return nil, err
		}
		k, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
		if err != nil {
			return nil, err
		}
		return k, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OwnerKey: %w", err)
	}

	return nil
}

// AddPeerEventsFromApplicationLog retrieves a set of all emitted events
// with "AddPeer" name from the provided [result.ApplicationLog].
func AddPeerEventsFromApplicationLog(log *result.ApplicationLog) ([]*AddPeerEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AddPeerEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AddPeer" {
				continue
			}
			event := new(AddPeerEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AddPeerEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AddPeerEvent or
// returns an error if it's not possible to do to so.
func (e *AddPeerEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.PeerID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PeerID: %w", err)
	}

	return nil
}

// RemovePeerEventsFromApplicationLog retrieves a set of all emitted events
// with "RemovePeer" name from the provided [result.ApplicationLog].
func RemovePeerEventsFromApplicationLog(log *result.ApplicationLog) ([]*RemovePeerEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RemovePeerEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RemovePeer" {
				continue
			}
			event := new(RemovePeerEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RemovePeerEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RemovePeerEvent or
// returns an error if it's not possible to do to so.
func (e *RemovePeerEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.PeerID, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PeerID: %w", err)
	}

	return nil
}

// UpdateStateEventsFromApplicationLog retrieves a set of all emitted events
// with "UpdateState" name from the provided [result.ApplicationLog].
func UpdateStateEventsFromApplicationLog(log *result.ApplicationLog) ([]*UpdateStateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UpdateStateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UpdateState" {
				continue
			}
			event := new(UpdateStateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UpdateStateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UpdateStateEvent or
// returns an error if it's not possible to do to so.
func (e *UpdateStateEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.State, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field State: %w", err)
	}

	return nil
}

// JailEventsFromApplicationLog retrieves a set of all emitted events
// with "Jail" name from the provided [result.ApplicationLog].
func JailEventsFromApplicationLog(log *result.ApplicationLog) ([]*JailEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*JailEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Jail" {
				continue
			}
			event := new(JailEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize JailEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to JailEvent or
// returns an error if it's not possible to do to so.
func (e *JailEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	return nil
}

// UnjailEventsFromApplicationLog retrieves a set of all emitted events
// with "Unjail" name from the provided [result.ApplicationLog].
func UnjailEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnjailEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnjailEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unjail" {
				continue
			}
			event := new(UnjailEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnjailEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnjailEvent or
// returns an error if it's not possible to do to so.
func (e *UnjailEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	return nil
}
