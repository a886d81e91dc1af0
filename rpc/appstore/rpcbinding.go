// Package appstore contains RPC wrappers for Subnet Appstore contract.
package appstore

import (
	"crypto/elliptic"
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// AppstoreAccrual is a contract-specific appstore.Accrual type used by its methods.
type AppstoreAccrual struct {
	Pending *big.Int
	UnlockAt *big.Int
	TotalClaimed *big.Int
	LastReportAt *big.Int
}

// AppstoreApp is a contract-specific appstore.App type used by its methods.
type AppstoreApp struct {
	ID *big.Int
	Owner *keys.PublicKey
	Operator *keys.PublicKey
	Verifier []byte
	PeerID string
	Name string
	Budget *big.Int
	SpentBudget *big.Int
	FeeRate *big.Int
	VerifierRewardRate *big.Int
	PriceMode *big.Int
	PricePerCPU *big.Int
	PricePerGPU *big.Int
	PricePerMemoryGB *big.Int
	PricePerStorageGB *big.Int
	PricePerBandwidthGB *big.Int
}

// AppCreatedEvent represents "AppCreated" event emitted by the contract.
type AppCreatedEvent struct {
	AppID *big.Int
	Owner *keys.PublicKey
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	AppID *big.Int
	Amount *big.Int
}

// UsageAcceptedEvent represents "UsageAccepted" event emitted by the contract.
type UsageAcceptedEvent struct {
	AppID *big.Int
	ProviderID *big.Int
	PeerID string
	Reward *big.Int
}

// RewardClaimedEvent represents "RewardClaimed" event emitted by the contract.
type RewardClaimedEvent struct {
	AppID *big.Int
	ProviderID *big.Int
	Net *big.Int
	Fee *big.Int
	VerifierFee *big.Int
	Payee util.Uint160
}

// ProviderRefundedEvent represents "ProviderRefunded" event emitted by the contract.
type ProviderRefundedEvent struct {
	AppID *big.Int
	ProviderID *big.Int
	Amount *big.Int
}

// VerifierRemovedEvent represents "VerifierRemoved" event emitted by the contract.
type VerifierRemovedEvent struct {
	AppID *big.Int
	Verifier *keys.PublicKey
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
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

// AppCount invokes `appCount` method of contract.
func (c *ContractReader) AppCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "appCount"))
}

// AppExists invokes `appExists` method of contract.
func (c *ContractReader) AppExists(appID *big.Int) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "appExists", appID))
}

// GetAccrual invokes `getAccrual` method of contract.
func (c *ContractReader) GetAccrual(appID *big.Int, providerID *big.Int) (*AppstoreAccrual, error) {
	return itemToAppstoreAccrual(unwrap.Item(c.invoker.Call(c.hash, "getAccrual", appID, providerID)))
}

// GetApp invokes `getApp` method of contract.
func (c *ContractReader) GetApp(appID *big.Int) (*AppstoreApp, error) {
	return itemToAppstoreApp(unwrap.Item(c.invoker.Call(c.hash, "getApp", appID)))
}

// GetVerifiers invokes `getVerifiers` method of contract.
func (c *ContractReader) GetVerifiers(appID *big.Int) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "getVerifiers", appID))
}

// RewardLockDuration invokes `rewardLockDuration` method of contract.
func (c *ContractReader) RewardLockDuration() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardLockDuration"))
}

// Treasury invokes `treasury` method of contract.
func (c *ContractReader) Treasury() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasury"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ClaimReward creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimReward(providerID *big.Int, appID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimReward", providerID, appID)
}

// ClaimRewardTransaction creates a transaction invoking `claimReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardTransaction(providerID *big.Int, appID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimReward", providerID, appID)
}

// ClaimRewardUnsigned creates a transaction invoking `claimReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardUnsigned(providerID *big.Int, appID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimReward", nil, providerID, appID)
}

// CreateApp creates a transaction invoking `createApp` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateApp(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, verifierKey *keys.PublicKey, peerID string, name string, priceMode *big.Int, pricePerCPU *big.Int, pricePerGPU *big.Int, pricePerMemoryGB *big.Int, pricePerStorageGB *big.Int, pricePerBandwidthGB *big.Int, feeRate *big.Int, verifierRewardRate *big.Int, initialBudget *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createApp", ownerKey, operatorKey, verifierKey, peerID, name, priceMode, pricePerCPU, pricePerGPU, pricePerMemoryGB, pricePerStorageGB, pricePerBandwidthGB, feeRate, verifierRewardRate, initialBudget)
}

// CreateAppTransaction creates a transaction invoking `createApp` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateAppTransaction(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, verifierKey *keys.PublicKey, peerID string, name string, priceMode *big.Int, pricePerCPU *big.Int, pricePerGPU *big.Int, pricePerMemoryGB *big.Int, pricePerStorageGB *big.Int, pricePerBandwidthGB *big.Int, feeRate *big.Int, verifierRewardRate *big.Int, initialBudget *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createApp", ownerKey, operatorKey, verifierKey, peerID, name, priceMode, pricePerCPU, pricePerGPU, pricePerMemoryGB, pricePerStorageGB, pricePerBandwidthGB, feeRate, verifierRewardRate, initialBudget)
}

// CreateAppUnsigned creates a transaction invoking `createApp` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateAppUnsigned(ownerKey *keys.PublicKey, operatorKey *keys.PublicKey, verifierKey *keys.PublicKey, peerID string, name string, priceMode *big.Int, pricePerCPU *big.Int, pricePerGPU *big.Int, pricePerMemoryGB *big.Int, pricePerStorageGB *big.Int, pricePerBandwidthGB *big.Int, feeRate *big.Int, verifierRewardRate *big.Int, initialBudget *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createApp", nil, ownerKey, operatorKey, verifierKey, peerID, name, priceMode, pricePerCPU, pricePerGPU, pricePerMemoryGB, pricePerStorageGB, pricePerBandwidthGB, feeRate, verifierRewardRate, initialBudget)
}

// Deposit creates a transaction invoking `deposit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Deposit(appID *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", appID, amount)
}

// DepositTransaction creates a transaction invoking `deposit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DepositTransaction(appID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deposit", appID, amount)
}

// DepositUnsigned creates a transaction invoking `deposit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DepositUnsigned(appID *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deposit", nil, appID, amount)
}

// RefundProvider creates a transaction invoking `refundProvider` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RefundProvider(appID *big.Int, providerID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refundProvider", appID, providerID)
}

// RefundProviderTransaction creates a transaction invoking `refundProvider` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefundProviderTransaction(appID *big.Int, providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refundProvider", appID, providerID)
}

// RefundProviderUnsigned creates a transaction invoking `refundProvider` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefundProviderUnsigned(appID *big.Int, providerID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refundProvider", nil, appID, providerID)
}

// RemoveInactiveVerifier creates a transaction invoking `removeInactiveVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveInactiveVerifier(appID *big.Int, index *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeInactiveVerifier", appID, index)
}

// RemoveInactiveVerifierTransaction creates a transaction invoking `removeInactiveVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveInactiveVerifierTransaction(appID *big.Int, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeInactiveVerifier", appID, index)
}

// RemoveInactiveVerifierUnsigned creates a transaction invoking `removeInactiveVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveInactiveVerifierUnsigned(appID *big.Int, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeInactiveVerifier", nil, appID, index)
}

// ReportUsage creates a transaction invoking `reportUsage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReportUsage(appID *big.Int, providerID *big.Int, peerID string, usedCPU *big.Int, usedGPU *big.Int, usedMemoryBytes *big.Int, usedStorageBytes *big.Int, usedUploadBytes *big.Int, usedDownloadBytes *big.Int, duration *big.Int, timestamp *big.Int, signers keys.PublicKeys, signatures [][]byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reportUsage", appID, providerID, peerID, usedCPU, usedGPU, usedMemoryBytes, usedStorageBytes, usedUploadBytes, usedDownloadBytes, duration, timestamp, signers, signatures)
}

// ReportUsageTransaction creates a transaction invoking `reportUsage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReportUsageTransaction(appID *big.Int, providerID *big.Int, peerID string, usedCPU *big.Int, usedGPU *big.Int, usedMemoryBytes *big.Int, usedStorageBytes *big.Int, usedUploadBytes *big.Int, usedDownloadBytes *big.Int, duration *big.Int, timestamp *big.Int, signers keys.PublicKeys, signatures [][]byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reportUsage", appID, providerID, peerID, usedCPU, usedGPU, usedMemoryBytes, usedStorageBytes, usedUploadBytes, usedDownloadBytes, duration, timestamp, signers, signatures)
}

// ReportUsageUnsigned creates a transaction invoking `reportUsage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReportUsageUnsigned(appID *big.Int, providerID *big.Int, peerID string, usedCPU *big.Int, usedGPU *big.Int, usedMemoryBytes *big.Int, usedStorageBytes *big.Int, usedUploadBytes *big.Int, usedDownloadBytes *big.Int, duration *big.Int, timestamp *big.Int, signers keys.PublicKeys, signatures [][]byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reportUsage", nil, appID, providerID, peerID, usedCPU, usedGPU, usedMemoryBytes, usedStorageBytes, usedUploadBytes, usedDownloadBytes, duration, timestamp, signers, signatures)
}

// SetFeeRate creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetFeeRate(appID *big.Int, feeRate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setFeeRate", appID, feeRate)
}

// SetFeeRateTransaction creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetFeeRateTransaction(appID *big.Int, feeRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setFeeRate", appID, feeRate)
}

// SetFeeRateUnsigned creates a transaction invoking `setFeeRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetFeeRateUnsigned(appID *big.Int, feeRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setFeeRate", nil, appID, feeRate)
}

// SetOperator creates a transaction invoking `setOperator` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetOperator(appID *big.Int, operatorKey *keys.PublicKey) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setOperator", appID, operatorKey)
}

// SetOperatorTransaction creates a transaction invoking `setOperator` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetOperatorTransaction(appID *big.Int, operatorKey *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setOperator", appID, operatorKey)
}

// SetOperatorUnsigned creates a transaction invoking `setOperator` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetOperatorUnsigned(appID *big.Int, operatorKey *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setOperator", nil, appID, operatorKey)
}

// SetPeerID creates a transaction invoking `setPeerID` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPeerID(appID *big.Int, peerID string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPeerID", appID, peerID)
}

// SetPeerIDTransaction creates a transaction invoking `setPeerID` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPeerIDTransaction(appID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPeerID", appID, peerID)
}

// SetPeerIDUnsigned creates a transaction invoking `setPeerID` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPeerIDUnsigned(appID *big.Int, peerID string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPeerID", nil, appID, peerID)
}

// SetRewardLockDuration creates a transaction invoking `setRewardLockDuration` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetRewardLockDuration(duration *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setRewardLockDuration", duration)
}

// SetRewardLockDurationTransaction creates a transaction invoking `setRewardLockDuration` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetRewardLockDurationTransaction(duration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setRewardLockDuration", duration)
}

// SetRewardLockDurationUnsigned creates a transaction invoking `setRewardLockDuration` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetRewardLockDurationUnsigned(duration *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setRewardLockDuration", nil, duration)
}

// SetTreasury creates a transaction invoking `setTreasury` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTreasury(treasury util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTreasury", treasury)
}

// SetTreasuryTransaction creates a transaction invoking `setTreasury` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTreasuryTransaction(treasury util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTreasury", treasury)
}

// SetTreasuryUnsigned creates a transaction invoking `setTreasury` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTreasuryUnsigned(treasury util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTreasury", nil, treasury)
}

// SetVerifier creates a transaction invoking `setVerifier` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetVerifier(appID *big.Int, verifierKey *keys.PublicKey) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setVerifier", appID, verifierKey)
}

// SetVerifierTransaction creates a transaction invoking `setVerifier` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetVerifierTransaction(appID *big.Int, verifierKey *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setVerifier", appID, verifierKey)
}

// SetVerifierUnsigned creates a transaction invoking `setVerifier` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetVerifierUnsigned(appID *big.Int, verifierKey *keys.PublicKey) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setVerifier", nil, appID, verifierKey)
}

// SetVerifierRewardRate creates a transaction invoking `setVerifierRewardRate` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetVerifierRewardRate(appID *big.Int, verifierRewardRate *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setVerifierRewardRate", appID, verifierRewardRate)
}

// SetVerifierRewardRateTransaction creates a transaction invoking `setVerifierRewardRate` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetVerifierRewardRateTransaction(appID *big.Int, verifierRewardRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setVerifierRewardRate", appID, verifierRewardRate)
}

// SetVerifierRewardRateUnsigned creates a transaction invoking `setVerifierRewardRate` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetVerifierRewardRateUnsigned(appID *big.Int, verifierRewardRate *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setVerifierRewardRate", nil, appID, verifierRewardRate)
}

// SetVerifiers creates a transaction invoking `setVerifiers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetVerifiers(appID *big.Int, verifierKeys keys.PublicKeys) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setVerifiers", appID, verifierKeys)
}

// SetVerifiersTransaction creates a transaction invoking `setVerifiers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetVerifiersTransaction(appID *big.Int, verifierKeys keys.PublicKeys) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setVerifiers", appID, verifierKeys)
}

// SetVerifiersUnsigned creates a transaction invoking `setVerifiers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetVerifiersUnsigned(appID *big.Int, verifierKeys keys.PublicKeys) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setVerifiers", nil, appID, verifierKeys)
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

// itemToAppstoreAccrual converts stack item into *AppstoreAccrual.
func itemToAppstoreAccrual(item stackitem.Item, err error) (*AppstoreAccrual, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AppstoreAccrual)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AppstoreAccrual from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AppstoreAccrual) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Pending, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Pending: %w", err)
	}

	index++
	res.UnlockAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UnlockAt: %w", err)
	}

	index++
	res.TotalClaimed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalClaimed: %w", err)
	}

	index++
	res.LastReportAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastReportAt: %w", err)
	}

	return nil
}

// itemToAppstoreApp converts stack item into *AppstoreApp.
func itemToAppstoreApp(item stackitem.Item, err error) (*AppstoreApp, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AppstoreApp)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AppstoreApp from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AppstoreApp) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 16 {
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
	res.Verifier, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Verifier: %w", err)
	}

	index++
	res.PeerID, err = func (item stackitem.Item) (string, error) {
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

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
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
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Budget, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Budget: %w", err)
	}

	index++
	res.SpentBudget, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SpentBudget: %w", err)
	}

	index++
	res.FeeRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeeRate: %w", err)
	}

	index++
	res.VerifierRewardRate, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifierRewardRate: %w", err)
	}

	index++
	res.PriceMode, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PriceMode: %w", err)
	}

	index++
	res.PricePerCPU, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerCPU: %w", err)
	}

	index++
	res.PricePerGPU, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerGPU: %w", err)
	}

	index++
	res.PricePerMemoryGB, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerMemoryGB: %w", err)
	}

	index++
	res.PricePerStorageGB, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerStorageGB: %w", err)
	}

	index++
	res.PricePerBandwidthGB, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerBandwidthGB: %w", err)
	}

	return nil
}

// AppCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AppCreated" name from the provided [result.ApplicationLog].
func AppCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AppCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AppCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AppCreated" {
				continue
			}
			event := new(AppCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AppCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AppCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *AppCreatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (*keys.PublicKey, error) {
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

	return nil
}

// DepositEventsFromApplicationLog retrieves a set of all emitted events
// with "Deposit" name from the provided [result.ApplicationLog].
func DepositEventsFromApplicationLog(log *result.ApplicationLog) ([]*DepositEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DepositEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Deposit" {
				continue
			}
			event := new(DepositEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DepositEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DepositEvent or
// returns an error if it's not possible to do to so.
func (e *DepositEvent) FromStackItem(item *stackitem.Array) error {
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
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UsageAcceptedEventsFromApplicationLog retrieves a set of all emitted events
// with "UsageAccepted" name from the provided [result.ApplicationLog].
func UsageAcceptedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UsageAcceptedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UsageAcceptedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UsageAccepted" {
				continue
			}
			event := new(UsageAcceptedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UsageAcceptedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UsageAcceptedEvent or
// returns an error if it's not possible to do to so.
func (e *UsageAcceptedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

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

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	return nil
}

// RewardClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardClaimed" name from the provided [result.ApplicationLog].
func RewardClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardClaimed" {
				continue
			}
			event := new(RewardClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
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
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.Net, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Net: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.VerifierFee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VerifierFee: %w", err)
	}

	index++
	e.Payee, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}

	return nil
}

// ProviderRefundedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProviderRefunded" name from the provided [result.ApplicationLog].
func ProviderRefundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProviderRefundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProviderRefundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProviderRefunded" {
				continue
			}
			event := new(ProviderRefundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProviderRefundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProviderRefundedEvent or
// returns an error if it's not possible to do to so.
func (e *ProviderRefundedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

	index++
	e.ProviderID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProviderID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// VerifierRemovedEventsFromApplicationLog retrieves a set of all emitted events
// with "VerifierRemoved" name from the provided [result.ApplicationLog].
func VerifierRemovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*VerifierRemovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VerifierRemovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VerifierRemoved" {
				continue
			}
			event := new(VerifierRemovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VerifierRemovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VerifierRemovedEvent or
// returns an error if it's not possible to do to so.
func (e *VerifierRemovedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.AppID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field AppID: %w", err)
	}

	index++
	e.Verifier, err = func (item stackitem.Item) (*keys.PublicKey, error) {
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
		return fmt.Errorf("field Verifier: %w", err)
	}

	return nil
}
