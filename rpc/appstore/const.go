package appstore

import (
	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/appstoreconst"
)

const (
	// UnknownAppError is returned if application is missing.
	UnknownAppError = appstoreconst.ErrUnknownApp

	// StaleReportError is returned on replayed or out-of-order usage reports.
	StaleReportError = appstoreconst.ErrStaleReport

	// InvalidSignatureError is returned if an attestation fails the signing policy.
	InvalidSignatureError = appstoreconst.ErrInvalidSignature

	// InsufficientBudgetError is returned if a reward doesn't fit into the budget.
	InsufficientBudgetError = appstoreconst.ErrInsufficientBudget

	// RewardLockedError is returned on claims before the lock period ends.
	RewardLockedError = appstoreconst.ErrRewardLocked

	// NoRewardsError is returned on claims and refunds with nothing pending.
	NoRewardsError = appstoreconst.ErrNoRewards

	// ProviderJailedError is returned on claims for jailed providers.
	ProviderJailedError = appstoreconst.ErrProviderJailed
)
