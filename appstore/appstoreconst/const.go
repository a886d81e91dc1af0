package appstoreconst

const (
	// ErrUnknownApp is thrown when the application id is not registered.
	ErrUnknownApp = "unknown application"
	// ErrInactiveProvider is thrown when usage is reported for a provider
	// that is not active in the providers registry.
	ErrInactiveProvider = "provider is not active"
	// ErrUnknownPeer is thrown when the reported peer id does not belong
	// to the provider.
	ErrUnknownPeer = "peer is not registered for provider"
	// ErrStaleReport is thrown when a usage report does not advance the
	// (application, provider) report timestamp.
	ErrStaleReport = "stale usage report"
	// ErrInvalidSignature is thrown when the attestation signer set does
	// not satisfy the signing policy.
	ErrInvalidSignature = "invalid attestation signature"
	// ErrInsufficientBudget is thrown when a usage report would spend
	// past the application budget.
	ErrInsufficientBudget = "insufficient budget"
	// ErrRewardLocked is thrown when a claim happens before the pending
	// reward unlocks.
	ErrRewardLocked = "reward is still locked"
	// ErrNoRewards is thrown when there is nothing pending to claim or
	// refund.
	ErrNoRewards = "no pending rewards"
	// ErrProviderJailed is thrown when a jailed provider tries to claim.
	ErrProviderJailed = "provider is jailed"
	// ErrProviderNotJailed is thrown when a refund is requested for a
	// provider that is not jailed.
	ErrProviderNotJailed = "provider is not jailed"
	// ErrRateTooHigh is thrown when a fee or verifier reward rate is set
	// above the 100% ceiling (1000 parts per 1000).
	ErrRateTooHigh = "rate above 100 percent"
	// ErrNotOwnerOrOperator is thrown when the caller lacks the owner or
	// operator witness required by the method.
	ErrNotOwnerOrOperator = "caller is not owner or operator"
	// ErrVerifierNotSlashed is thrown when verifier set pruning targets a
	// member that is not slashed.
	ErrVerifierNotSlashed = "verifier is not slashed"
	// ErrDepositFailed is thrown when a budget deposit transfer fails.
	ErrDepositFailed = "budget deposit failed"
	// ErrPayoutFailed is thrown when a settlement transfer fails.
	ErrPayoutFailed = "reward payout failed"
)
