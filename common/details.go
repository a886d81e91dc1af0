package common

import "github.com/nspcc-dev/neo-go/pkg/interop/convert"

var (
	depositPrefix         = []byte{0x01}
	rewardPrefix          = []byte{0x02}
	feePrefix             = []byte{0x03}
	verifierRewardPrefix  = []byte{0x04}
	stakePrefix           = []byte{0x05}
	stakeReleasePrefix    = []byte{0x06}
	stakeForfeitPrefix    = []byte{0x07}
	registrationFeePrefix = []byte{0x10}
)

// DepositDetails marks a transfer funding the budget of an application.
func DepositDetails(appID int) []byte {
	return append(depositPrefix, convert.ToBytes(appID)...)
}

// RewardDetails marks a net reward payout for the (appID, providerID) pair.
func RewardDetails(appID, providerID int) []byte {
	details := append(rewardPrefix, convert.ToBytes(appID)...)
	return append(details, convert.ToBytes(providerID)...)
}

// FeeDetails marks a treasury fee cut of a reward payout.
func FeeDetails(appID int) []byte {
	return append(feePrefix, convert.ToBytes(appID)...)
}

// VerifierRewardDetails marks a verifier cut of a reward payout.
func VerifierRewardDetails(appID int) []byte {
	return append(verifierRewardPrefix, convert.ToBytes(appID)...)
}

// StakeDetails marks a transfer of verifier collateral into custody.
func StakeDetails() []byte {
	return stakePrefix
}

// StakeReleaseDetails marks a release of verifier collateral on exit.
func StakeReleaseDetails() []byte {
	return stakeReleasePrefix
}

// StakeForfeitDetails marks a slashed part of collateral moved to the treasury.
func StakeForfeitDetails() []byte {
	return stakeForfeitPrefix
}

// RegistrationFeeDetails marks a provider registration fee transfer.
func RegistrationFeeDetails(providerID int) []byte {
	return append(registrationFeePrefix, convert.ToBytes(providerID)...)
}
