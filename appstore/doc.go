/*
Appstore contract is a contract deployed in Subnet side chain.

Appstore contract stores application records of the Subnet compute
marketplace and settles provider rewards. Application owners fund a budget
held in contract custody in Subnet tokens. Compute providers submit signed
usage attestations; accepted reports accrue rewards against the budget and
mature after a configurable lock period. Settlement splits the reward
between the treasury, the application verifier and the provider owner.

A usage attestation is the serialized usage record tagged with the
SubnetUsageV1 domain. A single signature of the application owner or
operator accepts the report; otherwise a 2/3+1 quorum of the application's
verifier set must sign it. Report timestamps are strictly increasing per
(application, provider) pair, so a report can never be replayed.

When a provider is jailed by committee in the Providers contract, its
pending rewards cannot be claimed; the application owner may refund them
back into the spendable budget instead.

# Contract notifications

AppCreated notification. This notification is produced when a new
application is registered.

	AppCreated:
	  - name: appID
	    type: Integer
	  - name: owner
	    type: PublicKey

Deposit notification. This notification is produced when the application
budget is replenished.

	Deposit:
	  - name: appID
	    type: Integer
	  - name: amount
	    type: Integer

UsageAccepted notification. This notification is produced when a usage
attestation passes validation and its reward is accrued.

	UsageAccepted:
	  - name: appID
	    type: Integer
	  - name: providerID
	    type: Integer
	  - name: peerID
	    type: String
	  - name: reward
	    type: Integer

RewardClaimed notification. This notification is produced when a matured
accrual is settled and paid out.

	RewardClaimed:
	  - name: appID
	    type: Integer
	  - name: providerID
	    type: Integer
	  - name: net
	    type: Integer
	  - name: fee
	    type: Integer
	  - name: verifierFee
	    type: Integer
	  - name: payee
	    type: ByteArray

ProviderRefunded notification. This notification is produced when the
pending accrual of a jailed provider is returned to the application budget.

	ProviderRefunded:
	  - name: appID
	    type: Integer
	  - name: providerID
	    type: Integer
	  - name: amount
	    type: Integer

VerifierRemoved notification. This notification is produced when a slashed
verifier is pruned from an application's verifier set.

	VerifierRemoved:
	  - name: appID
	    type: Integer
	  - name: verifier
	    type: PublicKey
*/
package appstore
