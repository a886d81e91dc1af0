/*
Staking contract is a contract deployed in the subnet chain.

Staking contract holds the collateral of usage verifiers. A verifier stakes
subnet tokens to become eligible for co-signing usage attestations; the
committee can slash a percentage of that collateral for misbehaviour.
Collateral release is a two-phase exit: the first Exit call starts the exit
lock, the second one (after the lock) pays out the unslashed part and moves
the forfeited part to the treasury. Statuses only move forward, an exited
stake stays exited.

# Contract notifications

Stake notification. This notification is produced when collateral is staked
or topped up.

	Stake
	  - name: verifierKey
	    type: PublicKey
	  - name: amount
	    type: Integer

Slash notification. This notification is produced when the committee slashes
a verifier.

	Slash
	  - name: verifierKey
	    type: PublicKey
	  - name: percentage
	    type: Integer

ExitRequested notification. This notification is produced when the exit lock
starts ticking.

	ExitRequested
	  - name: verifierKey
	    type: PublicKey
	  - name: requestedAt
	    type: Integer

Exit notification. This notification is produced when collateral is
released.

	Exit
	  - name: verifierKey
	    type: PublicKey
	  - name: released
	    type: Integer
	  - name: forfeited
	    type: Integer
*/
package staking
