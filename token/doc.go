/*
Token contract is a contract deployed in the subnet chain.

Token contract keeps the fungible settlement asset of the subnet network.
Application budgets, verifier collateral and locked rewards are all held as
token balances of the respective contract accounts, so no participant holds
funds mid-flight. The contract follows the NEP-17 interface for reads and
transfers; supply management is restricted to the committee.

# Contract notifications

Transfer notification. This notification is produced on every balance
movement, including mint (from is null) and burn (to is null).

	Transfer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This notification accompanies Transfer and carries
the details blob identifying the settlement flow the transfer belongs to.

	TransferX
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package token
