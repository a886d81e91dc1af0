/*
Providers contract is a contract deployed in the subnet chain.

Providers contract stores and manages the registry of compute providers and
their peers. It is the identity oracle of the settlement protocol: the
AppStore contract consults it to learn whether a provider is active, whether
it is jailed and whether a reported peer actually belongs to the provider.
Jailing is a committee decision and makes a provider ineligible for reward
claims until lifted; the AppStore refunds the pending accrual of a jailed
provider back to the paying application.

# Contract notifications

ProviderRegistered notification. This notification is produced when a new
provider is registered by invoking RegisterProvider method.

	ProviderRegistered
	  - name: providerID
	    type: Integer
	  - name: ownerKey
	    type: PublicKey

AddPeer notification. This notification is produced when a peer id is bound
to a provider by invoking AddPeer method.

	AddPeer
	  - name: providerID
	    type: Integer
	  - name: peerID
	    type: String

RemovePeer notification. This notification is produced when a peer id is
unbound from a provider by invoking RemovePeer method.

	RemovePeer
	  - name: providerID
	    type: Integer
	  - name: peerID
	    type: String

UpdateState notification. This notification is produced when the provider's
operational state changes by invoking UpdateState method.

	UpdateState
	  - name: providerID
	    type: Integer
	  - name: state
	    type: Integer

Jail notification. This notification is produced when a provider is jailed
by the committee.

	Jail
	  - name: providerID
	    type: Integer

Unjail notification. This notification is produced when a provider's jailed
mark is lifted by the committee.

	Unjail
	  - name: providerID
	    type: Integer
*/
package providers
