package providers

import (
	"math/big"

	"github.com/unicornultrafoundation/subnet-contracts-sub001/providers/providerstate"
)

// Possible provider states in [ProvidersProvider].
var (
	// StateActive is for providers in full operational availability.
	StateActive = big.NewInt(int64(providerstate.Active))

	// StateInactive is for providers switched off by their owner or operator.
	StateInactive = big.NewInt(int64(providerstate.Inactive))

	// StateMaintenance is for providers under maintenance.
	StateMaintenance = big.NewInt(int64(providerstate.Maintenance))
)
