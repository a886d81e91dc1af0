package providerstate

// Type is an enumeration for provider states.
type Type int

// Various provider states.
const (
	_ Type = iota

	// Active stands for providers that are in full operational
	// availability and may accumulate rewards.
	Active

	// Inactive stands for providers that have been switched off
	// by their owner or operator.
	Inactive

	// Maintenance stands for providers under maintenance with
	// partial availability.
	Maintenance
)
