package stakestate

// Type is an enumeration for verifier stake statuses. Transitions only move
// forward: Registered -> Slashed -> Exiting -> Exited, with Slashed being
// optional on the way.
type Type int

// Various stake statuses.
const (
	_ Type = iota

	// Registered stands for active verifier collateral.
	Registered

	// Slashed stands for collateral with a recorded slash percentage.
	Slashed

	// Exiting stands for collateral whose release was requested and
	// which is waiting out the exit lock.
	Exiting

	// Exited stands for released collateral. This status is terminal.
	Exited
)
