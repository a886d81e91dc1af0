package stakingconst

const (
	// ErrUnknownStake is thrown when no collateral is recorded for the key.
	ErrUnknownStake = "unknown stake"
	// ErrBelowMinimum is thrown when the staked amount is below the
	// configured minimum.
	ErrBelowMinimum = "stake below minimum"
	// ErrBadPercentage is thrown when a slash percentage is outside 0..100.
	ErrBadPercentage = "slash percentage out of range"
	// ErrStillLocked is thrown when exit is finalized before the exit lock
	// has elapsed.
	ErrStillLocked = "exit lock has not elapsed"
	// ErrAlreadyExited is thrown when an exited stake is touched again.
	ErrAlreadyExited = "stake already exited"
	// ErrTransferFailed is thrown when a collateral transfer fails.
	ErrTransferFailed = "collateral transfer failed"
)
