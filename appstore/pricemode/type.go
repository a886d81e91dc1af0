package pricemode

// Type is an enumeration for application pricing strategies.
type Type int

// Various pricing strategies.
const (
	_ Type = iota

	// Vector prices every resource with the application's per-resource
	// rate vector.
	Vector

	// UnitSum charges one token unit per normalized resource unit,
	// ignoring the rate vector.
	UnitSum
)
