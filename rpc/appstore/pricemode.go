package appstore

import (
	"math/big"

	"github.com/unicornultrafoundation/subnet-contracts-sub001/appstore/pricemode"
)

// Possible pricing modes in [AppstoreApp].
var (
	// PriceModeVector prices each resource dimension with its own rate.
	PriceModeVector = big.NewInt(int64(pricemode.Vector))

	// PriceModeUnitSum prices the plain sum of normalized resource units.
	PriceModeUnitSum = big.NewInt(int64(pricemode.UnitSum))
)
