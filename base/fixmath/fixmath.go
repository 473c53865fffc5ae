/*Package fixmath provides deterministic fixed-point helpers for the
reward accounting. All values are decimal, never float, and every
operation is total: nothing here returns an error or panics, so the
accrual math stays pure and composable.
*/
package fixmath

import "github.com/shopspring/decimal"

// RpsPrecision is the number of fractional digits kept by reward-per-share
// divisions. 18 matches the chain's fixed-point width.
const RpsPrecision = 18

// SaturatingSub returns a-b floored at zero
func SaturatingSub(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return decimal.Zero
	}
	return a.Sub(b)
}

// SafeDiv returns a/b rounded to RpsPrecision, or zero when b is zero
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.DivRound(b, RpsPrecision)
}

// Min returns the smaller of a and b
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
