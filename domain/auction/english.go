package auction

import (
	"github.com/shopspring/decimal"

	"github.com/1xGiraffe/basilisk-core/base/fixmath"
	"github.com/1xGiraffe/basilisk-core/domain"
)

// ValidateSpec checks the create-time invariants shared by all auction
// variants. Ownership of the token is checked by the usecase, not here.
func ValidateSpec(cfg Config, spec *Spec, now domain.BlockNumber) error {
	if len(spec.Name) == 0 {
		return domain.ErrEmptyAuctionName
	}
	if len(spec.Name) > cfg.MaxNameLength {
		return domain.ErrBadParamInput
	}
	if !spec.Type.IsValid() {
		return domain.ErrBadParamInput
	}
	if spec.Start <= now {
		return domain.ErrAuctionStartTimeAlreadyPassed
	}
	if spec.End == 0 || spec.End < spec.Start+cfg.MinAuctionDuration {
		return domain.ErrInvalidTimeConfiguration
	}
	minimalBid, err := domain.ParseAmount(spec.MinimalBid)
	if err != nil || !minimalBid.IsPositive() {
		return domain.ErrBadParamInput
	}
	return validateEnglishSpec(spec, minimalBid)
}

// validateEnglishSpec pins the starting floor of the English variant.
// With a reserve price the next bid min must equal it until the first
// bid, without one it must equal the configured minimal bid.
func validateEnglishSpec(spec *Spec, minimalBid decimal.Decimal) error {
	nextBidMin, err := domain.ParseAmount(spec.NextBidMin)
	if err != nil {
		return domain.ErrInvalidNextBidMin
	}
	if spec.ReservePrice != nil {
		reserve, err := domain.ParseAmount(*spec.ReservePrice)
		if err != nil || !reserve.IsPositive() {
			return domain.ErrBadParamInput
		}
		if !nextBidMin.Equal(reserve) {
			return domain.ErrInvalidNextBidMin
		}
		return nil
	}
	if !nextBidMin.Equal(minimalBid) {
		return domain.ErrInvalidNextBidMin
	}
	return nil
}

// NextBidMinAfter computes the minimum amount the bid after `amount`
// must reach. The step is BidStepPerc percent of the accepted amount,
// at least one unit, so the progression is strictly increasing.
func NextBidMinAfter(cfg Config, amount decimal.Decimal) decimal.Decimal {
	step := amount.Mul(decimal.NewFromInt(cfg.BidStepPerc)).Div(decimal.NewFromInt(100))
	step = fixmath.Max(step, decimal.NewFromInt(1))
	return amount.Add(step)
}

// ExtendEnd applies the anti-sniping rule. A bid landing inside the
// sniping window pushes end out so the full window remains, and end
// never moves backwards.
func ExtendEnd(cfg Config, now, end domain.BlockNumber) domain.BlockNumber {
	if end-now < cfg.BidAddBlocks {
		return now + cfg.BidAddBlocks
	}
	return end
}
