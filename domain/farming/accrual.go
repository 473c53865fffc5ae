package farming

import (
	"github.com/shopspring/decimal"

	"github.com/1xGiraffe/basilisk-core/base/fixmath"
	"github.com/1xGiraffe/basilisk-core/domain"
)

// The accrual math is pure and side-effect free. The usecase loads the
// records, runs these functions, persists the result and moves any
// settled reward between pot accounts, so every formula here is
// testable without a ledger.

// PeriodOf maps a block height to its accrual period
func PeriodOf(block domain.BlockNumber, blocksPerPeriod uint64) uint64 {
	if blocksPerPeriod == 0 {
		return 0
	}
	return uint64(block) / blocksPerPeriod
}

// RewardPerPeriod is the farm's emission for one period, the yield
// applied to the staked total capped by the configured ceiling.
func RewardPerPeriod(yieldPerPeriod, totalSharesZ, maxRewardPerPeriod decimal.Decimal) decimal.Decimal {
	return fixmath.Min(yieldPerPeriod.Mul(totalSharesZ), maxRewardPerPeriod)
}

// AccruedReward is the emission over elapsed periods capped by the
// remaining undistributed budget. Periods with zero stake forfeit their
// emission, there is no retroactive distribution.
func AccruedReward(rewardPerPeriod decimal.Decimal, periods uint64, leftToDistribute decimal.Decimal) decimal.Decimal {
	reward := rewardPerPeriod.Mul(decimal.NewFromInt(int64(periods)))
	return fixmath.Min(reward, leftToDistribute)
}

// AdvanceRps moves a reward-per-share checkpoint forward. When the
// share total is zero the checkpoint stays put and the reward is
// forfeited.
func AdvanceRps(accumulated, reward, totalShares decimal.Decimal) decimal.Decimal {
	return accumulated.Add(fixmath.SafeDiv(reward, totalShares))
}

// Owed settles one position against the current checkpoint, the
// standard reward-per-share pattern: everything accrued since the
// snapshot, proportional to the position's shares.
func Owed(currentRps, snapshotRps, shares decimal.Decimal) decimal.Decimal {
	return fixmath.SaturatingSub(currentRps, snapshotRps).Mul(shares)
}

// StakeInGlobalFarm is a yield farm's contribution to the global farm's
// total, its valued shares weighted by the multiplier.
func StakeInGlobalFarm(multiplier, totalValuedShares decimal.Decimal) decimal.Decimal {
	return multiplier.Mul(totalValuedShares)
}

// LeftToDistribute is the farm budget not yet accrued or paid out
func LeftToDistribute(totalRewards, accumulatedRewards, paidAccumulatedRewards decimal.Decimal) decimal.Decimal {
	return fixmath.SaturatingSub(totalRewards, accumulatedRewards.Add(paidAccumulatedRewards))
}
