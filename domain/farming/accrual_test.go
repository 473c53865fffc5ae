package farming

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/1xGiraffe/basilisk-core/domain"
)

type accrualSuite struct {
	suite.Suite
}

func TestAccrualSuite(t *testing.T) {
	suite.Run(t, new(accrualSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *accrualSuite) TestPeriodOf() {
	tests := []struct {
		desc            string
		block           domain.BlockNumber
		blocksPerPeriod uint64
		want            uint64
	}{
		{"genesis", 0, 10, 0},
		{"mid period", 15, 10, 1},
		{"period boundary", 20, 10, 2},
		{"zero period length", 100, 0, 0},
	}
	for _, t := range tests {
		s.Equal(t.want, PeriodOf(t.block, t.blocksPerPeriod), t.desc)
	}
}

func (s *accrualSuite) TestRewardPerPeriod() {
	// yield applied to stake
	s.True(RewardPerPeriod(dec("0.01"), dec("1000"), dec("100")).Equal(dec("10")))
	// capped by the ceiling
	s.True(RewardPerPeriod(dec("0.5"), dec("1000"), dec("100")).Equal(dec("100")))
}

func (s *accrualSuite) TestAccruedReward() {
	// plain accrual over three periods
	s.True(AccruedReward(dec("10"), 3, dec("1000")).Equal(dec("30")))
	// capped by remaining budget
	s.True(AccruedReward(dec("10"), 3, dec("25")).Equal(dec("25")))
	// exhausted budget accrues nothing
	s.True(AccruedReward(dec("10"), 3, decimal.Zero).IsZero())
}

func (s *accrualSuite) TestAdvanceRps() {
	s.True(AdvanceRps(dec("1.5"), dec("100"), dec("200")).Equal(dec("2")))
	// zero stake forfeits the reward, checkpoint stays put
	s.True(AdvanceRps(dec("1.5"), dec("100"), decimal.Zero).Equal(dec("1.5")))
}

func (s *accrualSuite) TestOwed() {
	tests := []struct {
		desc     string
		current  string
		snapshot string
		shares   string
		want     string
	}{
		{"accrued since snapshot", "5", "2", "10", "30"},
		{"nothing accrued", "2", "2", "10", "0"},
		{"snapshot ahead never owes negative", "2", "5", "10", "0"},
	}
	for _, t := range tests {
		s.True(Owed(dec(t.current), dec(t.snapshot), dec(t.shares)).Equal(dec(t.want)), t.desc)
	}
}

func (s *accrualSuite) TestStakeInGlobalFarm() {
	s.True(StakeInGlobalFarm(dec("2"), dec("500")).Equal(dec("1000")))
	s.True(StakeInGlobalFarm(decimal.Zero, dec("500")).IsZero())
}

func (s *accrualSuite) TestLeftToDistribute() {
	s.True(LeftToDistribute(dec("1000"), dec("100"), dec("200")).Equal(dec("700")))
	s.True(LeftToDistribute(dec("100"), dec("80"), dec("40")).IsZero())
}
