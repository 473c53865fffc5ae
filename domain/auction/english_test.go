package auction

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/1xGiraffe/basilisk-core/base/ptr"
	"github.com/1xGiraffe/basilisk-core/domain"
)

type englishSuite struct {
	suite.Suite
	cfg Config
}

func TestEnglishSuite(t *testing.T) {
	suite.Run(t, new(englishSuite))
}

func (s *englishSuite) SetupTest() {
	s.cfg = Config{
		MinAuctionDuration: 10,
		BidAddBlocks:       5,
		BidStepPerc:        10,
		MaxNameLength:      64,
	}
}

func validSpec() *Spec {
	return &Spec{
		Name:       "genesis drop",
		Start:      10,
		End:        21,
		Owner:      domain.AccountId("ALICE"),
		Type:       TypeEnglish,
		Token:      domain.TokenId{CollectionId: 1, ItemId: 1},
		NextBidMin: "55",
		MinimalBid: "55",
	}
}

func (s *englishSuite) TestValidateSpec() {
	tests := []struct {
		desc   string
		mutate func(*Spec)
		now    domain.BlockNumber
		want   error
	}{
		{
			desc:   "valid spec",
			mutate: func(sp *Spec) {},
			now:    0,
			want:   nil,
		},
		{
			desc:   "empty name",
			mutate: func(sp *Spec) { sp.Name = "" },
			now:    0,
			want:   domain.ErrEmptyAuctionName,
		},
		{
			desc:   "name too long",
			mutate: func(sp *Spec) { sp.Name = strings.Repeat("x", 65) },
			now:    0,
			want:   domain.ErrBadParamInput,
		},
		{
			desc:   "start already passed",
			mutate: func(sp *Spec) {},
			now:    10,
			want:   domain.ErrAuctionStartTimeAlreadyPassed,
		},
		{
			desc:   "zero end",
			mutate: func(sp *Spec) { sp.End = 0 },
			now:    0,
			want:   domain.ErrInvalidTimeConfiguration,
		},
		{
			desc:   "duration below minimum",
			mutate: func(sp *Spec) { sp.End = 19 },
			now:    0,
			want:   domain.ErrInvalidTimeConfiguration,
		},
		{
			desc:   "unknown auction type",
			mutate: func(sp *Spec) { sp.Type = Type("Dutch") },
			now:    0,
			want:   domain.ErrBadParamInput,
		},
		{
			desc:   "next bid min diverges from minimal bid",
			mutate: func(sp *Spec) { sp.NextBidMin = "60" },
			now:    0,
			want:   domain.ErrInvalidNextBidMin,
		},
		{
			desc: "reserve price pins next bid min",
			mutate: func(sp *Spec) {
				sp.ReservePrice = ptr.String("100")
				sp.NextBidMin = "100"
			},
			now:  0,
			want: nil,
		},
		{
			desc: "reserve price set but next bid min left at floor",
			mutate: func(sp *Spec) {
				sp.ReservePrice = ptr.String("100")
			},
			now:  0,
			want: domain.ErrInvalidNextBidMin,
		},
		{
			desc:   "non positive minimal bid",
			mutate: func(sp *Spec) { sp.MinimalBid = "0"; sp.NextBidMin = "0" },
			now:    0,
			want:   domain.ErrBadParamInput,
		},
	}
	for _, t := range tests {
		sp := validSpec()
		t.mutate(sp)
		s.Equal(t.want, ValidateSpec(s.cfg, sp, t.now), t.desc)
	}
}

func (s *englishSuite) TestNextBidMinAfter() {
	tests := []struct {
		desc   string
		amount string
		want   string
	}{
		{"ten percent step", "100", "110"},
		{"step floored at one unit", "5", "6"},
		{"fractional step", "55", "60.5"},
	}
	for _, t := range tests {
		got := NextBidMinAfter(s.cfg, decimal.RequireFromString(t.amount))
		s.True(got.Equal(decimal.RequireFromString(t.want)), t.desc)
	}
}

func (s *englishSuite) TestExtendEnd() {
	tests := []struct {
		desc string
		now  domain.BlockNumber
		end  domain.BlockNumber
		want domain.BlockNumber
	}{
		{"outside the window, end unchanged", 10, 21, 21},
		{"inside the window, end pushed out", 20, 21, 25},
		{"at the boundary, end unchanged", 16, 21, 21},
		{"never shortens on repeated late bids", 24, 25, 29},
	}
	for _, t := range tests {
		got := ExtendEnd(s.cfg, t.now, t.end)
		s.Equal(t.want, got, t.desc)
		s.GreaterOrEqual(got, t.end, t.desc)
		s.GreaterOrEqual(uint64(got-t.now), uint64(s.cfg.BidAddBlocks), t.desc)
	}
}
