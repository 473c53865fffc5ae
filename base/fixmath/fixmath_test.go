package fixmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type fixmathSuite struct {
	suite.Suite
}

func TestFixmathSuite(t *testing.T) {
	suite.Run(t, new(fixmathSuite))
}

func (s *fixmathSuite) TestSaturatingSub() {
	tests := []struct {
		desc string
		a    string
		b    string
		want string
	}{
		{"normal subtraction", "10", "3", "7"},
		{"equal operands", "5", "5", "0"},
		{"saturates at zero", "3", "10", "0"},
		{"fractional", "1.5", "0.25", "1.25"},
	}
	for _, t := range tests {
		a := decimal.RequireFromString(t.a)
		b := decimal.RequireFromString(t.b)
		s.True(SaturatingSub(a, b).Equal(decimal.RequireFromString(t.want)), t.desc)
	}
}

func (s *fixmathSuite) TestSafeDiv() {
	s.True(SafeDiv(decimal.NewFromInt(10), decimal.NewFromInt(4)).Equal(decimal.RequireFromString("2.5")))
	s.True(SafeDiv(decimal.NewFromInt(10), decimal.Zero).IsZero())

	// precision is bounded, not infinite
	got := SafeDiv(decimal.NewFromInt(1), decimal.NewFromInt(3))
	s.True(got.GreaterThan(decimal.RequireFromString("0.333333333333333333").Sub(decimal.RequireFromString("0.000000000000000001"))))
	s.True(got.LessThan(decimal.RequireFromString("0.34")))
}

func (s *fixmathSuite) TestMinMax() {
	a := decimal.NewFromInt(2)
	b := decimal.NewFromInt(7)
	s.True(Min(a, b).Equal(a))
	s.True(Min(b, a).Equal(a))
	s.True(Max(a, b).Equal(b))
	s.True(Max(b, a).Equal(b))
}
