package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) SetupTest() {
}

func (s *ValidatorTestSuite) TearDownTest() {
}

func (s *ValidatorTestSuite) SetupSuite() {
}

func (s *ValidatorTestSuite) TearDownSuite() {
}

func (s *ValidatorTestSuite) TestIsValidAccountId() {
	tests := []struct {
		desc       string
		account    string
		expIsValid bool
	}{
		{
			desc:       "empty account",
			account:    "",
			expIsValid: false,
		},
		{
			desc:       "valid account - plain name",
			account:    "ALICE",
			expIsValid: true,
		},
		{
			desc:       "valid account - derived pot account",
			account:    "farm:g:1",
			expIsValid: true,
		},
		{
			desc:       "invalid account - whitespace",
			account:    "not an account",
			expIsValid: false,
		},
		{
			desc:       "invalid account - too long",
			account:    strings.Repeat("a", 65),
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAccountId(t.account), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
