package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "invalid credentials", code: AuthInvalidCredentials, expected: "Invalid email or password"},
		{name: "self follow", code: ProfileSelfFollow, expected: "You cannot follow yourself"},
		{name: "message not permitted", code: MessageNotPermitted, expected: "You are not allowed to perform this action on the message"},
		{name: "ledger category", code: LedgerInvalidCategory, expected: "Category must be income or expense"},
		{name: "janken hand", code: GameInvalidHand, expected: "Hand must be one of グー, チョキ, パー"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func (s *CodesTestSuite) TestEveryCodeHasMessageAndPrefix() {
	prefixes := []string{"AUTH_", "VALIDATION_", "PROFILE_", "POST_", "COMMENT_", "NOTIFICATION_", "MESSAGE_", "LEDGER_", "EVENT_", "GAME_", "SYSTEM_"}

	for code, msg := range errorMessages {
		s.NotEmpty(msg, string(code))
		s.True(IsValidErrorCode(code))

		matched := false
		for _, p := range prefixes {
			if strings.HasPrefix(string(code), p) {
				matched = true
				break
			}
		}
		s.True(matched, "unexpected prefix on %s", code)
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_Unknown() {
	s.False(IsValidErrorCode(""))
	s.False(IsValidErrorCode("CUSTOMER_001"))
}
