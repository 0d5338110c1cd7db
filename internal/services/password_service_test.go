package services

import (
	"strings"
	"testing"

	"lifehub/internal/config"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(config.SecurityConfig{
		BCryptCost:        bcrypt.MinCost,
		PasswordMinLength: 8,
		RequireLowercase:  true,
		RequireNumbers:    true,
	})
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	cases := map[string]error{
		"":                       ErrPasswordEmpty,
		"abc1":                   ErrPasswordTooShort,
		"ABCDEFGH1":              ErrPasswordNoLowercase,
		"abcdefgh":               ErrPasswordNoNumber,
		strings.Repeat("a1", 40): ErrPasswordTooLong,
		"kakeibo2024":            nil,
	}

	for password, want := range cases {
		err := s.service.ValidatePassword(password)
		if want == nil {
			s.NoError(err, password)
			continue
		}
		s.ErrorIs(err, want, password)
	}
}

func (s *PasswordServiceTestSuite) TestOptionalRules() {
	strict := NewPasswordService(config.SecurityConfig{
		PasswordMinLength:   8,
		RequireUppercase:    true,
		RequireSpecialChars: true,
	})

	s.ErrorIs(strict.ValidatePassword("lowercase!"), ErrPasswordNoUppercase)
	s.ErrorIs(strict.ValidatePassword("Uppercase1"), ErrPasswordNoSpecial)
	s.NoError(strict.ValidatePassword("Uppercase!"))
}

func (s *PasswordServiceTestSuite) TestHashAndCompare() {
	hash, err := s.service.HashPassword("kakeibo2024")
	s.Require().NoError(err)
	s.NotEqual("kakeibo2024", hash)

	s.True(s.service.ComparePassword("kakeibo2024", hash))
	s.False(s.service.ComparePassword("kakeibo2025", hash))
}

func (s *PasswordServiceTestSuite) TestHashRejectsWeakPassword() {
	_, err := s.service.HashPassword("short")
	s.ErrorIs(err, ErrPasswordTooShort)
}
