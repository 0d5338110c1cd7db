package services

import (
	"errors"
	"fmt"
	"regexp"

	"lifehub/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the bcrypt input limit.
const MaxPasswordLength = 72

var (
	ErrPasswordEmpty       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password is too short")
	ErrPasswordTooLong     = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber    = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial   = errors.New("password must contain at least one special character")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// PasswordService applies the configured password policy and hashes with bcrypt.
type PasswordService struct {
	policy config.SecurityConfig
}

func NewPasswordService(policy config.SecurityConfig) PasswordServiceInterface {
	if policy.BCryptCost < bcrypt.MinCost {
		policy.BCryptCost = bcrypt.DefaultCost
	}
	return &PasswordService{policy: policy}
}

func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < ps.policy.PasswordMinLength {
		return fmt.Errorf("%w: minimum is %d characters", ErrPasswordTooShort, ps.policy.PasswordMinLength)
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	rules := []struct {
		enabled bool
		pattern *regexp.Regexp
		err     error
	}{
		{ps.policy.RequireUppercase, uppercaseRegex, ErrPasswordNoUppercase},
		{ps.policy.RequireLowercase, lowercaseRegex, ErrPasswordNoLowercase},
		{ps.policy.RequireNumbers, numberRegex, ErrPasswordNoNumber},
		{ps.policy.RequireSpecialChars, specialRegex, ErrPasswordNoSpecial},
	}
	for _, rule := range rules {
		if rule.enabled && !rule.pattern.MatchString(password) {
			return rule.err
		}
	}

	return nil
}

// HashPassword validates and hashes a password.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.policy.BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
