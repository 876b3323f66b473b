package security

import (
	"fmt"
	"unicode"
)

const minPasswordLength = 8

// PolicyViolation describes why a password failed the complexity policy.
type PolicyViolation struct {
	Code    string
	Message string
}

func (v *PolicyViolation) Error() string {
	if v == nil {
		return ""
	}
	return v.Message
}

// PasswordRule checks a single aspect of the password policy.
type PasswordRule func(password string) *PolicyViolation

// PasswordPolicy applies an ordered list of rules and surfaces the first
// violation only (fail-fast).
type PasswordPolicy struct {
	rules []PasswordRule
}

// DefaultPasswordPolicy enforces the registration policy: at least 8
// characters containing a digit, a lowercase letter, an uppercase letter,
// and a symbol.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{rules: []PasswordRule{
		minLengthRule(minPasswordLength),
		requireClassRule("digit", unicode.IsDigit),
		requireClassRule("lowercase letter", unicode.IsLower),
		requireClassRule("uppercase letter", unicode.IsUpper),
		requireClassRule("symbol", func(r rune) bool {
			return unicode.IsSymbol(r) || unicode.IsPunct(r)
		}),
	}}
}

// Validate returns the first violated rule, or nil when the password passes.
func (p *PasswordPolicy) Validate(password string) *PolicyViolation {
	for _, rule := range p.rules {
		if v := rule(password); v != nil {
			return v
		}
	}
	return nil
}

func minLengthRule(min int) PasswordRule {
	return func(password string) *PolicyViolation {
		if len([]rune(password)) < min {
			return &PolicyViolation{
				Code:    "min_length",
				Message: fmt.Sprintf("password must be at least %d characters long", min),
			}
		}
		return nil
	}
}

func requireClassRule(name string, member func(rune) bool) PasswordRule {
	return func(password string) *PolicyViolation {
		for _, r := range password {
			if member(r) {
				return nil
			}
		}
		return &PolicyViolation{
			Code:    "character_class",
			Message: fmt.Sprintf("password must include at least one %s", name),
		}
	}
}
