package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MinChildAge = 1
	MaxChildAge = 17
)

// Guest names need at least first name and surname; tokens may carry
// accented letters, apostrophes and hyphens ("Ana López", "O'Brien",
// "García-Sáenz") but no digits or other symbols.
var nameToken = regexp.MustCompile(`^[\p{L}'-]+$`)

// ValidateGuestName checks a single guest row's name.
func ValidateGuestName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: guest name is empty", ErrValidation)
	}

	tokens := strings.Fields(trimmed)
	if len(tokens) < 2 {
		return fmt.Errorf("%w: guest name %q needs first name and surname", ErrValidation, trimmed)
	}
	for _, tok := range tokens {
		if !nameToken.MatchString(tok) {
			return fmt.Errorf("%w: guest name %q contains invalid characters", ErrValidation, trimmed)
		}
	}

	return nil
}

// ValidateChildGuest checks a child row: name rules plus the age range.
func ValidateChildGuest(c ChildGuest) error {
	if err := ValidateGuestName(c.Name); err != nil {
		return err
	}
	if c.Age < MinChildAge || c.Age > MaxChildAge {
		return fmt.Errorf("%w: child %q must be between %d and %d years old",
			ErrValidation, strings.TrimSpace(c.Name), MinChildAge, MaxChildAge)
	}
	return nil
}
