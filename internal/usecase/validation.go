package usecase

import (
	"fmt"
	"regexp"

	"github.com/hannkit/lead-gateway/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Loose local@domain.tld shape. The form is the real gatekeeper; this only
// rejects strings that cannot possibly be addresses.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLead runs on the normalized (trimmed, defaulted) lead.
func ValidateLead(lead *entity.Lead) []ValidationError {
	var errors []ValidationError

	if lead.Name == "" && lead.Email == "" && lead.Phone == "" {
		errors = append(errors, ValidationError{"payload", "at least one of name, email or phone is required"})
	}

	if lead.Email != "" && !isValidEmail(lead.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
