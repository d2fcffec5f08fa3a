package scheduling

import (
	"regexp"
	"strings"

	"homeview/models"
)

var (
	// local@domain.tld, nothing fancier.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// 7-20 characters drawn from digits, space, hyphen, plus, parentheses.
	phonePattern = regexp.MustCompile(`^[0-9()+\- ]{7,20}$`)
)

// ValidateContact checks the contact form in order, first failure wins:
// required fields, then email shape, then phone shape. The date/time
// re-check is the wizard's job since it owns the selections.
func ValidateContact(c models.ContactDetails) error {
	name := strings.TrimSpace(c.Name)
	email := strings.TrimSpace(c.Email)
	phone := strings.TrimSpace(c.Phone)

	if name == "" || email == "" || phone == "" {
		return NewValidationError("please fill in all required fields")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("please enter a valid email address")
	}
	if !phonePattern.MatchString(phone) {
		return NewValidationError("please enter a valid phone number")
	}
	return nil
}
