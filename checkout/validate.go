package checkout

import (
	"regexp"
	"strings"
)

// OrderForm is the shipping-address form submitted at checkout.
type OrderForm struct {
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	LocationTag string `json:"location_tag"`
	SaveAddress bool   `json:"save_address"`
}

// FieldError is a per-field validation failure, surfaced inline next to the
// field plus once in a summary notification.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// ValidateForm re-checks the whole form. It runs on submit even when
// per-field checks passed earlier, since values may have changed since.
func ValidateForm(f OrderForm) []FieldError {
	var errs []FieldError

	if !Required(f.FullName) {
		errs = append(errs, FieldError{Field: "full_name", Message: "Full name is required"})
	}
	if !Required(f.Address) {
		errs = append(errs, FieldError{Field: "address", Message: "Address is required"})
	}
	if !Required(f.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone is required"})
	} else if !ValidPhone(f.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: "Please enter a valid phone number"})
	}

	if f.Email != "" && !ValidEmail(f.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if f.WhatsApp != "" && !ValidPhone(f.WhatsApp) {
		errs = append(errs, FieldError{Field: "whatsapp", Message: "Please enter a valid WhatsApp number"})
	}

	return errs
}

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone ignores spaces, then wants an optional + and up to 16 digits
// not starting with 0.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}
