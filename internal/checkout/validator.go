package checkout

import (
	"strings"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// ValidateCustomer applies the checkout form rules in order, stopping
// at the first failure. GST number is optional and never validated.
func ValidateCustomer(customer domain.CustomerInfo) *FieldError {
	if strings.TrimSpace(customer.Name) == "" {
		return &FieldError{Field: "name", Message: "please enter customer name"}
	}
	if strings.TrimSpace(customer.Address) == "" {
		return &FieldError{Field: "address", Message: "please enter address"}
	}
	if !isDigits(strings.TrimSpace(customer.Pincode), 6) {
		return &FieldError{Field: "pincode", Message: "please enter a valid 6-digit pincode"}
	}
	if !isDigits(strings.TrimSpace(customer.Phone), 10) {
		return &FieldError{Field: "phone", Message: "please enter a valid 10-digit phone number"}
	}
	return nil
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
