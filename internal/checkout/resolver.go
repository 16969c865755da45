// Package checkout turns a possibly-incomplete shipping profile plus a
// session cart into a submittable order draft.
package checkout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/example/verda/internal/models"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// requiredFields in the order they are reported. Country is intentionally
// absent: it defaults and is never validated on its own.
var requiredFields = []string{"full_name", "address", "city", "state", "zip_code", "phone"}

// ValidationError carries field-specific messages for a rejected submission.
// No partial submission is ever accepted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// Draft is the prefilled state the checkout form starts from.
type Draft struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	FromProfile     bool                   `json:"from_profile"`
}

// Resolve builds the checkout draft for a user. A saved profile address
// (full name and address both present) is used as-is; otherwise only the
// full name is prefilled from the user's display name.
func Resolve(user *models.User) Draft {
	if user.ShippingAddress.HasSavedAddress() {
		addr := user.ShippingAddress
		if strings.TrimSpace(addr.Country) == "" {
			addr.Country = models.DefaultCountry
		}
		return Draft{ShippingAddress: addr, FromProfile: true}
	}

	return Draft{
		ShippingAddress: models.ShippingAddress{
			FullName: user.Name,
			Country:  models.DefaultCountry,
		},
	}
}

// ValidateAddress checks every required field and the phone format.
// Returns nil or a *ValidationError keyed by field.
func ValidateAddress(addr models.ShippingAddress) error {
	fields := map[string]string{}

	values := map[string]string{
		"full_name": addr.FullName,
		"address":   addr.Address,
		"city":      addr.City,
		"state":     addr.State,
		"zip_code":  addr.ZipCode,
		"phone":     addr.Phone,
	}
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			fields[field] = fmt.Sprintf("%s is required", field)
		}
	}

	if _, missing := fields["phone"]; !missing && !phonePattern.MatchString(addr.Phone) {
		fields["phone"] = "phone number must be 10 digits"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ValidateSubmission gates order submission: the address must validate and
// the cart must not be empty. An order with zero items is invalid.
func ValidateSubmission(addr models.ShippingAddress, lineCount int) error {
	if lineCount == 0 {
		return &ValidationError{Fields: map[string]string{"items": "cart is empty"}}
	}
	return ValidateAddress(addr)
}

// Normalize trims the submitted fields and applies the country default.
func Normalize(addr models.ShippingAddress) models.ShippingAddress {
	addr.FullName = strings.TrimSpace(addr.FullName)
	addr.Address = strings.TrimSpace(addr.Address)
	addr.City = strings.TrimSpace(addr.City)
	addr.State = strings.TrimSpace(addr.State)
	addr.ZipCode = strings.TrimSpace(addr.ZipCode)
	addr.Country = strings.TrimSpace(addr.Country)
	addr.Phone = strings.TrimSpace(addr.Phone)
	if addr.Country == "" {
		addr.Country = models.DefaultCountry
	}
	return addr
}
