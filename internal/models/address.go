package models

import "strings"

// DefaultCountry is used whenever an address arrives without one.
const DefaultCountry = "India"

// ShippingAddress is embedded in two places with different lifetimes: a
// mutable copy on User, reused across checkouts, and a frozen snapshot on
// Order that later profile edits never touch.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}

// HasSavedAddress reports whether the address is complete enough to prefill
// a checkout draft.
func (a ShippingAddress) HasSavedAddress() bool {
	return strings.TrimSpace(a.FullName) != "" && strings.TrimSpace(a.Address) != ""
}
