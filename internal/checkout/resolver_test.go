package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/verda/internal/models"
)

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName: "Asha Rao",
		Address:  "14 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		ZipCode:  "560001",
		Country:  "India",
		Phone:    "9876543210",
	}
}

func TestResolvePrefillsSavedAddress(t *testing.T) {
	user := &models.User{Name: "Asha Rao", ShippingAddress: validAddress()}

	draft := Resolve(user)

	assert.True(t, draft.FromProfile)
	assert.Equal(t, validAddress(), draft.ShippingAddress)
}

func TestResolveWithoutSavedAddressPrefillsOnlyName(t *testing.T) {
	user := &models.User{Name: "Asha Rao"}

	draft := Resolve(user)

	assert.False(t, draft.FromProfile)
	assert.Equal(t, "Asha Rao", draft.ShippingAddress.FullName)
	assert.Empty(t, draft.ShippingAddress.Address)
	assert.Empty(t, draft.ShippingAddress.City)
	assert.Empty(t, draft.ShippingAddress.Phone)
	assert.Equal(t, models.DefaultCountry, draft.ShippingAddress.Country)
}

func TestResolveIgnoresPartialProfile(t *testing.T) {
	// full name saved but no street address: not a usable profile
	user := &models.User{
		Name:            "Asha Rao",
		ShippingAddress: models.ShippingAddress{FullName: "Asha Rao", City: "Pune"},
	}

	draft := Resolve(user)

	assert.False(t, draft.FromProfile)
	assert.Empty(t, draft.ShippingAddress.City)
}

func TestValidateAddressReportsEveryMissingField(t *testing.T) {
	err := ValidateAddress(models.ShippingAddress{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"full_name", "address", "city", "state", "zip_code", "phone"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.NotContains(t, verr.Fields, "country")
}

func TestValidateAddressRejectsWhitespaceOnlyFields(t *testing.T) {
	addr := validAddress()
	addr.City = "   "

	err := ValidateAddress(addr)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "city")
	assert.Len(t, verr.Fields, 1)
}

func TestValidateAddressPhoneMustBeTenDigits(t *testing.T) {
	for _, phone := range []string{"12345", "98765432101", "98765abc10", "+919876543210"} {
		addr := validAddress()
		addr.Phone = phone

		err := ValidateAddress(addr)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "phone %q should fail", phone)
		assert.Contains(t, verr.Fields, "phone")
	}
}

func TestValidateAddressAcceptsCompleteAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(validAddress()))
}

func TestValidateSubmissionRejectsEmptyCart(t *testing.T) {
	err := ValidateSubmission(validAddress(), 0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")
}

func TestValidateSubmissionPassesWithItemsAndValidAddress(t *testing.T) {
	assert.NoError(t, ValidateSubmission(validAddress(), 2))
}

func TestNormalizeTrimsAndDefaultsCountry(t *testing.T) {
	addr := Normalize(models.ShippingAddress{
		FullName: "  Asha Rao ",
		Address:  " 14 MG Road ",
		City:     "Bengaluru",
		State:    "Karnataka",
		ZipCode:  " 560001",
		Phone:    "9876543210 ",
	})

	assert.Equal(t, "Asha Rao", addr.FullName)
	assert.Equal(t, "14 MG Road", addr.Address)
	assert.Equal(t, "560001", addr.ZipCode)
	assert.Equal(t, "9876543210", addr.Phone)
	assert.Equal(t, models.DefaultCountry, addr.Country)
}
