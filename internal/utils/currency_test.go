package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹500", FormatINR(500))
	assert.Equal(t, "₹0", FormatINR(0))
	// Indian digit grouping: lakhs and crores
	assert.Equal(t, "₹1,23,456", FormatINR(123456))
}
