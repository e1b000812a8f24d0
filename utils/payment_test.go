package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentAlwaysSucceeds(t *testing.T) {
	ref, err := ProcessPayment(1000, "card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "PAY-"))
}

func TestProcessPaymentSkipsZeroAmount(t *testing.T) {
	ref, err := ProcessPayment(0, "card")
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestProcessPaymentReferencesAreUnique(t *testing.T) {
	a, _ := ProcessPayment(100, "upi")
	b, _ := ProcessPayment(100, "upi")
	assert.NotEqual(t, a, b)
}
