package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrZero(t *testing.T) {
	assert.Equal(t, "1000", OrZero("1000").String())
	assert.Equal(t, "12.5", OrZero("12.5").String())
	assert.Equal(t, "-3.25", OrZero("-3.25").String())
	assert.Equal(t, "7", OrZero("  7  ").String())
}

func TestOrZero_Fallback(t *testing.T) {
	// Malformed input is indistinguishable from a deliberate zero.
	assert.True(t, OrZero("").IsZero())
	assert.True(t, OrZero("   ").IsZero())
	assert.True(t, OrZero("abc").IsZero())
	assert.True(t, OrZero("12abc").IsZero())
	assert.True(t, OrZero("NaN").IsZero())
	assert.True(t, OrZero("$100").IsZero())
}

func TestPositive(t *testing.T) {
	assert.True(t, Positive("0.01"))
	assert.False(t, Positive("0"))
	assert.False(t, Positive("-1"))
	assert.False(t, Positive("garbage"))
	assert.False(t, Positive(""))
}
