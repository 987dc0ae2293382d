package id

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1736899200000", New(now))
}

func TestNewComposite(t *testing.T) {
	a := NewComposite()
	b := NewComposite()

	assert.NotEqual(t, a, b)
	parts := strings.SplitN(a, "-", 2)
	assert.Len(t, parts, 2)
	assert.Len(t, parts[1], 8)
}
