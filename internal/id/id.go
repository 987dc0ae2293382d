// Package id generates property identifiers.
package id

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// New returns an ID for a property created interactively: the creation time
// in unix milliseconds, e.g. "1756702496123".
func New(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// NewComposite returns an ID for a property synthesized during ledger
// import. A random suffix keeps IDs unique when many properties are created
// within the same millisecond.
func NewComposite() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
