// Package idx mints ULID identifiers for users, invites and requests.
// ULIDs sort lexicographically by creation time, which keeps "newest first"
// listings a plain index scan.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh ULID string. Safe for concurrent use; the monotonic
// entropy source keeps IDs minted in the same millisecond ordered.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt mints a ULID carrying the given timestamp. Useful in tests that
// need IDs with a known ordering.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Validate checks that s is a well-formed ULID.
func Validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return ErrInvalid
	}
	return nil
}

// Time extracts the embedded UTC timestamp, or the zero time when s is not
// a valid ULID.
func Time(s string) time.Time {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
