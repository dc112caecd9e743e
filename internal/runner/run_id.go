package runner

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const (
	runIDLayout      = "20060102T150405Z"
	runIDSuffixBytes = 6
)

// NewRunID returns a sortable run identifier: the UTC start time followed by
// the leading bytes of a random UUID.
func NewRunID() (string, error) {
	return NewRunIDWithRand(time.Now(), rand.Reader)
}

// NewRunIDWithRand draws the UUID from r so tests can pin the suffix.
func NewRunIDWithRand(now time.Time, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("random reader is nil")
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate run uuid: %w", err)
	}
	return FormatRunID(now, id), nil
}

// FormatRunID renders now in UTC and appends the first six bytes of id in hex.
// The version and variant bits of a v4 UUID sit past the suffix, so all
// twelve hex digits are random.
func FormatRunID(now time.Time, id uuid.UUID) string {
	return now.UTC().Format(runIDLayout) + "-" + hex.EncodeToString(id[:runIDSuffixBytes])
}
