package xid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random identifier. When the random source fails it falls
// back to a time-based identifier instead of panicking.
func New() uuid.UUID {
	id, err := uuid.NewRandom()
	if err == nil {
		return id
	}
	if id, err = uuid.NewUUID(); err == nil {
		return id
	}
	return uuid.Must(uuid.NewRandom())
}

// Short is the first eight hex characters of id, uppercased.
func Short(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:8])
}

// HasPrefix reports whether the canonical form of id starts with prefix,
// ignoring case and dashes typed by the user.
func HasPrefix(id uuid.UUID, prefix string) bool {
	prefix = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(prefix), "-", ""))
	if prefix == "" {
		return false
	}
	compact := strings.ReplaceAll(id.String(), "-", "")
	return strings.HasPrefix(compact, prefix)
}
