package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Prefixes of the identifier namespaces.
const (
	PrefixUser    = "user"
	PrefixRequest = "req"
	PrefixCredit  = "cred"
	PrefixHoliday = "ph"
	PrefixSession = "sess"
)

// New returns a prefixed identifier like "user_3f2a9c0d14be": the
// namespace prefix plus 12 hex characters of randomness.
func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}
