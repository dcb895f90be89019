package ids

import (
	"strings"

	"github.com/google/uuid"
)

// CanonicalPath normalizes a host filesystem path into the forward-slash
// form used for id derivation, regardless of host OS separator
// conventions. This guarantees the same project laid out on Windows or
// Unix hashes to the same ids.
func CanonicalPath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// Derive computes the deterministic UUIDv5-equivalent identifier for a
// canonical path string: uuid_v5(NAMESPACE_OID, canonicalPath). Go's
// standard uuid package expresses v5 generation as NewSHA1 against a
// namespace UUID; NameSpaceOID is the same namespace the original
// implementation used.
func Derive(canonicalPath string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(canonicalPath))
}
