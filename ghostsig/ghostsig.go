// Package ghostsig generates identifiers and signatures in the exact formats
// Ghost produces for its own records, so rows and cookies created by the
// bridge are indistinguishable from native ones.
package ghostsig

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
)

// ObjectID returns a 24 character lowercase hex string (12 random bytes),
// the format Ghost uses for primary keys.
func ObjectID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// rand.Read only fails when the OS entropy source is broken
		panic(errors.Wrap(err, "rand.Read()"))
	}

	return hex.EncodeToString(b)
}

// ExternalID returns a RFC 4122 v4 UUID string, used for cross-system
// linkage fields such as members.uuid.
func ExternalID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Token returns a 32 character URL-safe token (24 random bytes, base64 with
// '+' -> '-', '/' -> '_', padding stripped). Ghost uses this shape both for
// one-time login tokens and session identifiers.
func Token() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		panic(errors.Wrap(err, "rand.Read()"))
	}

	s := base64.StdEncoding.EncodeToString(b)
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, "/", "_")

	return strings.TrimRight(s, "=")
}

// Sign signs value with an HMAC-SHA256 keyed by secret and returns it in the
// express cookie-signature wire format: "s:<value>.<base64 signature>" with
// base64 padding stripped. Ghost's cookie middleware unsigns cookies with
// exactly this shape; any deviation is silently rejected rather than erroring.
func Sign(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return "s:" + value + "." + strings.TrimRight(sig, "=")
}

// Unsign reverses Sign, returning the embedded value and whether the
// signature verifies. It exists as the reference verifier for round-trip
// tests; the bridge itself never reads the cookies it forges.
func Unsign(signed, secret string) (string, bool) {
	raw, ok := strings.CutPrefix(signed, "s:")
	if !ok {
		return "", false
	}
	i := strings.LastIndex(raw, ".")
	if i < 0 {
		return "", false
	}
	value := raw[:i]

	if subtle.ConstantTimeCompare([]byte(Sign(value, secret)), []byte(signed)) != 1 {
		return "", false
	}

	return value, true
}
