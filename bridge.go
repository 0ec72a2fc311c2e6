// Package ghostbridge silently authenticates Keycloak-federated identities
// into native Ghost sessions. The member realm issues Ghost one-time login
// tokens; the staff realm forges Ghost admin session rows and signs the
// session cookie with Ghost's own secret. Ghost itself is never modified and
// none of its login endpoints are called.
package ghostbridge

const name = "github.com/ghostbridge/ghostbridge"

// Error codes surfaced to the browser in staff-realm redirect query strings.
// Stable and enumerable; never accompanied by internal detail.
const (
	ErrCodeUserNotFound = "user-not-found"
	ErrCodeConfig       = "config"
	ErrCodeInternal     = "internal"
)
