package oidc

import (
	"context"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

type Authenticator interface {
	// AuthCodeURL returns the URL to redirect to in order to initiate the OIDC
	// authentication process. With signup set, the provider's registration
	// endpoint is substituted for its authorization endpoint.
	AuthCodeURL(w http.ResponseWriter, signup bool) (string, error)

	// Verify performs the necessary verification and processing of the OIDC
	// callback request. It populates 'claims' with the ID Token's claims and
	// returns the raw ID token for use as a logout hint.
	Verify(ctx context.Context, w http.ResponseWriter, r *http.Request, claims any) (rawIDToken string, err error)

	// EndSessionURL returns the provider's end-session URL with the ID token
	// attached as a hint. ok is false when the provider does not advertise an
	// end-session endpoint.
	EndSessionURL(idTokenHint, postLogoutRedirectURI string) (endSessionURL string, ok bool)

	// LoginURL returns the URL to redirect to when an error occurs during the
	// OIDC authentication process
	LoginURL() string
}

// Defined for testability
type provider interface {
	Verifier(config *oidc.Config) *oidc.IDTokenVerifier
	Endpoint() oauth2.Endpoint
	Claims(v any) error
}

// Defined for testability
type config interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	ClientID() string
}
