// Package oidc contains the methods related to auth via Open ID Connect (OIDC)
package oidc

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
	"golang.org/x/oauth2"
)

// Keycloak serves account registration on a sibling path of the
// authorization endpoint. Not a generic OIDC feature; other providers need
// their own rewrite pair via WithRegistrationRewrite.
const (
	keycloakAuthPath         = "/protocol/openid-connect/auth"
	keycloakRegistrationPath = "/protocol/openid-connect/registrations"
)

var _ Authenticator = &OIDC{}

type OIDC struct {
	provider
	config
	s *securecookie.SecureCookie

	loginURL         string
	endSessionURL    string
	registrationFrom string
	registrationTo   string
	secure           bool
}

// Option configures an OIDC Authenticator.
type Option func(*OIDC)

// WithLoginURL sets the URL to send users back to when authentication fails.
// (default: /login)
func WithLoginURL(u string) Option {
	return func(o *OIDC) {
		o.loginURL = u
	}
}

// WithRegistrationRewrite sets the authorization-path rewrite applied when a
// signup-mode authorization URL is requested. (default: the Keycloak
// registration path convention)
func WithRegistrationRewrite(from, to string) Option {
	return func(o *OIDC) {
		o.registrationFrom = from
		o.registrationTo = to
	}
}

// New returns a new OIDC Authenticator backed by the provider's discovery
// metadata.
func New(ctx context.Context, s *securecookie.SecureCookie, issuerURL, clientID, clientSecret, redirectURL string, options ...Option) (*OIDC, error) {
	p, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, errors.Wrap(err, "oidc.NewProvider()")
	}

	// end_session_endpoint is optional discovery metadata
	var metadata struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := p.Claims(&metadata); err != nil {
		return nil, errors.Wrap(err, "oidc.Provider.Claims()")
	}

	o := &OIDC{
		provider: p,
		config: &oAuth2{
			config: oauth2.Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				RedirectURL:  redirectURL,
				Endpoint:     p.Endpoint(),
				Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
			},
		},
		s:                s,
		loginURL:         "/login",
		endSessionURL:    metadata.EndSessionEndpoint,
		registrationFrom: keycloakAuthPath,
		registrationTo:   keycloakRegistrationPath,
		secure:           true,
	}
	for _, opt := range options {
		opt(o)
	}

	return o, nil
}

// AuthCodeURL returns the URL to redirect to in order to initiate the OIDC
// authentication process. With signup set, the provider's registration
// endpoint is substituted for its authorization endpoint.
func (o *OIDC) AuthCodeURL(w http.ResponseWriter, signup bool) (string, error) {
	// Using PKCE (Proof Key for Code Exchange) to protect against authorization code interception attacks
	pkceVerifier := oauth2.GenerateVerifier()

	// Use a random string as the state to protect against CSRF attacks
	state, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "uuid.NewV4()")
	}

	cval := map[stKey]string{
		stState:        state.String(),
		stPkceVerifier: pkceVerifier,
	}

	if err := o.writeOidcCookie(w, cval); err != nil {
		return "", errors.Wrap(err, "writeOidcCookie()")
	}

	u := o.config.AuthCodeURL(state.String(), oauth2.S256ChallengeOption(pkceVerifier))
	if signup {
		u = strings.Replace(u, o.registrationFrom, o.registrationTo, 1)
	}

	return u, nil
}

// Verify performs the necessary verification and processing of the OIDC
// callback request. It populates 'claims' with the ID Token's claims and
// returns the raw ID token for use as a logout hint.
func (o *OIDC) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request, claims any) (rawIDToken string, err error) {
	cval, ok := o.readOidcCookie(r)
	if !ok {
		return "", httpio.NewForbiddenMessage("No OIDC cookie")
	}
	o.deleteOidcCookie(w)

	// Validate state parameter
	if r.URL.Query().Get("state") != cval[stState] {
		return "", httpio.NewForbiddenMessage("Invalid 'state' parameter value")
	}

	oauth2Token, err := o.config.Exchange(ctx, r.URL.Query().Get("code"), oauth2.VerifierOption(cval[stPkceVerifier]))
	if err != nil {
		return "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to exchange token")
	}

	rawIDToken, ok = oauth2Token.Extra("id_token").(string)
	if !ok {
		return "", httpio.NewInternalServerErrorMessage("No id_token in token response")
	}

	verifier := o.provider.Verifier(&oidc.Config{ClientID: o.config.ClientID()})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to verify ID token")
	}

	// Extract the claims from the ID Token
	if err := idToken.Claims(&claims); err != nil {
		return "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to parse ID token claims")
	}

	return rawIDToken, nil
}

// EndSessionURL returns the provider's end-session URL with the ID token
// attached as a hint so the provider skips its logout confirmation screen.
// ok is false when the provider does not advertise an end-session endpoint.
func (o *OIDC) EndSessionURL(idTokenHint, postLogoutRedirectURI string) (endSessionURL string, ok bool) {
	if o.endSessionURL == "" {
		return "", false
	}

	q := url.Values{}
	if idTokenHint != "" {
		q.Set("id_token_hint", idTokenHint)
	}
	if postLogoutRedirectURI != "" {
		q.Set("post_logout_redirect_uri", postLogoutRedirectURI)
	}
	if len(q) == 0 {
		return o.endSessionURL, true
	}

	return o.endSessionURL + "?" + q.Encode(), true
}

// LoginURL returns the URL to redirect to when an error occurs during the
// OIDC authentication process
func (o *OIDC) LoginURL() string {
	return o.loginURL
}
