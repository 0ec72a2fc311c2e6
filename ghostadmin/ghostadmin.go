// Package ghostadmin is a client for the slice of the Ghost Admin API the
// bridge uses to reconcile members. Transport and protocol failures are
// always surfaced as errors, never as empty result sets, so callers can tell
// "no such member" apart from "the API did not answer".
package ghostadmin

import (
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-cleanhttp"
)

const name = "github.com/ghostbridge/ghostbridge/ghostadmin"

const tokenLifetime = 5 * time.Minute

// Client talks to the Ghost Admin API using short-lived JWTs minted from an
// admin integration key.
type Client struct {
	baseURL   string
	keyID     string
	keySecret []byte
	client    *http.Client
}

// New creates a Client from the Ghost URL and an admin API key in Ghost's
// "id:hexsecret" format.
func New(baseURL, adminAPIKey string) (*Client, error) {
	id, secret, ok := strings.Cut(adminAPIKey, ":")
	if !ok {
		return nil, errors.New("admin API key must have the form id:secret")
	}

	secretBytes, err := hex.DecodeString(secret)
	if err != nil {
		return nil, errors.Wrap(err, "hex.DecodeString()")
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		keyID:     id,
		keySecret: secretBytes,
		client:    cleanhttp.DefaultPooledClient(),
	}, nil
}

// token mints the Authorization token for a single request. Ghost requires
// HS256 over the hex-decoded key secret, the key id in the kid header, and an
// audience of /admin/.
func (c *Client) token() (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
		"aud": "/admin/",
	})
	t.Header["kid"] = c.keyID

	signed, err := t.SignedString(c.keySecret)
	if err != nil {
		return "", errors.Wrap(err, "jwt.Token.SignedString()")
	}

	return signed, nil
}
