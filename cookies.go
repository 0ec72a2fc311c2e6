package ghostbridge

import (
	"net/http"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// scKey is a type for storing values in the logout-hint cookie
type scKey string

func (c scKey) String() string {
	return string(c)
}

const (
	// hintCookieName holds the provider ID token between login and logout so
	// single logout can skip the provider's confirmation screen.
	hintCookieName       = "ghost-sso-hint"
	scIDToken      scKey = "idToken"

	hintCookieLife = time.Hour

	// Ghost's member front-end session cookies, cleared on logout.
	membersSSRCookieName    = "ghost-members-ssr"
	membersSSRSigCookieName = "ghost-members-ssr.sig"
)

// Interface included for testability
type cookieManager interface {
	writeLogoutHint(w http.ResponseWriter, idToken string) error
	readLogoutHint(r *http.Request) (string, bool)
	deleteLogoutHint(w http.ResponseWriter)
	clearMemberSession(w http.ResponseWriter)
}

var _ cookieManager = &cookieClient{}

type cookieClient struct {
	secureCookie *securecookie.SecureCookie
	// path scopes the hint cookie to this realm's own endpoints
	path string
}

func newCookieClient(secureCookie *securecookie.SecureCookie, path string) *cookieClient {
	return &cookieClient{
		secureCookie: secureCookie,
		path:         path,
	}
}

func (c *cookieClient) writeLogoutHint(w http.ResponseWriter, idToken string) error {
	cval := map[scKey]string{
		scIDToken: idToken,
	}
	encoded, err := c.secureCookie.Encode(hintCookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     hintCookieName,
		Value:    encoded,
		Path:     c.path,
		Expires:  time.Now().Add(hintCookieLife),
		MaxAge:   int(hintCookieLife.Seconds()),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (c *cookieClient) readLogoutHint(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(hintCookieName)
	if err != nil {
		return "", false
	}

	cval := make(map[scKey]string)
	if err := c.secureCookie.Decode(hintCookieName, cookie.Value, &cval); err != nil {
		return "", false
	}

	return cval[scIDToken], true
}

func (c *cookieClient) deleteLogoutHint(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     hintCookieName,
		Path:     c.path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearMemberSession expires Ghost's own member session cookies so the
// browser is logged out of the blog as well as the provider.
func (c *cookieClient) clearMemberSession(w http.ResponseWriter) {
	for _, name := range []string{membersSSRCookieName, membersSSRSigCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
			Secure:  true,
		})
	}
}
