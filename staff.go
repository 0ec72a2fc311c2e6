package ghostbridge

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/ghostbridge/ghostbridge/ghostdb"
	"github.com/ghostbridge/ghostbridge/ghostsig"
	"github.com/ghostbridge/ghostbridge/metrics"
	"github.com/ghostbridge/ghostbridge/oidc"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

const (
	// staffSessionLifetime matches the lifetime Ghost gives its own admin
	// sessions.
	staffSessionLifetime = 180 * 24 * time.Hour

	// staffCookieName and staffAreaPath are fixed by Ghost's admin cookie
	// middleware.
	staffCookieName = "ghost-admin-api-session"
	staffAreaPath   = "/ghost"
)

var _ StaffHandlers = &StaffSession{}

// StaffSession implements the privileged-realm handlers. There is no
// auto-provisioning: the authenticated identity must match an existing
// loginable staff user, and the session is forged directly into Ghost's
// session table because the admin area has no token-redemption endpoint.
type StaffSession struct {
	oidc      oidc.Authenticator
	storage   StaffSessionStorage
	ghostURL  string
	collector *metrics.Collector
}

// NewStaffSession creates the staff-realm handler set. collector may be nil.
func NewStaffSession(oidcAuthenticator oidc.Authenticator, storage StaffSessionStorage, ghostURL string, collector *metrics.Collector) *StaffSession {
	return &StaffSession{
		oidc:      oidcAuthenticator,
		storage:   storage,
		ghostURL:  ghostURL,
		collector: collector,
	}
}

// Login initiates the OIDC login flow by redirecting the user to the
// authorization URL.
func (s *StaffSession) Login() http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "StaffSession.Login()")
		defer span.End()

		authCodeURL, err := s.oidc.AuthCodeURL(w, false)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		http.Redirect(w, r, authCodeURL, http.StatusFound)

		return nil
	})
}

// Callback is the handler for the callback from the OIDC auth provider
func (s *StaffSession) Callback() http.HandlerFunc {
	type claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Sub   string `json:"sub"`
	}

	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "StaffSession.Callback()")
		defer span.End()

		claims := &claims{}
		if _, err := s.oidc.Verify(ctx, w, r, claims); err != nil {
			s.fail(w, r, ErrCodeInternal)

			return errors.Wrap(err, "oidc.Authenticator.Verify()")
		}

		user, err := s.storage.ActiveStaffUser(ctx, claims.Email)
		if err != nil {
			if httpio.CauseIsError(err) {
				s.fail(w, r, ErrCodeInternal)

				return errors.Wrap(err, "StaffSessionStorage.ActiveStaffUser()")
			}
			s.fail(w, r, ErrCodeUserNotFound)

			return err
		}

		secret, err := s.storage.SessionSecret(ctx)
		if err != nil {
			if httpio.CauseIsError(err) {
				s.fail(w, r, ErrCodeInternal)

				return errors.Wrap(err, "StaffSessionStorage.SessionSecret()")
			}
			// Ghost was never fully provisioned; an operator problem, not a
			// user one.
			logger.Ctx(ctx).Error("ghost session_secret is missing from the settings table")
			s.fail(w, r, ErrCodeConfig)

			return errors.Wrap(err, "StaffSessionStorage.SessionSecret()")
		}

		sessionID, expires, err := s.forgeSession(r, user)
		if err != nil {
			s.fail(w, r, ErrCodeInternal)

			return errors.Wrap(err, "StaffSession.forgeSession()")
		}

		http.SetCookie(w, &http.Cookie{
			Name:     staffCookieName,
			Value:    ghostsig.Sign(sessionID, secret),
			Path:     staffAreaPath,
			Expires:  expires,
			MaxAge:   int(staffSessionLifetime.Seconds()),
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteNoneMode,
		})

		s.collector.RecordLogin(metrics.RealmStaff, metrics.OutcomeSuccess)
		s.collector.RecordSessionForged()
		http.Redirect(w, r, s.ghostURL+staffAreaPath+"/", http.StatusFound)

		return nil
	})
}

// forgeSession inserts a session row shaped exactly like one Ghost's own
// login would create, and returns the session identifier to be signed into
// the cookie.
func (s *StaffSession) forgeSession(r *http.Request, user *ghostdb.StaffUser) (sessionID string, expires time.Time, err error) {
	ctx, span := otel.Tracer(name).Start(r.Context(), "StaffSession.forgeSession()")
	defer span.End()

	now := time.Now().UTC()
	expires = now.Add(staffSessionLifetime)

	row := &ghostdb.StaffSessionRow{
		ID:        ghostsig.ObjectID(),
		SessionID: ghostsig.Token(),
		Data: ghostdb.SessionData{
			Cookie: ghostdb.SessionCookie{
				OriginalMaxAge: staffSessionLifetime.Milliseconds(),
				Expires:        expires,
				Secure:         true,
				HTTPOnly:       true,
				Path:           staffAreaPath,
				SameSite:       "none",
			},
			UserID:    user.ID,
			Origin:    s.ghostURL,
			UserAgent: r.UserAgent(),
			IP:        clientIP(r),
			Verified:  true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.InsertStaffSession(ctx, row); err != nil {
		return "", time.Time{}, errors.Wrap(err, "StaffSessionStorage.InsertStaffSession()")
	}

	return row.SessionID, expires, nil
}

// fail redirects back to the staff login entry point with a stable error
// code; no session is created and no internal detail is exposed.
func (s *StaffSession) fail(w http.ResponseWriter, r *http.Request, code string) {
	s.collector.RecordLogin(metrics.RealmStaff, metrics.OutcomeFailure)
	http.Redirect(w, r, fmt.Sprintf("%s?error=%s", s.oidc.LoginURL(), url.QueryEscape(code)), http.StatusFound)
}
