package ghostbridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/ghostbridge/ghostbridge/ghostadmin"
	"github.com/ghostbridge/ghostbridge/ghostdb"
	"github.com/ghostbridge/ghostbridge/ghostsig"
	"github.com/ghostbridge/ghostbridge/metrics"
	"github.com/ghostbridge/ghostbridge/oidc"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
	"go.opentelemetry.io/otel"
)

// defaultMemberName labels auto-provisioned members whose ID token carries no
// name claim.
const defaultMemberName = "Member"

var _ MemberHandlers = &MemberSession{}

// MemberSession implements the public-realm handlers: federated identities
// are reconciled against Ghost's member store (auto-provisioning on first
// login) and logged in through Ghost's own magic-link redemption.
type MemberSession struct {
	oidc      oidc.Authenticator
	members   MemberManager
	storage   MagicTokenStorage
	cookies   cookieManager
	ghostURL  string
	collector *metrics.Collector
}

// NewMemberSession creates the member-realm handler set. basePath is the
// path this realm is mounted under; the logout-hint cookie is scoped to it.
// collector may be nil.
func NewMemberSession(
	oidcAuthenticator oidc.Authenticator, members MemberManager, storage MagicTokenStorage,
	secureCookie *securecookie.SecureCookie, ghostURL, basePath string, collector *metrics.Collector,
) *MemberSession {
	return &MemberSession{
		oidc:      oidcAuthenticator,
		members:   members,
		storage:   storage,
		cookies:   newCookieClient(secureCookie, basePath),
		ghostURL:  ghostURL,
		collector: collector,
	}
}

// Login initiates the OIDC login flow by redirecting the user to the
// authorization URL. ?action=signup sends the user to the provider's
// registration form instead.
func (m *MemberSession) Login() http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "MemberSession.Login()")
		defer span.End()

		signup := r.URL.Query().Get("action") == "signup"
		authCodeURL, err := m.oidc.AuthCodeURL(w, signup)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		http.Redirect(w, r, authCodeURL, http.StatusFound)

		return nil
	})
}

// Callback is the handler for the callback from the OIDC auth provider
func (m *MemberSession) Callback() http.HandlerFunc {
	type claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Sub   string `json:"sub"`
	}

	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "MemberSession.Callback()")
		defer span.End()

		claims := &claims{}
		rawIDToken, err := m.oidc.Verify(ctx, w, r, claims)
		if err != nil {
			m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeFailure)

			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "oidc.Authenticator.Verify()"))
		}
		if claims.Email == "" {
			m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeFailure)

			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewBadRequestMessage("ID token has no email claim"))
		}

		// Cache the provider token so Logout() can skip the provider's
		// confirmation screen.
		if err := m.cookies.writeLogoutHint(w, rawIDToken); err != nil {
			m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeFailure)

			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "writeLogoutHint()"))
		}

		// The email is matched exactly as claimed; two concurrent first
		// logins for the same new address can race into duplicate member
		// records since Ghost's schema is not guaranteed to constrain it.
		member, provisioned, err := m.resolveMember(ctx, claims.Email, claims.Name)
		if err != nil {
			m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeFailure)

			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "MemberSession.resolveMember()"))
		}
		if provisioned {
			m.collector.RecordMemberProvisioned()
			logger.Ctx(ctx).Infof("Provisioned member %s", member.ID)
		}

		token, err := m.issueMagicToken(ctx, claims.Email)
		if err != nil {
			m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeFailure)

			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "MemberSession.issueMagicToken()"))
		}

		m.collector.RecordLogin(metrics.RealmMember, metrics.OutcomeSuccess)
		http.Redirect(w, r, fmt.Sprintf("%s/members/?token=%s&action=signin", m.ghostURL, url.QueryEscape(token)), http.StatusFound)

		return nil
	})
}

// Logout clears the local cookies and propagates the logout to the identity
// provider when it advertises an end-session endpoint.
func (m *MemberSession) Logout() http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "MemberSession.Logout()")
		defer span.End()

		hint, _ := m.cookies.readLogoutHint(r)
		m.cookies.deleteLogoutHint(w)
		m.cookies.clearMemberSession(w)

		if endSessionURL, ok := m.oidc.EndSessionURL(hint, m.ghostURL); ok {
			http.Redirect(w, r, endSessionURL, http.StatusFound)

			return nil
		}

		http.Redirect(w, r, m.ghostURL, http.StatusFound)

		return nil
	})
}

// resolveMember looks the claimed email up through the Admin API and
// auto-provisions a member when none exists. A management-API failure is
// terminal and is never treated as "no match", to avoid duplicate records on
// transient faults.
func (m *MemberSession) resolveMember(ctx context.Context, email, displayName string) (member *ghostadmin.Member, provisioned bool, err error) {
	ctx, span := otel.Tracer(name).Start(ctx, "MemberSession.resolveMember()")
	defer span.End()

	members, err := m.members.FindMembersByEmail(ctx, email)
	if err != nil {
		return nil, false, errors.Wrap(err, "MemberManager.FindMembersByEmail()")
	}

	if len(members) > 0 {
		return &members[0], false, nil
	}

	if displayName == "" {
		displayName = defaultMemberName
	}
	created, err := m.members.CreateMember(ctx, ghostadmin.NewMember{Email: email, Name: displayName})
	if err != nil {
		return nil, false, errors.Wrap(err, "MemberManager.CreateMember()")
	}

	return created, true, nil
}

// issueMagicToken inserts a fresh one-time login token for Ghost's own
// redemption logic to consume. The intent is always signin; Ghost upgrades it
// on redemption when the member is new.
func (m *MemberSession) issueMagicToken(ctx context.Context, email string) (string, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "MemberSession.issueMagicToken()")
	defer span.End()

	now := time.Now().UTC()
	row := &ghostdb.MagicTokenRow{
		ID:    ghostsig.ObjectID(),
		Token: ghostsig.Token(),
		Data: ghostdb.MagicTokenData{
			Email: email,
			Type:  "signin",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.storage.InsertMagicToken(ctx, row); err != nil {
		return "", errors.Wrap(err, "MagicTokenStorage.InsertMagicToken()")
	}

	return row.Token, nil
}
