package ghostbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/ghostbridge/ghostbridge/ghostadmin"
	"github.com/ghostbridge/ghostbridge/ghostdb"
	"github.com/ghostbridge/ghostbridge/mock/mock_ghostbridge"
	"github.com/ghostbridge/ghostbridge/mock/mock_oidc"
	"github.com/go-playground/errors/v5"
	"github.com/google/go-cmp/cmp"
	gomock "go.uber.org/mock/gomock"
)

const testGhostURL = "https://blog.example.com"

// fillClaims unmarshals the given ID token payload into the claims pointer a
// handler passed to Verify.
func fillClaims(payload string) func(context.Context, http.ResponseWriter, *http.Request, any) (string, error) {
	return func(_ context.Context, _ http.ResponseWriter, _ *http.Request, claims any) (string, error) {
		if err := json.Unmarshal([]byte(payload), claims); err != nil {
			panic(err)
		}

		return "rawIDToken", nil
	}
}

func TestMemberSessionLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		target          string
		prepare         func(w http.ResponseWriter, oidcAuth *mock_oidc.MockAuthenticator)
		wantStatusCode  int
		wantRedirectURL string
	}{
		{
			name:   "fails to get the auth code url",
			target: "/members/sso/login",
			prepare: func(w http.ResponseWriter, oidcAuth *mock_oidc.MockAuthenticator) {
				oidcAuth.EXPECT().AuthCodeURL(w, false).Return("", errors.New("failed to get auth code url")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:   "success initiating login",
			target: "/members/sso/login",
			prepare: func(w http.ResponseWriter, oidcAuth *mock_oidc.MockAuthenticator) {
				oidcAuth.EXPECT().AuthCodeURL(w, false).Return("https://idp.example.com/auth", nil).Times(1)
			},
			wantStatusCode:  http.StatusFound,
			wantRedirectURL: "https://idp.example.com/auth",
		},
		{
			name:   "signup action targets the registration form",
			target: "/members/sso/login?action=signup",
			prepare: func(w http.ResponseWriter, oidcAuth *mock_oidc.MockAuthenticator) {
				oidcAuth.EXPECT().AuthCodeURL(w, true).Return("https://idp.example.com/registrations", nil).Times(1)
			},
			wantStatusCode:  http.StatusFound,
			wantRedirectURL: "https://idp.example.com/registrations",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			oidcAuth := mock_oidc.NewMockAuthenticator(ctrl)
			m := &MemberSession{oidc: oidcAuth, ghostURL: testGhostURL}

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()
			if tt.prepare != nil {
				tt.prepare(w, oidcAuth)
			}

			m.Login().ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatusCode {
				t.Errorf("response.Code = %v, want %v", got, tt.wantStatusCode)
			}
			if tt.wantRedirectURL != "" {
				if got := w.Header().Get("Location"); got != tt.wantRedirectURL {
					t.Errorf("response.Location = %v, want %v", got, tt.wantRedirectURL)
				}
			}
		})
	}
}

func TestMemberSessionCallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		prepare        func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, members *mock_ghostbridge.MockMemberManager, storage *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager)
		wantStatusCode int
	}{
		{
			name: "fails to verify callback request",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, _ *mock_ghostbridge.MockMemberManager, _ *mock_ghostbridge.MockMagicTokenStorage, _ *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).Return("", errors.New("failed to verify")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name: "rejects an ID token without an email claim",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, _ *mock_ghostbridge.MockMemberManager, _ *mock_ghostbridge.MockMagicTokenStorage, _ *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"sub":"abc123"}`)).Times(1)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "management api failure is terminal and inserts no token",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, members *mock_ghostbridge.MockMemberManager, _ *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"amy@example.com","name":"Amy Pond","sub":"abc123"}`)).Times(1)
				cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(nil).Times(1)
				members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").Return(nil, errors.New("admin api is down")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name: "fails to persist the logout hint",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, _ *mock_ghostbridge.MockMemberManager, _ *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"amy@example.com","sub":"abc123"}`)).Times(1)
				cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(errors.New("encode failed")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name: "token insert failure surfaces as an error",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, members *mock_ghostbridge.MockMemberManager, storage *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"amy@example.com","sub":"abc123"}`)).Times(1)
				cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(nil).Times(1)
				members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").Return([]ghostadmin.Member{{ID: "m1", Email: "amy@example.com"}}, nil).Times(1)
				storage.EXPECT().InsertMagicToken(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name: "existing member is not provisioned again",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, members *mock_ghostbridge.MockMemberManager, storage *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"amy@example.com","name":"Amy Pond","sub":"abc123"}`)).Times(1)
				cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(nil).Times(1)
				members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").Return([]ghostadmin.Member{{ID: "m1", Email: "amy@example.com"}}, nil).Times(1)
				storage.EXPECT().InsertMagicToken(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
			wantStatusCode: http.StatusFound,
		},
		{
			name: "unknown member is auto-provisioned",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, members *mock_ghostbridge.MockMemberManager, storage *mock_ghostbridge.MockMagicTokenStorage, cookies *MockcookieManager) {
				oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"rory@example.com","name":"Rory Williams","sub":"def456"}`)).Times(1)
				cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(nil).Times(1)
				members.EXPECT().FindMembersByEmail(gomock.Any(), "rory@example.com").Return(nil, nil).Times(1)
				members.EXPECT().CreateMember(gomock.Any(), ghostadmin.NewMember{Email: "rory@example.com", Name: "Rory Williams"}).
					Return(&ghostadmin.Member{ID: "m2", Email: "rory@example.com"}, nil).Times(1)
				storage.EXPECT().InsertMagicToken(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
			wantStatusCode: http.StatusFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			oidcAuth := mock_oidc.NewMockAuthenticator(ctrl)
			members := mock_ghostbridge.NewMockMemberManager(ctrl)
			storage := mock_ghostbridge.NewMockMagicTokenStorage(ctrl)
			cookies := NewMockcookieManager(ctrl)

			m := &MemberSession{
				oidc:     oidcAuth,
				members:  members,
				storage:  storage,
				cookies:  cookies,
				ghostURL: testGhostURL,
			}

			r := httptest.NewRequest(http.MethodGet, "/members/sso/callback?code=abc&state=xyz", http.NoBody)
			w := httptest.NewRecorder()
			if tt.prepare != nil {
				tt.prepare(w, r, oidcAuth, members, storage, cookies)
			}

			m.Callback().ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatusCode {
				t.Errorf("response.Code = %v, want %v", got, tt.wantStatusCode)
			}
		})
	}
}

func TestMemberSessionCallback_redeemsThroughMagicLink(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	oidcAuth := mock_oidc.NewMockAuthenticator(ctrl)
	members := mock_ghostbridge.NewMockMemberManager(ctrl)
	storage := mock_ghostbridge.NewMockMagicTokenStorage(ctrl)
	cookies := NewMockcookieManager(ctrl)

	m := &MemberSession{
		oidc:     oidcAuth,
		members:  members,
		storage:  storage,
		cookies:  cookies,
		ghostURL: testGhostURL,
	}

	r := httptest.NewRequest(http.MethodGet, "/members/sso/callback?code=abc&state=xyz", http.NoBody)
	w := httptest.NewRecorder()

	var inserted *ghostdb.MagicTokenRow
	oidcAuth.EXPECT().Verify(gomock.Any(), w, r, gomock.Any()).DoAndReturn(fillClaims(`{"email":"amy@example.com","name":"Amy Pond","sub":"abc123"}`)).Times(1)
	cookies.EXPECT().writeLogoutHint(w, "rawIDToken").Return(nil).Times(1)
	members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").Return([]ghostadmin.Member{{ID: "m1", Email: "amy@example.com"}}, nil).Times(1)
	storage.EXPECT().InsertMagicToken(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *ghostdb.MagicTokenRow) error {
			inserted = row

			return nil
		},
	).Times(1)

	m.Callback().ServeHTTP(w, r)

	if w.Code != http.StatusFound {
		t.Fatalf("response.Code = %v, want %v", w.Code, http.StatusFound)
	}
	if inserted == nil {
		t.Fatal("InsertMagicToken() was not called")
	}

	if !regexp.MustCompile(`^[0-9a-f]{24}$`).MatchString(inserted.ID) {
		t.Errorf("token row ID = %q, want 24 char hex", inserted.ID)
	}
	if !regexp.MustCompile(`^[A-Za-z0-9_-]{32}$`).MatchString(inserted.Token) {
		t.Errorf("token = %q, want 32 char url-safe token", inserted.Token)
	}
	wantData := ghostdb.MagicTokenData{Email: "amy@example.com", Type: "signin"}
	if diff := cmp.Diff(wantData, inserted.Data); diff != "" {
		t.Errorf("token data mismatch (-want +got):\n%s", diff)
	}

	wantLocation := fmt.Sprintf("%s/members/?token=%s&action=signin", testGhostURL, url.QueryEscape(inserted.Token))
	if got := w.Header().Get("Location"); got != wantLocation {
		t.Errorf("response.Location = %v, want %v", got, wantLocation)
	}
}

func TestMemberSessionLogout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		prepare         func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, cookies *MockcookieManager)
		wantRedirectURL string
	}{
		{
			name: "propagates logout to the provider",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, cookies *MockcookieManager) {
				cookies.EXPECT().readLogoutHint(r).Return("rawIDToken", true).Times(1)
				cookies.EXPECT().deleteLogoutHint(w).Times(1)
				cookies.EXPECT().clearMemberSession(w).Times(1)
				oidcAuth.EXPECT().EndSessionURL("rawIDToken", testGhostURL).Return("https://idp.example.com/logout", true).Times(1)
			},
			wantRedirectURL: "https://idp.example.com/logout",
		},
		{
			name: "falls back to the site when the provider has no end-session endpoint",
			prepare: func(w http.ResponseWriter, r *http.Request, oidcAuth *mock_oidc.MockAuthenticator, cookies *MockcookieManager) {
				cookies.EXPECT().readLogoutHint(r).Return("", false).Times(1)
				cookies.EXPECT().deleteLogoutHint(w).Times(1)
				cookies.EXPECT().clearMemberSession(w).Times(1)
				oidcAuth.EXPECT().EndSessionURL("", testGhostURL).Return("", false).Times(1)
			},
			wantRedirectURL: testGhostURL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			oidcAuth := mock_oidc.NewMockAuthenticator(ctrl)
			cookies := NewMockcookieManager(ctrl)

			m := &MemberSession{oidc: oidcAuth, cookies: cookies, ghostURL: testGhostURL}

			r := httptest.NewRequest(http.MethodGet, "/members/sso/logout", http.NoBody)
			w := httptest.NewRecorder()
			if tt.prepare != nil {
				tt.prepare(w, r, oidcAuth, cookies)
			}

			m.Logout().ServeHTTP(w, r)

			if got := w.Code; got != http.StatusFound {
				t.Errorf("response.Code = %v, want %v", got, http.StatusFound)
			}
			if got := w.Header().Get("Location"); got != tt.wantRedirectURL {
				t.Errorf("response.Location = %v, want %v", got, tt.wantRedirectURL)
			}
		})
	}
}

func TestMemberSession_resolveMember(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		email           string
		displayName     string
		prepare         func(members *mock_ghostbridge.MockMemberManager)
		wantMember      *ghostadmin.Member
		wantProvisioned bool
		wantErr         bool
	}{
		{
			name:  "find failure is terminal",
			email: "amy@example.com",
			prepare: func(members *mock_ghostbridge.MockMemberManager) {
				members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").Return(nil, errors.New("boom")).Times(1)
			},
			wantErr: true,
		},
		{
			name:        "existing member wins over provisioning",
			email:       "amy@example.com",
			displayName: "Amy Pond",
			prepare: func(members *mock_ghostbridge.MockMemberManager) {
				members.EXPECT().FindMembersByEmail(gomock.Any(), "amy@example.com").
					Return([]ghostadmin.Member{{ID: "m1", Email: "amy@example.com", Name: "Amy"}}, nil).Times(1)
			},
			wantMember: &ghostadmin.Member{ID: "m1", Email: "amy@example.com", Name: "Amy"},
		},
		{
			name:        "provisions with the claimed name",
			email:       "rory@example.com",
			displayName: "Rory Williams",
			prepare: func(members *mock_ghostbridge.MockMemberManager) {
				members.EXPECT().FindMembersByEmail(gomock.Any(), "rory@example.com").Return(nil, nil).Times(1)
				members.EXPECT().CreateMember(gomock.Any(), ghostadmin.NewMember{Email: "rory@example.com", Name: "Rory Williams"}).
					Return(&ghostadmin.Member{ID: "m2", Email: "rory@example.com", Name: "Rory Williams"}, nil).Times(1)
			},
			wantMember:      &ghostadmin.Member{ID: "m2", Email: "rory@example.com", Name: "Rory Williams"},
			wantProvisioned: true,
		},
		{
			name:  "provisions with the fallback name when the claim is empty",
			email: "river@example.com",
			prepare: func(members *mock_ghostbridge.MockMemberManager) {
				members.EXPECT().FindMembersByEmail(gomock.Any(), "river@example.com").Return([]ghostadmin.Member{}, nil).Times(1)
				members.EXPECT().CreateMember(gomock.Any(), ghostadmin.NewMember{Email: "river@example.com", Name: "Member"}).
					Return(&ghostadmin.Member{ID: "m3", Email: "river@example.com", Name: "Member"}, nil).Times(1)
			},
			wantMember:      &ghostadmin.Member{ID: "m3", Email: "river@example.com", Name: "Member"},
			wantProvisioned: true,
		},
		{
			name:  "create failure",
			email: "river@example.com",
			prepare: func(members *mock_ghostbridge.MockMemberManager) {
				members.EXPECT().FindMembersByEmail(gomock.Any(), "river@example.com").Return(nil, nil).Times(1)
				members.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			members := mock_ghostbridge.NewMockMemberManager(ctrl)
			if tt.prepare != nil {
				tt.prepare(members)
			}

			m := &MemberSession{members: members}

			member, provisioned, err := m.resolveMember(context.Background(), tt.email, tt.displayName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveMember() error = %v, wantErr %v", err, tt.wantErr)
			}
			if provisioned != tt.wantProvisioned {
				t.Errorf("resolveMember() provisioned = %v, want %v", provisioned, tt.wantProvisioned)
			}
			if diff := cmp.Diff(tt.wantMember, member); diff != "" {
				t.Errorf("resolveMember() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
