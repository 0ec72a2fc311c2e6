package ghostbridge

import (
	"context"
	"net/http"

	"github.com/ghostbridge/ghostbridge/ghostadmin"
	"github.com/ghostbridge/ghostbridge/ghostdb"
)

// MemberHandlers defines the HTTP surface of the public realm.
type MemberHandlers interface {
	Login() http.HandlerFunc
	Callback() http.HandlerFunc
	Logout() http.HandlerFunc
}

// StaffHandlers defines the HTTP surface of the privileged realm.
type StaffHandlers interface {
	Login() http.HandlerFunc
	Callback() http.HandlerFunc
}

// MemberManager is the slice of the Ghost Admin API the member realm uses to
// reconcile identities. Implementations must surface transport and protocol
// failures as errors, distinct from zero results.
type MemberManager interface {
	FindMembersByEmail(ctx context.Context, email string) ([]ghostadmin.Member, error)
	CreateMember(ctx context.Context, member ghostadmin.NewMember) (*ghostadmin.Member, error)
}

// MagicTokenStorage writes one-time login tokens into Ghost's token table.
type MagicTokenStorage interface {
	InsertMagicToken(ctx context.Context, token *ghostdb.MagicTokenRow) error
}

// StaffSessionStorage is the persistence surface of the staff realm.
type StaffSessionStorage interface {
	ActiveStaffUser(ctx context.Context, email string) (*ghostdb.StaffUser, error)
	SessionSecret(ctx context.Context) (string, error)
	InsertStaffSession(ctx context.Context, session *ghostdb.StaffSessionRow) error
}

// Pinger reports connectivity to the shared store.
type Pinger interface {
	Ping(ctx context.Context) error
}
