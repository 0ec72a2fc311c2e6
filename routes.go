package ghostbridge

import (
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

// Base paths the two realms are mounted under. The member path doubles as
// the logout-hint cookie scope and both appear in the registered OIDC
// redirect URIs.
const (
	MemberBasePath = "/members/sso"
	StaffBasePath  = "/staff/sso"
)

// NewRouter wires both realms plus the operational endpoints. limiter and
// reg may be nil to disable rate limiting and metrics exposition.
func NewRouter(member MemberHandlers, staff StaffHandlers, db Pinger, limiter *RateLimiter, reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	login := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}

		return limiter.Limit(h)
	}

	r.Route(MemberBasePath, func(r chi.Router) {
		r.Method(http.MethodGet, "/login", login(member.Login()))
		r.Get("/callback", member.Callback())
		r.Get("/logout", member.Logout())
	})

	r.Route(StaffBasePath, func(r chi.Router) {
		r.Method(http.MethodGet, "/login", login(staff.Login()))
		r.Get("/callback", staff.Callback())
	})

	r.Get("/healthz", Healthz(db))
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return r
}

// Healthz reports whether the shared Ghost database is reachable.
func Healthz(db Pinger) http.HandlerFunc {
	return handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Healthz()")
		defer span.End()

		if err := db.Ping(ctx); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "Pinger.Ping()"))
		}

		return httpio.NewEncoder(w).Ok(map[string]string{"status": "ok"})
	})
}
