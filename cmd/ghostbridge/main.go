package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ghostbridge/ghostbridge"
	"github.com/ghostbridge/ghostbridge/config"
	"github.com/ghostbridge/ghostbridge/ghostadmin"
	"github.com/ghostbridge/ghostbridge/ghostdb"
	"github.com/ghostbridge/ghostbridge/metrics"
	"github.com/ghostbridge/ghostbridge/oidc"
	"github.com/gorilla/securecookie"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := ghostdb.NewStore(pool)

	admin, err := ghostadmin.New(cfg.AdminAPIURL, cfg.AdminAPIKey)
	if err != nil {
		return err
	}

	secureCookie := newSecureCookie(cfg)

	memberOIDC, err := oidc.New(ctx, secureCookie,
		cfg.Member.IssuerURL, cfg.Member.ClientID, cfg.Member.ClientSecret, cfg.Member.CallbackURL,
		oidc.WithLoginURL(ghostbridge.MemberBasePath+"/login"),
	)
	if err != nil {
		return err
	}

	staffOIDC, err := oidc.New(ctx, secureCookie,
		cfg.Staff.IssuerURL, cfg.Staff.ClientID, cfg.Staff.ClientSecret, cfg.Staff.CallbackURL,
		oidc.WithLoginURL(ghostbridge.StaffBasePath+"/login"),
	)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	member := ghostbridge.NewMemberSession(memberOIDC, admin, store, secureCookie, cfg.GhostURL, ghostbridge.MemberBasePath, collector)
	staff := ghostbridge.NewStaffSession(staffOIDC, store, cfg.GhostURL, collector)
	limiter := ghostbridge.NewRateLimiter(rate.Limit(cfg.LoginRate), cfg.LoginBurst)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           ghostbridge.NewRouter(member, staff, store, limiter, reg),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if cfg.SessionSweepInterval > 0 {
		go sweepSessions(ctx, store, cfg.SessionSweepInterval)
	}

	log.Printf("Starting ghostbridge on %s", srv.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newSecureCookie builds the codec for the bridge's own cookies. The
// MaxLength is raised because provider ID tokens ride in the logout-hint
// cookie.
func newSecureCookie(cfg *config.Config) *securecookie.SecureCookie {
	hashKey := []byte(cfg.CookieHashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	var blockKey []byte
	if cfg.CookieBlockKey != "" {
		blockKey = []byte(cfg.CookieBlockKey)
	}

	s := securecookie.New(hashKey, blockKey)
	s.MaxLength(8192)

	return s
}

// sweepSessions periodically deletes expired session rows the bridge forged.
func sweepSessions(ctx context.Context, store *ghostdb.Store, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			deleted, err := store.DeleteExpiredSessions(ctx)
			if err != nil {
				log.Printf("session sweep: %v", err)

				continue
			}
			if deleted > 0 {
				log.Printf("session sweep: removed %d expired sessions", deleted)
			}
		}
	}
}
