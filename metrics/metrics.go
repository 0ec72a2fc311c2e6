// Package metrics collects and exposes Prometheus metrics for the bridge.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Label values for the logins counter.
const (
	RealmMember = "member"
	RealmStaff  = "staff"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector counts login outcomes per realm. A nil *Collector is valid and
// records nothing, so handlers can run unmetered in tests.
type Collector struct {
	logins      *prometheus.CounterVec
	provisioned prometheus.Counter
	forged      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ghostbridge_logins_total",
			Help: "Completed login attempts by realm and outcome",
		}, []string{"realm", "outcome"}),
		provisioned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ghostbridge_members_provisioned_total",
			Help: "Members auto-provisioned on first login",
		}),
		forged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ghostbridge_sessions_forged_total",
			Help: "Staff sessions inserted into the Ghost session table",
		}),
	}

	reg.MustRegister(
		c.logins,
		c.provisioned,
		c.forged,
	)

	return c
}

// RecordLogin counts a completed login attempt.
func (c *Collector) RecordLogin(realm, outcome string) {
	if c == nil {
		return
	}
	c.logins.WithLabelValues(realm, outcome).Inc()
}

// RecordMemberProvisioned counts an auto-provisioned member.
func (c *Collector) RecordMemberProvisioned() {
	if c == nil {
		return
	}
	c.provisioned.Inc()
}

// RecordSessionForged counts a forged staff session.
func (c *Collector) RecordSessionForged() {
	if c == nil {
		return
	}
	c.forged.Inc()
}
