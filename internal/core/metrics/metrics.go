package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the counters of one seed run on its own registry, so a
// batch job can dump them to a textfile instead of serving /metrics.
type Recorder struct {
	Registry *prometheus.Registry

	created *prometheus.CounterVec
	skipped *prometheus.CounterVec
	users   *prometheus.GaugeVec
}

func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "seed_users_created_total", Help: "Users created by the seeder"},
			[]string{"batch"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "seed_users_skipped_total", Help: "Users skipped because the email already existed"},
			[]string{"batch"},
		),
		users: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Name: "seed_users", Help: "Users in the store after seeding"},
			[]string{"verified"},
		),
	}
	r.Registry.MustRegister(r.created, r.skipped, r.users)
	return r
}

// The methods below are nil-safe so callers can run without metrics.

func (r *Recorder) Created(batch string) {
	if r == nil {
		return
	}
	r.created.WithLabelValues(batch).Inc()
}

func (r *Recorder) Skipped(batch string) {
	if r == nil {
		return
	}
	r.skipped.WithLabelValues(batch).Inc()
}

func (r *Recorder) Totals(verified, unverified int64) {
	if r == nil {
		return
	}
	r.users.WithLabelValues("true").Set(float64(verified))
	r.users.WithLabelValues("false").Set(float64(unverified))
}

// WriteTextfile writes the registry atomically to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.Registry)
}
