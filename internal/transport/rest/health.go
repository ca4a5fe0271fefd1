package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"

	probeTimeout = 3 * time.Second
	databaseName = "database"
)

// pinger is anything the readiness probe can reach: the database pool, redis.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name string
	p    pinger
}

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	clock   clockwork.Clock
	db      pinger
	extra   []component
	gauges  map[string]func() int
	version string
}

func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{clock: clockwork.NewRealClock(), db: db, version: version}
}

// WithClock replaces the clock used for timestamps and latencies.
func (h *HealthHandler) WithClock(c clockwork.Clock) *HealthHandler {
	h.clock = c
	return h
}

// WithComponent adds a dependency to the full health report. Only the
// database decides readiness.
func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.extra = append(h.extra, component{name: name, p: p})
	return h
}

// WithGauge adds a named in-process counter to the full health report.
func (h *HealthHandler) WithGauge(name string, fn func() int) *HealthHandler {
	if h.gauges == nil {
		h.gauges = make(map[string]func() int)
	}
	h.gauges[name] = fn
	return h
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Gauges     map[string]int        `json:"gauges,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.clock.Now()})
}

// Ready fails with 503 while the database is unreachable. Terminals cannot
// do anything useful without it, while a cache outage only slows reads.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	db := h.ping(ctx, h.db)
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: h.clock.Now()})
}

// Health pings every component concurrently and adds the gauges and the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := h.pingAll(ctx)

	overall := statusOK
	for name, c := range components {
		switch {
		case c.Status == statusOK:
		case name == databaseName:
			overall = statusDown
		case overall == statusOK:
			overall = statusDegraded
		}
	}

	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Gauges:     h.readGauges(),
		Timestamp:  h.clock.Now(),
	})
}

func (h *HealthHandler) pingAll(ctx context.Context) map[string]CompStatus {
	all := append([]component{{name: databaseName, p: h.db}}, h.extra...)

	out := make(map[string]CompStatus, len(all))
	var mu sync.Mutex
	var g errgroup.Group
	for _, c := range all {
		g.Go(func() error {
			st := h.ping(ctx, c.p)
			mu.Lock()
			out[c.name] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (h *HealthHandler) ping(ctx context.Context, p pinger) CompStatus {
	start := h.clock.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: h.clock.Since(start).String()}
}

func (h *HealthHandler) readGauges() map[string]int {
	if len(h.gauges) == 0 {
		return nil
	}
	out := make(map[string]int, len(h.gauges))
	for name, fn := range h.gauges {
		out[name] = fn()
	}
	return out
}

func httpStatus(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
