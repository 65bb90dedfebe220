// Package metrics exposes controller activity as Prometheus series.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/atomicstack/nestedmenu/internal/logging"
)

const shutdownTimeout = 2 * time.Second

// Recorder receives controller events. A nil Recorder records nothing; use
// Nop when a value is required.
type Recorder interface {
	Intent(kind string)
	Ignored(reason string)
	Dismissal()
	OutsideListener(active bool)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Intent(string)        {}
func (Nop) Ignored(string)       {}
func (Nop) Dismissal()           {}
func (Nop) OutsideListener(bool) {}

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a CounterVec so callers only pass label values.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry registers a counter vector on reg.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)
	reg.MustRegister(vec)
	return &Counter{Name: name, Help: help, vec: vec}
}

// Prometheus is the Recorder backed by client_golang.
type Prometheus struct {
	intents    *Counter
	ignored    *Counter
	dismissals *Counter
	listener   prometheus.Gauge
}

// NewPrometheus registers the nestedmenu series on reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	listener := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "nestedmenu_outside_listener_active",
		Help: "1 while the outside-click listener is attached.",
	})
	reg.MustRegister(listener)
	return &Prometheus{
		intents:    NewCounterWithRegistry(reg, "nestedmenu_intents_total", "Intents dispatched to the menu state machine.", "intent"),
		ignored:    NewCounterWithRegistry(reg, "nestedmenu_ignored_total", "Requests the controller ignored.", "reason"),
		dismissals: NewCounterWithRegistry(reg, "nestedmenu_dismissals_total", "Menus closed by a click outside."),
		listener:   listener,
	}
}

func (p *Prometheus) Intent(kind string)    { p.intents.Increment(kind) }
func (p *Prometheus) Ignored(reason string) { p.ignored.Increment(reason) }
func (p *Prometheus) Dismissal()            { p.dismissals.Increment() }

func (p *Prometheus) OutsideListener(active bool) {
	if active {
		p.listener.Set(1)
		return
	}
	p.listener.Set(0)
}

// Handler serves the series gathered by reg.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, reg prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	logging.Trace("metrics.listen", map[string]interface{}{"addr": listener.Addr().String()})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error(fmt.Errorf("metrics shutdown: %w", err))
		}
		return nil
	})
	return g.Wait()
}
