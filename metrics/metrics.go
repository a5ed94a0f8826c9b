package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PromMetrics counts masking activity.
//
// Metrics registered:
//   - {namespace}_{subsystem}_passes_total{format, result} - formatting passes; result is written or unchanged
//   - {namespace}_{subsystem}_classifications_total{kind} - fields classified when they appear
//   - {namespace}_{subsystem}_paste_rechecks_total - deferred passes run after a paste
type PromMetrics struct {
	passes          *prometheus.CounterVec
	classifications *prometheus.CounterVec
	pasteRechecks   prometheus.Counter
}

// register returns the collector already registered under the same
// descriptor, so two engines sharing a registry share their counters.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return c, nil
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// New creates a PromMetrics instance and registers it with reg.
// Returns error if reg is nil or if registration fails (except AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	passes, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "passes_total", Help: "Formatting passes by format and result",
	}, []string{"format", "result"}))
	if err != nil {
		return nil, err
	}

	classifications, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "classifications_total", Help: "Fields classified by mask kind",
	}, []string{"kind"}))
	if err != nil {
		return nil, err
	}

	pasteRechecks, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "paste_rechecks_total", Help: "Deferred formatting passes after paste",
	}))
	if err != nil {
		return nil, err
	}

	pm := &PromMetrics{
		passes:          passes,
		classifications: classifications,
		pasteRechecks:   pasteRechecks,
	}

	return pm, nil
}

func (p *PromMetrics) IncPass(format, result string) {
	p.passes.WithLabelValues(format, result).Inc()
}

func (p *PromMetrics) IncClassified(kind string) {
	p.classifications.WithLabelValues(kind).Inc()
}

func (p *PromMetrics) IncPasteRecheck() {
	p.pasteRechecks.Inc()
}
