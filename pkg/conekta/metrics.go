package conekta

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Static errors for err113 compliance.
var ErrCollectorType = errors.New("collector already registered with unexpected type")

// Metrics records Prometheus metrics for every round trip made by a
// client it is installed on.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the client metrics and registers them with
// registerer (the default registerer when nil). Registering twice with the
// same registerer reuses the existing collectors.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests, err := registerCounterVec(registerer, prometheus.CounterOpts{
		Name: "conekta_client_requests_total",
		Help: "Total number of Conekta API requests by method and status",
	}, []string{"method", "status"})
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogramVec(registerer, prometheus.HistogramOpts{
		Name:    "conekta_client_request_duration_seconds",
		Help:    "Duration of Conekta API requests in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
	}, []string{"method"})
	if err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

// Install adds the metrics interceptors to chain.
func (m *Metrics) Install(chain *InterceptorChain) {
	chain.AddRequestInterceptor(TimingInterceptor())
	chain.AddResponseInterceptor(m.observe)
}

func (m *Metrics) observe(_ context.Context, req *Request, resp *Response, err error) error {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	m.requests.WithLabelValues(req.Method, status).Inc()

	if elapsed, ok := Elapsed(req); ok {
		m.duration.WithLabelValues(req.Method).Observe(elapsed.Seconds())
	}

	return nil
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) (*prometheus.CounterVec, error) {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrCollectorType, opts.Name)
			}

			return existing, nil
		}

		return nil, fmt.Errorf("registering counter %q: %w", opts.Name, err)
	}

	return collector, nil
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) (*prometheus.HistogramVec, error) {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrCollectorType, opts.Name)
			}

			return existing, nil
		}

		return nil, fmt.Errorf("registering histogram %q: %w", opts.Name, err)
	}

	return collector, nil
}
