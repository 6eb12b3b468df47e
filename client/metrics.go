package client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// newResponseCounter registers the response counter on reg, reusing an
// existing one when several clients share a registry.
func newResponseCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rated",
		Subsystem: "client",
		Name:      "responses_total",
		Help:      "Responses received from the Rated API, by method and status code.",
	}, []string{"method", "code"})

	if err := reg.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}

	return counter
}

func countResponses(counter *prometheus.CounterVec) ResponseHook {
	return func(resp *http.Response) error {
		method := http.MethodGet
		if resp.Request != nil {
			method = resp.Request.Method
		}
		counter.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
		return nil
	}
}
