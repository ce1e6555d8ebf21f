package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "animals_api"

// EntityCounter lo implementa memory.Store.
type EntityCounter interface {
	Counts() (animalCount, modeCount int)
}

// Metrics agrupa el registry propio del servicio (no usamos el global).
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registra métricas HTTP y, si counter != nil, el tamaño de las colecciones.
func New(counter EntityCounter) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
	)
	if counter != nil {
		reg.MustRegister(newEntityCollector(counter))
	}

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware etiqueta por patrón de ruta (no por path crudo) para no explotar la cardinalidad.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type entityCollector struct {
	counter EntityCounter
	desc    *prometheus.Desc
}

func newEntityCollector(counter EntityCounter) *entityCollector {
	return &entityCollector{
		counter: counter,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "entities"),
			"Entities currently stored per collection.",
			[]string{"collection"}, nil,
		),
	}
}

func (c *entityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *entityCollector) Collect(ch chan<- prometheus.Metric) {
	animalCount, modeCount := c.counter.Counts()
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(animalCount), "animals")
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(modeCount), "locomotion_modes")
}
