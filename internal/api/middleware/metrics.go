package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/pkg/metrics"
)

// statusRecorder обёртка над ResponseWriter, запоминающая код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает HTTP метрики для каждого запроса:
// счётчик запросов и гистограмму длительности с разбивкой по
// методу, шаблону маршрута и коду ответа
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			// Метрики агрегируются по шаблону маршрута,
			// а не по конкретному URL с подставленными ID
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			m.ObserveHTTPRequest(r.Method, path, rec.status, time.Since(start))
		})
	}
}
