package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PredictionsTotal counts completed scorings, labelled by verdict.
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudapi_predictions_total",
		Help: "Completed predictions by verdict (fraud / legit).",
	}, []string{"verdict"})

	// PredictionFailuresTotal counts scoring requests that failed,
	// labelled by fault kind.
	PredictionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fraudapi_prediction_failures_total",
		Help: "Failed prediction requests by fault kind.",
	}, []string{"kind"})

	// LogAppendFailuresTotal counts audit-log writes that failed while
	// the scoring response still succeeded.
	LogAppendFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fraudapi_log_append_failures_total",
		Help: "Prediction log writes that failed after a successful scoring.",
	})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
