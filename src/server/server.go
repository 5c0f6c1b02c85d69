package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"fraudapi/src/database"
	"fraudapi/src/decision"
	"fraudapi/src/handler"
	"fraudapi/src/inference"
	"fraudapi/src/metrics"
	"fraudapi/src/repository"
	"fraudapi/src/service"
	"fraudapi/src/stream"
)

// Deps holds everything the router needs, passed explicitly so handlers
// never reach for ambient globals and tests can swap pieces out.
type Deps struct {
	Service      *service.PredictionService
	Logs         *repository.PredictionLogRepository
	Hub          *stream.Hub
	FeatureCount int
}

// NewRouter assembles the HTTP surface.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("\"/healthcheck\" error")
		}
	})

	r.Get("/", handler.RootHandler(d.FeatureCount))
	r.Post("/predict", handler.PredictHandler(d.Service))
	r.Get("/logs", handler.LogsHandler(d.Logs))
	r.Get("/logs/stream", d.Hub.Handler())
	r.Handle("/metrics", metrics.Handler())

	return r
}

// Run wires the full application: database, model artifacts, service,
// router. Startup failures here are fatal; the process must not serve
// traffic with a missing model or store.
func Run() error {
	if err := database.InitMainDB(); err != nil {
		return err
	}

	artifacts, err := inference.LoadArtifacts(inference.GetConfig())
	if err != nil {
		return err
	}

	hub := stream.NewHub()
	logs := repository.NewPredictionLogRepository()
	svc := service.NewPredictionService(
		artifacts.Schema,
		artifacts.Preprocessor,
		artifacts.Model,
		logs,
		hub,
		decision.FraudThreshold,
	)

	router := NewRouter(Deps{
		Service:      svc,
		Logs:         logs,
		Hub:          hub,
		FeatureCount: artifacts.Schema.Len(),
	})

	StartServer(GetConfig().Port, router)
	return nil
}

// StartServer runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func StartServer(port string, h http.Handler) {
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
