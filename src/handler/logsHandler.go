package handler

import (
	"context"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/model"
)

type logLister interface {
	ListAll(ctx context.Context) ([]model.PredictionLog, error)
}

// LogsHandler returns the GET /logs handler: the full prediction history,
// newest first.
func LogsHandler(repo logLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := repo.ListAll(r.Context())
		if err != nil {
			logger.WithError(err).Error("failed to fetch prediction logs")
			writeFault(w, err)
			return
		}

		if entries == nil {
			entries = []model.PredictionLog{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
