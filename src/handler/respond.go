package handler

import (
	"encoding/json"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/faults"
)

// ErrorReport is the structured error payload returned to callers.
type ErrorReport struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

// writeFault maps a fault kind to an HTTP status: client-caused input
// faults are 400, everything else 500. The reference behavior of always
// returning 200 was an acknowledged defect, not part of the contract.
func writeFault(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if faults.ClientCaused(err) {
		status = http.StatusBadRequest
	}

	kind := string(faults.KindOf(err))
	if kind == "" {
		kind = "internal"
	}

	writeJSON(w, status, ErrorReport{
		Error:   kind,
		Details: err.Error(),
	})
}
