package handler

import "net/http"

// ServiceInfo is the GET / liveness payload.
type ServiceInfo struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	ModelFeatures int    `json:"model_features"`
}

// RootHandler reports service identity and the loaded model's feature
// count.
func RootHandler(featureCount int) http.HandlerFunc {
	info := ServiceInfo{
		Message:       "Fraud Detection API",
		Status:        "operational",
		ModelFeatures: featureCount,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}
