package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"fraudapi/src/faults"
	"fraudapi/src/model"
	"fraudapi/src/service"
)

type predictor interface {
	Predict(ctx context.Context, input *model.TransactionInput) (*service.Result, error)
}

// PredictHandler returns the POST /predict handler. The body must carry a
// numeric TransactionAmt; all other recognized fields are optional.
func PredictHandler(svc predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.TransactionInput

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				// e.g. {"TransactionAmt": "not-a-number"}
				writeFault(w, faults.Newf(faults.SchemaCoercion, "handler.Predict",
					"field %q: cannot coerce %s to %s", typeErr.Field, typeErr.Value, typeErr.Type))
				return
			}
			writeFault(w, faults.New(faults.Validation, "handler.Predict", err))
			return
		}

		result, err := svc.Predict(r.Context(), &input)
		if err != nil {
			logger.WithError(err).Error("prediction request failed")
			writeFault(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
