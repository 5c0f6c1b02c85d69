package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fraudapi/src/faults"
	"fraudapi/src/model"
	"fraudapi/src/service"
)

type mockPredictor struct {
	result      *service.Result
	err         error
	calledCount int
	lastInput   *model.TransactionInput
}

func (m *mockPredictor) Predict(ctx context.Context, input *model.TransactionInput) (*service.Result, error) {
	m.calledCount++
	m.lastInput = input
	return m.result, m.err
}

func uintPtr(v uint) *uint { return &v }

func TestPredictHandlerSuccess(t *testing.T) {
	mock := &mockPredictor{result: &service.Result{
		Prediction:  1,
		Probability: 0.6543,
		FraudLikely: true,
		Threshold:   0.3,
		LogID:       uintPtr(7),
		Message:     "Prediction completed successfully",
	}}
	h := PredictHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/predict",
		strings.NewReader(`{"TransactionAmt": 500.0, "card4": "visa"}`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mock.calledCount != 1 {
		t.Fatalf("expected service called once, got %d", mock.calledCount)
	}
	if mock.lastInput.TransactionAmt == nil || *mock.lastInput.TransactionAmt != 500.0 {
		t.Fatalf("decoded input lost TransactionAmt: %+v", mock.lastInput)
	}

	var body service.Result
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Prediction != 1 || body.Threshold != 0.3 || body.LogID == nil || *body.LogID != 7 {
		t.Fatalf("unexpected response body: %+v", body)
	}
}

func TestPredictHandlerNonNumericAmount(t *testing.T) {
	mock := &mockPredictor{}
	h := PredictHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/predict",
		strings.NewReader(`{"TransactionAmt": "not-a-number"}`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if mock.calledCount != 0 {
		t.Fatal("service must not run on a coercion failure")
	}

	var report ErrorReport
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("error body is not valid JSON: %v", err)
	}
	if report.Error != string(faults.SchemaCoercion) {
		t.Fatalf("expected schema coercion report, got %+v", report)
	}
}

func TestPredictHandlerMalformedBody(t *testing.T) {
	h := PredictHandler(&mockPredictor{})

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestPredictHandlerValidationFault(t *testing.T) {
	mock := &mockPredictor{err: faults.Newf(faults.Validation, "model.TransactionInput",
		"TransactionAmt is required")}
	h := PredictHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"card1": 1234}`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("client-caused fault must map to 400, got %d", rr.Code)
	}
}

func TestPredictHandlerServerFault(t *testing.T) {
	mock := &mockPredictor{err: faults.New(faults.Preprocessing, "inference.Transform",
		errors.New("row missing feature"))}
	h := PredictHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/predict",
		strings.NewReader(`{"TransactionAmt": 500.0}`))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("server-side fault must map to 500, got %d", rr.Code)
	}
}
