package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fraudapi/src/model"
)

type mockLogLister struct {
	entries     []model.PredictionLog
	err         error
	calledCount int
}

func (m *mockLogLister) ListAll(ctx context.Context) ([]model.PredictionLog, error) {
	m.calledCount++
	return m.entries, m.err
}

func TestLogsHandlerSuccess(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock := &mockLogLister{entries: []model.PredictionLog{
		{ID: 2, InputData: `{"TransactionAmt":900}`, Prediction: 1, Probability: 0.82, FraudLikely: true, Timestamp: now},
		{ID: 1, InputData: `{"TransactionAmt":500}`, Prediction: 0, Probability: 0.04, FraudLikely: false, Timestamp: now},
	}}
	h := LogsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if mock.calledCount != 1 {
		t.Fatalf("expected repository called once, got %d", mock.calledCount)
	}

	var body []model.PredictionLog
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(body) != 2 || body[0].ID != 2 || body[1].ID != 1 {
		t.Fatalf("ordering lost in transit: %+v", body)
	}
}

func TestLogsHandlerEmptyHistory(t *testing.T) {
	h := LogsHandler(&mockLogLister{})

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	// empty array, not null
	if got := rr.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestLogsHandlerRepoError(t *testing.T) {
	h := LogsHandler(&mockLogLister{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}

func TestRootHandler(t *testing.T) {
	h := RootHandler(431)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var info ServiceInfo
	if err := json.Unmarshal(rr.Body.Bytes(), &info); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if info.Status != "operational" || info.ModelFeatures != 431 {
		t.Fatalf("unexpected info payload: %+v", info)
	}
}
