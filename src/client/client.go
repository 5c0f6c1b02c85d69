package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"

	"fraudapi/src/handler"
	"fraudapi/src/model"
	"fraudapi/src/service"
)

const (
	defaultBaseURL         = "http://localhost:8000"
	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultRetryMaxBackoff = 4 * time.Second
)

// Client is a thin HTTP client for the fraud scoring API, used by the
// CLI and available to other services.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
		logger.Warnf("No base URL provided, using default: %s", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(defaultRetryAttempts - 1).
		SetRetryWaitTime(defaultRetryBaseDelay).
		SetRetryMaxWaitTime(defaultRetryMaxBackoff).
		AddRetryCondition(isRetryableResp)

	return &Client{http: httpClient}
}

func isRetryableResp(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() >= 500
}

// Predict scores one transaction via POST /predict.
func (c *Client) Predict(ctx context.Context, input model.TransactionInput) (*service.Result, error) {
	var result service.Result
	var report handler.ErrorReport

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&result).
		SetError(&report).
		Post("/predict")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("predict failed (%d): %s: %s",
			resp.StatusCode(), report.Error, report.Details)
	}

	return &result, nil
}

// Logs fetches the full prediction history, newest first.
func (c *Client) Logs(ctx context.Context) ([]model.PredictionLog, error) {
	var entries []model.PredictionLog
	var report handler.ErrorReport

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&entries).
		SetError(&report).
		Get("/logs")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("logs fetch failed (%d): %s: %s",
			resp.StatusCode(), report.Error, report.Details)
	}

	return entries, nil
}

// Info fetches the GET / liveness payload.
func (c *Client) Info(ctx context.Context) (*handler.ServiceInfo, error) {
	var info handler.ServiceInfo

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("info fetch failed (%d)", resp.StatusCode())
	}

	return &info, nil
}
