// Package api holds the HTTP gateways to the administration backend. Each
// gateway method maps one operation onto exactly one request and hands the
// decoded envelope back unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"admin.app/billing/apperr"
)

const (
	RequestIDHeader = "X-Request-ID"

	defaultTimeout  = 30 * time.Second
	maxBodyBytes    = 8 << 20
	maxErrBodyBytes = 64 << 10
)

// Config configures the backend client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Entry
	Registerer prometheus.Registerer
}

// Client performs JSON requests against the backend base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
	metrics    *metrics
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        log.WithField("component", "api"),
		metrics:    newMetrics(cfg.Registerer),
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperr.New(errs.Internal, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return apperr.New(errs.Internal, "failed to build request")
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(path, outcomeTransport, time.Since(start))
		log.WithError(err).Error("request failed")
		return transportError(ctx, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "duration": time.Since(start)})

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.observe(path, outcomeStatus, time.Since(start))
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		log.Error("request rejected")
		return statusError(resp.StatusCode, raw)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.observe(path, outcomeTransport, time.Since(start))
		log.WithError(err).Error("failed to read response")
		return apperr.New(errs.Unavailable, "failed to read response body")
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			c.metrics.observe(path, outcomeDecode, time.Since(start))
			log.WithError(err).Error("failed to decode response")
			return apperr.New(errs.Internal, fmt.Sprintf("failed to decode %s response", path))
		}
	}

	c.metrics.observe(path, outcomeOK, time.Since(start))
	log.Debug("request completed")
	return nil
}

func idQuery(id int) url.Values {
	q := url.Values{}
	q.Set("Id", fmt.Sprint(id))
	return q
}

func pageQuery(pageNumber, pageSize int) url.Values {
	q := url.Values{}
	q.Set("PageNumber", fmt.Sprint(pageNumber))
	q.Set("PageSize", fmt.Sprint(pageSize))
	return q
}
