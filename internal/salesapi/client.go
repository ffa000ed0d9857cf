// Package salesapi is the HTTP adapter for the remote sales prediction
// service.
package salesapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tinytelemetry/salesdash/internal/forecast"
	"github.com/tinytelemetry/salesdash/internal/model"
)

// Endpoint paths relative to the base URL.
const (
	PathRoot     = "/"
	PathPredict  = "sales/stores/items/"
	PathForecast = "sales/national/"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Client issues stateless GET requests against the prediction service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for baseURL. A non-positive timeout falls back
// to model.DefaultRequestTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("salesapi: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("salesapi: base url %q must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("salesapi: base url %q has no host", baseURL)
	}
	if timeout <= 0 {
		timeout = model.DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint resolves path against the base URL without doubling slashes.
func (c *Client) endpoint(path string, params map[string]string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch performs GET base+path?params and returns the parsed JSON body.
// Every failure is a *FetchError.
func (c *Client) Fetch(ctx context.Context, path string, params map[string]string) (gjson.Result, error) {
	target := c.endpoint(path, params)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return gjson.Result{}, &FetchError{Kind: KindNetwork, Path: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "path", path, "elapsed", time.Since(start), "error", err)
		return gjson.Result{}, &FetchError{Kind: KindNetwork, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.logger.Warn("reading response failed", "path", path, "status", resp.StatusCode, "error", err)
		return gjson.Result{}, &FetchError{Kind: KindNetwork, Path: path, Err: err}
	}

	c.logger.Debug("request done", "path", path, "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("unexpected status", "path", path, "status", resp.StatusCode)
		return gjson.Result{}, &FetchError{Kind: KindHTTP, Path: path, StatusCode: resp.StatusCode}
	}
	if !gjson.ValidBytes(body) {
		c.logger.Warn("malformed json", "path", path, "bytes", len(body))
		return gjson.Result{}, &FetchError{Kind: KindParse, Path: path, Err: errors.New("malformed json body")}
	}
	return gjson.ParseBytes(body), nil
}

// Info fetches the service description from the API root. Absent fields
// fall back to placeholders.
func (c *Client) Info(ctx context.Context) (model.ServiceInfo, error) {
	doc, err := c.Fetch(ctx, PathRoot, nil)
	if err != nil {
		return model.ServiceInfo{}, err
	}
	if !doc.IsObject() {
		return model.ServiceInfo{}, &FetchError{Kind: KindParse, Path: PathRoot, Err: fmt.Errorf("expected object, got %s", doc.Type)}
	}

	info := model.ServiceInfo{
		Description: model.MissingDescription,
		RepoLink:    model.MissingRepoLink,
	}
	if v := doc.Get("Description"); v.Exists() {
		info.Description = v.String()
	}
	if v := doc.Get("github_repo_link"); v.Exists() {
		info.RepoLink = v.String()
	}
	return info, nil
}

// Predict fetches a single item/store/date prediction. The response must be
// an object; a missing "prediction" key yields a nil Volume.
func (c *Client) Predict(ctx context.Context, req model.PredictionRequest) (model.PredictionResult, error) {
	doc, err := c.Fetch(ctx, PathPredict, req.Params())
	if err != nil {
		return model.PredictionResult{}, err
	}
	if !doc.IsObject() {
		return model.PredictionResult{}, &FetchError{Kind: KindParse, Path: PathPredict, Err: fmt.Errorf("expected object, got %s", doc.Type)}
	}

	v := doc.Get("prediction")
	switch v.Type {
	case gjson.Number:
		return model.PredictionResult{Volume: model.Float(v.Num)}, nil
	case gjson.Null:
		// Absent or explicit null.
		return model.PredictionResult{}, nil
	default:
		return model.PredictionResult{}, &FetchError{Kind: KindParse, Path: PathPredict, Err: fmt.Errorf("prediction is %s, not a number", v.Type)}
	}
}

// Forecast fetches the national forecast and reshapes it into a series.
func (c *Client) Forecast(ctx context.Context, req model.ForecastRequest) (model.ForecastSeries, error) {
	doc, err := c.Fetch(ctx, PathForecast, req.Params())
	if err != nil {
		return nil, err
	}

	series, err := forecast.Reshape(doc)
	if err != nil {
		var shapeErr *forecast.ShapeError
		if errors.As(err, &shapeErr) && shapeErr.MissingField() {
			return nil, &FetchError{Kind: KindMissingField, Path: PathForecast, Field: shapeErr.Field, Err: err}
		}
		return nil, &FetchError{Kind: KindParse, Path: PathForecast, Err: err}
	}
	return series, nil
}

var _ model.SalesAPI = (*Client)(nil)
