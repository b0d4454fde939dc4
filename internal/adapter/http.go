package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/go-resty/resty/v2"
)

// Response is the result of a successful (2xx) API call.
type Response struct {
	StatusCode int
	Header     http.Header
	URL        string
	Body       []byte
}

type httpAPIClient struct {
	client *utils.HTTPClient

	baseURL       string
	isDevelopment bool

	reqLogger RequestLogger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient].
//
// The base URL is taken from cfg.BaseURL as resolved by
// [config.ResolveBaseURL]; a relative base URL (development mode) is
// prefixed with cfg.Origin so the dev proxy serves it. Every request carries
// JSON Content-Type and Accept headers and is bounded by cfg.RequestTimeout
// (10s when unset).
//
// reqLogger receives request and success entries in development mode and
// error entries in every mode. A nil reqLogger disables logging.
//
// Returns an error if the base URL is empty or cannot be made absolute.
func NewHTTPAPIClient(cfg config.APIConfig, reqLogger RequestLogger) (APIClient, error) {
	hostURL, err := absoluteBaseURL(cfg.BaseURL, cfg.Origin)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultAPIRequestTimeout
	}

	if reqLogger == nil {
		reqLogger = NopRequestLogger{}
	}

	a := &httpAPIClient{
		client:        utils.NewHTTPClient(),
		baseURL:       cfg.BaseURL,
		isDevelopment: cfg.IsDevelopment,
		reqLogger:     reqLogger,
	}

	a.client.
		SetBaseURL(hostURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		}).
		OnBeforeRequest(a.beforeRequest).
		OnAfterResponse(a.afterResponse).
		OnSuccess(a.onSuccess).
		OnError(a.onError)

	return a, nil
}

func absoluteBaseURL(baseURL, origin string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", ErrEmptyBaseURL
	}

	if strings.HasPrefix(baseURL, "/") {
		if strings.TrimSpace(origin) == "" {
			return "", ErrNoOrigin
		}
		normalized, err := normalizeBaseURL(origin)
		if err != nil {
			return "", fmt.Errorf("origin: %w", err)
		}
		return normalized + strings.TrimRight(baseURL, "/"), nil
	}

	return normalizeBaseURL(baseURL)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [APIClient].
func (a *httpAPIClient) BaseURL() string {
	return a.baseURL
}

// Request implements [APIClient]. The request is executed exactly once; the
// error returned by the hooks chain is passed to the caller as is.
func (a *httpAPIClient) Request(ctx context.Context, method, path string, body any) (*Response, error) {
	req := a.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		URL:        resp.Request.URL,
		Body:       resp.Body(),
	}, nil
}

// Get implements [APIClient].
func (a *httpAPIClient) Get(ctx context.Context, path string) (*Response, error) {
	return a.Request(ctx, http.MethodGet, path, nil)
}

// Post implements [APIClient].
func (a *httpAPIClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	return a.Request(ctx, http.MethodPost, path, body)
}

// beforeRequest runs before resty resolves the request URL, so r.URL is
// still the path relative to the base URL.
func (a *httpAPIClient) beforeRequest(_ *resty.Client, r *resty.Request) error {
	if a.isDevelopment {
		a.reqLogger.LogRequest(r.Context(), RequestEntry{
			Method:  strings.ToUpper(r.Method),
			URL:     r.URL,
			BaseURL: a.baseURL,
			Body:    r.Body,
		})
	}
	return nil
}

func (a *httpAPIClient) afterResponse(_ *resty.Client, resp *resty.Response) error {
	return mapHTTPError(resp)
}

func (a *httpAPIClient) onSuccess(_ *resty.Client, resp *resty.Response) {
	if !a.isDevelopment {
		return
	}

	a.reqLogger.LogResponse(resp.Request.Context(), ResponseEntry{
		StatusCode: resp.StatusCode(),
		URL:        resp.Request.URL,
		Body:       resp.Body(),
	})
}

func (a *httpAPIClient) onError(r *resty.Request, err error) {
	entry := ErrorEntry{
		Kind:    Classify(err),
		Err:     err,
		URL:     r.URL,
		BaseURL: a.baseURL,
	}

	var respErr *resty.ResponseError
	if errors.As(err, &respErr) {
		entry.Err = respErr.Err
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		entry.StatusCode = httpErr.StatusCode
		entry.Body = httpErr.Body
	}

	a.reqLogger.LogError(r.Context(), entry)
}
