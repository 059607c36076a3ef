package embiapi

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
)

// DefaultTimeout is the per-request timeout of the default HTTP client
const DefaultTimeout = 30 * time.Second

// maximum number of body bytes quoted in errors
const errorBodyLimit = 512

// Client talks to the EMBI REST API
type Client struct {
	base       *url.URL
	httpClient *http.Client
}

var _ interfaces.EMBIClient = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid API base URL", goerr.V("url", baseURL))
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, goerr.New("API base URL must be http or https", goerr.V("url", baseURL))
	}
	if base.Path == "" {
		base.Path = "/"
	}
	base.RawQuery = ""

	c := &Client{
		base:       base,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type datesResponse struct {
	Dates []types.Date `json:"dates"`
	Count int          `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Dates implements interfaces.EMBIClient
func (c *Client) Dates(ctx context.Context) ([]types.Date, error) {
	resp, err := c.get(ctx, "/api/dates")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body datesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(err, "failed to decode dates response")
	}
	return body.Dates, nil
}

// Map implements interfaces.EMBIClient
func (c *Client) Map(ctx context.Context, date types.Date) (string, error) {
	resp, err := c.get(ctx, mapPath(date))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read map response", goerr.V("date", date))
	}
	return string(data), nil
}

// MapURL implements interfaces.EMBIClient
func (c *Client) MapURL(date types.Date) string {
	return c.Resolve(mapPath(date))
}

// Historical implements interfaces.EMBIClient
func (c *Client) Historical(ctx context.Context, country types.Country) (*model.HistoricalSeries, error) {
	resp, err := c.get(ctx, "/api/historical/"+url.PathEscape(country.String()))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, goerr.Wrap(model.ErrCountryNotFound, "historical series not found",
			goerr.V("country", country),
			goerr.V("message", body.Error))
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	series := model.HistoricalSeries{Country: country}
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, goerr.Wrap(err, "failed to decode historical response", goerr.V("country", country))
	}
	if err := series.Validate(); err != nil {
		return nil, goerr.Wrap(err, "malformed historical response", goerr.V("country", country))
	}
	return &series, nil
}

// Download fetches an export. The file name comes from Content-Disposition
// and falls back to the last path segment.
func (c *Client) Download(ctx context.Context, ref string) (*model.Export, error) {
	resp, err := c.get(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, goerr.Wrap(model.ErrNotFound, "export not found", goerr.V("ref", ref))
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read export", goerr.V("ref", ref))
	}

	return &model.Export{
		FileName: fileName(resp, ref),
		Data:     data,
	}, nil
}

// ChartPNG fetches the PNG chart of a country
func (c *Client) ChartPNG(ctx context.Context, country types.Country) ([]byte, error) {
	resp, err := c.get(ctx, "/api/chart/"+url.PathEscape(country.String())+".png")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, goerr.Wrap(model.ErrNotFound, "chart not available", goerr.V("country", country))
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read chart", goerr.V("country", country))
	}
	return data, nil
}

// Resolve returns the absolute URL of a path or reference. Paths are joined
// under the base path so that a server mounted at a prefix such as
// http://host/embi/ receives /embi/api/...
func (c *Client) Resolve(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return strings.TrimSuffix(c.base.String(), "/") + "/" + strings.TrimPrefix(ref, "/")
	}
	if u.IsAbs() {
		return u.String()
	}

	target := c.base.JoinPath(strings.TrimPrefix(u.EscapedPath(), "/"))
	target.RawQuery = u.RawQuery
	target.Fragment = ""
	return target.String()
}

func (c *Client) get(ctx context.Context, ref string) (*http.Response, error) {
	target := c.Resolve(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", target))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request failed", goerr.V("url", target))
	}

	ctxlog.From(ctx).Debug("API request",
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	return goerr.New("unexpected response status",
		goerr.V("url", resp.Request.URL.String()),
		goerr.V("status", resp.StatusCode),
		goerr.V("body", strings.TrimSpace(string(body))))
}

func mapPath(date types.Date) string {
	return "/api/map/" + url.PathEscape(date.String())
}

func fileName(resp *http.Response, ref string) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			return path.Base(params["filename"])
		}
	}

	return path.Base(resp.Request.URL.Path)
}
