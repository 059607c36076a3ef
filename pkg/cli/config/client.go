package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/secmon-lab/embiscope/pkg/service/embiapi"
	"github.com/urfave/cli/v3"
)

// Client holds the EMBI API client configuration used by the viewer
type Client struct {
	ServerURL string
	Timeout   time.Duration
}

// Flags returns CLI flags for Client configuration
func (c *Client) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Usage:       "Base URL of the EMBI server",
			Category:    "Client",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("EMBISCOPE_SERVER"),
			Destination: &c.ServerURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP request timeout",
			Category:    "Client",
			Value:       embiapi.DefaultTimeout,
			Sources:     cli.EnvVars("EMBISCOPE_TIMEOUT"),
			Destination: &c.Timeout,
		},
	}
}

// Configure creates the API client
func (c *Client) Configure() (*embiapi.Client, error) {
	return embiapi.New(c.ServerURL, embiapi.WithHTTPClient(&http.Client{Timeout: c.Timeout}))
}

// LogValue returns structured log value
func (c Client) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server", c.ServerURL),
		slog.Duration("timeout", c.Timeout),
	)
}
