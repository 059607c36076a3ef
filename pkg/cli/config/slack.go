package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	slacksvc "github.com/secmon-lab/embiscope/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	SigningSecret string
	OAuthToken    string
	ChannelID     string
	DashboardURL  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret; enables the slash command endpoint",
			Category:    "Slack",
			Sources:     cli.EnvVars("EMBISCOPE_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token with chat:write scope",
			Category:    "Slack",
			Sources:     cli.EnvVars("EMBISCOPE_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel ID to post snapshots to",
			Category:    "Slack",
			Sources:     cli.EnvVars("EMBISCOPE_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
		&cli.StringFlag{
			Name:        "dashboard-url",
			Usage:       "Dashboard URL linked from the message",
			Category:    "Slack",
			Sources:     cli.EnvVars("EMBISCOPE_DASHBOARD_URL"),
			Destination: &s.DashboardURL,
		},
	}
}

// Configure creates a Slack client
func (s *Slack) Configure() (interfaces.SlackClient, error) {
	if !s.IsConfigured() {
		return nil, goerr.New("Slack is not configured. Please provide EMBISCOPE_SLACK_OAUTH_TOKEN and EMBISCOPE_SLACK_CHANNEL")
	}
	return slacksvc.New(s.OAuthToken), nil
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// IsCommandEnabled checks if slash commands can be verified
func (s *Slack) IsCommandEnabled() bool {
	return s.SigningSecret != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
		slog.String("dashboard_url", s.DashboardURL),
	)
}
