package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	slackSvc "github.com/secmon-lab/embiscope/pkg/service/slack"
	"github.com/slack-go/slack"
)

// Notify posts EMBI snapshots to Slack
type Notify struct {
	embi         *EMBI
	slackClient  interfaces.SlackClient
	channelID    string
	dashboardURL string
}

// NewNotify creates a Notify use case
func NewNotify(embi *EMBI, slackClient interfaces.SlackClient, channelID, dashboardURL string) *Notify {
	return &Notify{
		embi:         embi,
		slackClient:  slackClient,
		channelID:    channelID,
		dashboardURL: dashboardURL,
	}
}

// PostSnapshot posts the snapshot of date, or of the latest date when date is
// empty. It returns the timestamp of the posted message.
func (u *Notify) PostSnapshot(ctx context.Context, date types.Date) (string, error) {
	if u.channelID == "" {
		return "", goerr.New("slack channel is not configured")
	}

	logger := ctxlog.From(ctx)

	auth, err := u.slackClient.AuthTestContext(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "slack authentication failed")
	}
	logger.Debug("Slack authenticated", "team", auth.Team, "user", auth.User)

	snap, err := u.snapshot(ctx, date)
	if err != nil {
		return "", err
	}

	_, ts, err := u.slackClient.PostMessage(ctx, u.channelID,
		slack.MsgOptionText(slackSvc.SnapshotText(snap), false),
		slack.MsgOptionBlocks(slackSvc.BuildSnapshotBlocks(snap, u.dashboardURL)...),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to post snapshot",
			goerr.V("channel", u.channelID),
			goerr.V("date", snap.Date))
	}

	logger.Info("Snapshot posted to Slack",
		"channel", u.channelID,
		"date", snap.Date,
		"ts", ts,
	)
	return ts, nil
}

func (u *Notify) snapshot(ctx context.Context, date types.Date) (*mapview.Snapshot, error) {
	if date == "" {
		return u.embi.LatestSnapshot(ctx)
	}
	return u.embi.Snapshot(ctx, date)
}
