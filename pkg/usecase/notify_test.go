package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/embiscope/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/embiscope/pkg/usecase"
	"github.com/slack-go/slack"
)

func newSlackMock() *mocks.SlackClientMock {
	return &mocks.SlackClientMock{
		AuthTestContextFunc: func(ctx context.Context) (*slack.AuthTestResponse, error) {
			return &slack.AuthTestResponse{Team: "test", User: "embiscope"}, nil
		},
		PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return channelID, "1700000000.000100", nil
		},
	}
}

func TestNotifyPostSnapshot(t *testing.T) {
	ctx := testContext()

	t.Run("Latest date by default", func(t *testing.T) {
		slackClient := newSlackMock()
		uc := usecase.NewNotify(newEMBI(t), slackClient, "C123", "https://embi.example.com")

		ts, err := uc.PostSnapshot(ctx, "")
		gt.NoError(t, err).Required()
		gt.Equal(t, ts, "1700000000.000100")

		calls := slackClient.PostMessageCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].ChannelID, "C123")
		gt.A(t, calls[0].Options).Longer(1)
	})

	t.Run("Specific date", func(t *testing.T) {
		slackClient := newSlackMock()
		uc := usecase.NewNotify(newEMBI(t), slackClient, "C123", "")

		_, err := uc.PostSnapshot(ctx, "2023-01-01")
		gt.NoError(t, err)
		gt.A(t, slackClient.PostMessageCalls()).Length(1)
	})

	t.Run("Unknown date is not posted", func(t *testing.T) {
		slackClient := newSlackMock()
		uc := usecase.NewNotify(newEMBI(t), slackClient, "C123", "")

		_, err := uc.PostSnapshot(ctx, "2020-01-01")
		gt.Error(t, err)
		gt.A(t, slackClient.PostMessageCalls()).Length(0)
	})

	t.Run("Channel is required", func(t *testing.T) {
		slackClient := newSlackMock()
		uc := usecase.NewNotify(newEMBI(t), slackClient, "", "")

		_, err := uc.PostSnapshot(ctx, "")
		gt.Error(t, err)
		gt.A(t, slackClient.AuthTestContextCalls()).Length(0)
	})

	t.Run("Authentication failure", func(t *testing.T) {
		slackClient := newSlackMock()
		slackClient.AuthTestContextFunc = func(ctx context.Context) (*slack.AuthTestResponse, error) {
			return nil, errors.New("invalid_auth")
		}
		uc := usecase.NewNotify(newEMBI(t), slackClient, "C123", "")

		_, err := uc.PostSnapshot(ctx, "")
		gt.Error(t, err)
		gt.A(t, slackClient.PostMessageCalls()).Length(0)
	})

	t.Run("Post failure", func(t *testing.T) {
		slackClient := newSlackMock()
		slackClient.PostMessageFunc = func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
			return "", "", errors.New("channel_not_found")
		}
		uc := usecase.NewNotify(newEMBI(t), slackClient, "C123", "")

		_, err := uc.PostSnapshot(ctx, "")
		gt.Error(t, err)
	})
}
