package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/domain/types"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	slacksvc "github.com/secmon-lab/embiscope/pkg/service/slack"
	"github.com/slack-go/slack"
)

// MessageNoData is the ephemeral reply for dates without data
const MessageNoData = "No hay datos EMBI para esa fecha"

// Snapshots provides classified EMBI snapshots
type Snapshots interface {
	Snapshot(ctx context.Context, date types.Date) (*mapview.Snapshot, error)
	LatestSnapshot(ctx context.Context) (*mapview.Snapshot, error)
}

// Handler handles the EMBI slash command. The command text is an optional
// date; an empty text means the latest date.
type Handler struct {
	signingSecret string
	dashboardURL  string
	snapshots     Snapshots
}

// NewHandler creates a new Slack handler
func NewHandler(signingSecret, dashboardURL string, snapshots Snapshots) *Handler {
	return &Handler{
		signingSecret: signingSecret,
		dashboardURL:  dashboardURL,
		snapshots:     snapshots,
	}
}

// HandleCommand handles a slash command request
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.signingSecret == "" {
		h.writeError(w, ctx, goerr.New("Slack not configured"), http.StatusServiceUnavailable)
		return
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		ctxlog.From(ctx).Warn("Invalid Slack request headers", "error", err)
		h.writeError(w, ctx, goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}
	r.Body = io.NopCloser(io.TeeReader(r.Body, &verifier))

	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		ctxlog.From(ctx).Error("Failed to parse slash command", "error", err)
		h.writeError(w, ctx, goerr.Wrap(err, "failed to parse command"), http.StatusBadRequest)
		return
	}
	if err := verifier.Ensure(); err != nil {
		ctxlog.From(ctx).Warn("Invalid Slack signature", "error", err)
		h.writeError(w, ctx, goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}

	ctxlog.From(ctx).Info("Slash command received",
		"command", cmd.Command,
		"text", cmd.Text,
		"user", cmd.UserID,
		"channel", cmd.ChannelID,
	)

	h.writeMessage(w, ctx, h.reply(ctx, strings.TrimSpace(cmd.Text)))
}

func (h *Handler) reply(ctx context.Context, text string) *slack.Msg {
	var (
		snap *mapview.Snapshot
		err  error
	)
	if text == "" {
		snap, err = h.snapshots.LatestSnapshot(ctx)
	} else {
		snap, err = h.snapshots.Snapshot(ctx, types.Date(text))
	}

	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidDate) {
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: MessageNoData}
	}
	if err != nil {
		ctxlog.From(ctx).Error("Failed to build snapshot", "error", err, "text", text)
		return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: "Error al cargar los datos EMBI"}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slacksvc.SnapshotText(snap),
		Blocks:       slack.Blocks{BlockSet: slacksvc.BuildSnapshotBlocks(snap, h.dashboardURL)},
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, ctx context.Context, msg *slack.Msg) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(msg); err != nil {
		h.writeError(w, ctx, goerr.Wrap(err, "failed to encode reply"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(ctx).Error("Failed to write slash command reply", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to write error response", "error", err)
	}
}
