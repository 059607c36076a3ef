package slack

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/embiscope/pkg/domain/model"
	"github.com/secmon-lab/embiscope/pkg/service/mapview"
	"github.com/slack-go/slack"
)

// Slack allows at most 10 fields per section block
const maxSectionFields = 10

// TierEmoji returns the emoji shown next to a country of the tier
func TierEmoji(tier mapview.Tier) string {
	switch tier {
	case mapview.TierLow:
		return "🟢"
	case mapview.TierMedium:
		return "🟠"
	case mapview.TierHigh:
		return "🔴"
	default:
		return "⚪"
	}
}

// SnapshotText is the plain text fallback of a snapshot message
func SnapshotText(snap *mapview.Snapshot) string {
	return fmt.Sprintf("EMBI LATAM %s", model.LongDate(snap.Date))
}

// BuildSnapshotBlocks renders a snapshot as Block Kit blocks: a header, the
// thresholds, one field per country and a link to the dashboard when
// dashboardURL is set
func BuildSnapshotBlocks(snap *mapview.Snapshot, dashboardURL string) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "EMBI LATAM (%) · "+model.LongDate(snap.Date), true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, thresholdText(snap), false, false),
			nil, nil,
		),
	}

	var fields []*slack.TextBlockObject
	for _, e := range snap.Entries {
		value := "sin datos"
		if e.Present {
			value = fmt.Sprintf("%.2f%%", e.Value)
		}
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%s *%s*: %s", TierEmoji(e.Tier), e.Info.Name, value), false, false))
	}

	for len(fields) > 0 {
		n := min(len(fields), maxSectionFields)
		blocks = append(blocks, slack.NewSectionBlock(nil, fields[:n], nil))
		fields = fields[n:]
	}

	if dashboardURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("<%s|Abrir el mapa>", dashboardURL), false, false),
		))
	}

	return blocks
}

func thresholdText(snap *mapview.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Bajo < %.2f%%   ", TierEmoji(mapview.TierLow), snap.Low)
	fmt.Fprintf(&b, "%s Medio %.2f%% - %.2f%%   ", TierEmoji(mapview.TierMedium), snap.Low, snap.High)
	fmt.Fprintf(&b, "%s Alto > %.2f%%", TierEmoji(mapview.TierHigh), snap.High)
	return b.String()
}
