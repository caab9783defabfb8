package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/metrics"
	"github.com/mauv0809/pickle-club/internal/notifier"
	"github.com/mauv0809/pickle-club/internal/stats"
	"github.com/slack-go/slack"
)

const (
	maxRankingRows = 10
	maxAbsentNames = 20
	postTimeout    = 10 * time.Second
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(ctx context.Context, message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendAttendanceStatus(ctx context.Context, status stats.AttendanceStatus, absent []stats.MemberRow, dryRun bool) error {
	msg := s.formatAttendanceStatus(status, absent)
	_, _, err := s.sendMessage(ctx, msg, dryRun)
	return err
}

func (s *Notifier) SendRanking(ctx context.Context, list stats.MemberList, dryRun bool) error {
	msg := s.formatRanking(list)
	_, _, err := s.sendMessage(ctx, msg, dryRun)
	return err
}

func plainSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil)
}

// formatAttendanceStatus creates the Slack message for this month's attendance using Block Kit.
func (s *Notifier) formatAttendanceStatus(status stats.AttendanceStatus, absent []stats.MemberRow) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "📋 Monthly attendance 📋", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, plainSection(status.Message))

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Attended*\n%d / %d", status.Attended, status.TotalMembers), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Quota*\n%d", status.Quota), false, false),
		slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Short by*\n%d", status.Shortfall), false, false),
	}
	blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))

	if len(absent) > 0 {
		names := make([]string, 0, min(len(absent), maxAbsentNames))
		for i, row := range absent {
			if i == maxAbsentNames {
				names = append(names, fmt.Sprintf("… and %d more", len(absent)-maxAbsentNames))
				break
			}
			names = append(names, "• "+row.DisplayName)
		}
		blocks = append(blocks, plainSection("Not yet this month:\n"+strings.Join(names, "\n")))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatRanking creates a Slack message to display the rating leaderboard.
func (s *Notifier) formatRanking(list stats.MemberList) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 DUPR Ranking 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if list.Degraded {
		warning := slack.NewTextBlockObject("plain_text", "⚠️ Club data could not be loaded. Showing empty statistics.", true, false)
		blocks = append(blocks, slack.NewContextBlock("", warning))
	}

	if len(list.Rows) == 0 {
		blocks = append(blocks, plainSection("No members yet. Add some members and record results!"))
		return slack.NewBlockMessage(blocks...)
	}

	for i, row := range list.Rows {
		if i == maxRankingRows {
			break
		}
		var medal string
		switch row.Rating.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		rowText := fmt.Sprintf("%s %s %s\n> %s | %s | %s",
			row.Rating.Ordinal,
			medal,
			row.DisplayName,
			row.Highlight,
			row.WinRecord,
			row.LastAttendance,
		)
		blocks = append(blocks, plainSection(rowText))
	}

	return slack.NewBlockMessage(blocks...)
}
