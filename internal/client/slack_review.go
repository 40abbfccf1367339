// Slack 초안 검토 메시지 관련 메서드 정의

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kube-rca/incident-comms/internal/model"
)

// 생성된 초안을 검토 채널로 전송
//
// 초안 본문은 새 메시지로, judge 평가 상세는 같은 스레드 답글로 전송한다.
func (c *SlackClient) SendDraftForReview(ctx context.Context, draft model.DraftResponse) error {
	if !c.IsConfigured() {
		return fmt.Errorf("slack bot token or channel ID not configured")
	}

	// 1. 메시지 포맷팅
	overall := ""
	if draft.EvaluationResult != nil {
		overall = draft.EvaluationResult.OverallStatus
	}
	title := fmt.Sprintf("%s [%s] %s", c.getEmojiByStatus(overall), draft.Status, draft.Title)

	fields := []SlackField{
		{Title: "Phase", Value: draft.ExtractedEvidenceSummary.Phase, Short: true},
		{Title: "Checks", Value: overall, Short: true},
		{Title: "Confidence", Value: fmt.Sprintf("%.2f (%s)", draft.ConfidenceScore, draft.ConfidenceLevel), Short: true},
		{Title: "Next Update", Value: draft.NextUpdate, Short: true},
	}
	if len(draft.Warnings) > 0 {
		fields = append(fields, SlackField{Title: "Warnings", Value: "• " + strings.Join(draft.Warnings, "\n• "), Short: false})
	}
	if len(draft.DataSourcesUsed) > 0 {
		fields = append(fields, SlackField{Title: "Sources", Value: strings.Join(draft.DataSourcesUsed, ", "), Short: false})
	}

	msg := SlackMessage{
		Channel: c.channelID,
		Attachments: []SlackAttachment{
			{
				Color:  c.getColorByStatus(overall),
				Title:  title,
				Text:   draft.Message,
				Fields: fields,
				Footer: "run " + draft.RunID,
				Ts:     time.Now().Unix(),
			},
		},
	}

	// 2. Slack API 호출
	resp, err := c.send(ctx, msg)
	if err != nil {
		return err
	}

	// 3. judge 평가 상세는 스레드 답글로 전송
	if draft.EvaluationResult == nil || draft.EvaluationResult.LLMJudgeResult == nil || resp.TS == "" {
		return nil
	}
	return c.SendToThread(ctx, resp.TS, "Quality review", formatJudge(*draft.EvaluationResult.LLMJudgeResult))
}

// judge 결과를 Markdown 목록으로 변환
func formatJudge(judge model.LLMJudgeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Overall %.2f (%s)\n", judge.OverallScore, judge.Confidence)
	for _, d := range judge.Dimensions {
		fmt.Fprintf(&b, "**%s**: %.2f %s\n", d.Dimension, d.Score, d.Status)
		if d.ImprovementSuggestion != nil && *d.ImprovementSuggestion != "" {
			fmt.Fprintf(&b, "> %s\n", *d.ImprovementSuggestion)
		}
	}
	if judge.OverallRationale != "" {
		b.WriteString(judge.OverallRationale)
	}
	return strings.TrimRight(b.String(), "\n")
}

// 평가 상태에 따른 적절한 메시지 색상 반환
func (c *SlackClient) getColorByStatus(status string) string {
	switch status {
	case model.StatusPass:
		return "#36a64f" // green
	case model.StatusWarning:
		return "#ffc107" // yellow
	case model.StatusFail:
		return "#dc3545" // red
	default:
		return "#17a2b8" // blue
	}
}

// 평가 상태에 따른 적절한 메시지 이모지 반환
func (c *SlackClient) getEmojiByStatus(status string) string {
	switch status {
	case model.StatusPass:
		return "✅"
	case model.StatusFail:
		return "🚫"
	default:
		return "📝"
	}
}
