package service

import (
	"context"
	"log"
	"time"

	"github.com/kube-rca/incident-comms/internal/model"
)

// DraftReviewSender - 초안 검토 메시지 전송 (Slack)
type DraftReviewSender interface {
	IsConfigured() bool
	SendDraftForReview(ctx context.Context, draft model.DraftResponse) error
}

// ReviewNotifier - 완료된 파이프라인 응답을 검토 채널로 전송
// 실패는 로그만 남기고 응답에 영향을 주지 않는다.
type ReviewNotifier struct {
	sender  DraftReviewSender
	timeout time.Duration
}

func NewReviewNotifier(sender DraftReviewSender) *ReviewNotifier {
	return &ReviewNotifier{sender: sender, timeout: 15 * time.Second}
}

func (n *ReviewNotifier) Notify(ctx context.Context, draft model.DraftResponse) {
	if n == nil || n.sender == nil || !n.sender.IsConfigured() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.sender.SendDraftForReview(ctx, draft); err != nil {
		log.Printf("[SlackReview] Failed to send draft for review (run=%s): %v", draft.RunID, err)
		return
	}
	log.Printf("[SlackReview] Draft sent for review (run=%s)", draft.RunID)
}
