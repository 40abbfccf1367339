package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kube-rca/incident-comms/internal/model"
)

func TestReviewNotifierSkipsWhenNotConfigured(t *testing.T) {
	sender := &fakeReviewSender{configured: false, sent: make(chan model.DraftResponse, 1)}
	NewReviewNotifier(sender).Notify(context.Background(), model.DraftResponse{RunID: "r"})
	if len(sender.sent) != 0 {
		t.Fatalf("expected no message when sender is not configured")
	}

	var nilNotifier *ReviewNotifier
	nilNotifier.Notify(context.Background(), model.DraftResponse{})
}

func TestReviewNotifierSwallowsErrors(t *testing.T) {
	sender := &fakeReviewSender{configured: true, sent: make(chan model.DraftResponse, 1), err: errors.New("slack down")}
	NewReviewNotifier(sender).Notify(context.Background(), model.DraftResponse{RunID: "r"})
	if got := <-sender.sent; got.RunID != "r" {
		t.Fatalf("unexpected draft %+v", got)
	}
}
