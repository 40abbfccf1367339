package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kube-rca/incident-comms/internal/config"
	"github.com/kube-rca/incident-comms/internal/model"
)

func TestPublishRendersBodyAndHeaders(t *testing.T) {
	type captured struct {
		method string
		header http.Header
		body   []byte
	}
	received := make(chan captured, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- captured{method: r.Method, header: r.Header.Clone(), body: body}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewPublishService(config.PublishConfig{
		URL:     server.URL + "/hooks/secret-token",
		Method:  http.MethodPut,
		Body:    config.DefaultPublishBody,
		Headers: []config.Header{{Key: "Authorization", Value: "Bearer abc"}},
	})
	svc.now = func() time.Time { return time.Date(2025, 1, 15, 22, 30, 0, 0, time.UTC) }

	draft := sampleDraft()
	draft.Message = `Users see "timeouts" on checkout`
	resp, err := svc.Publish(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, "published", resp.Status)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotContains(t, resp.Target, "secret-token")

	got := <-received
	require.Equal(t, http.MethodPut, got.method)
	require.Equal(t, "Bearer abc", got.header.Get("Authorization"))
	require.Equal(t, "application/json", got.header.Get("Content-Type"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(got.body, &payload))
	require.Equal(t, draft.Message, payload["message"])
	require.Equal(t, "2025-01-15T22:30:00Z", payload["published_at"])
}

func TestPublishNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewPublishService(config.PublishConfig{URL: server.URL, Body: config.DefaultPublishBody})
	_, err := svc.Publish(context.Background(), sampleDraft())
	require.ErrorContains(t, err, "status 500")
}

func TestPublishRejectsBeforeSending(t *testing.T) {
	_, err := NewPublishService(config.PublishConfig{}).Publish(context.Background(), sampleDraft())
	require.ErrorIs(t, err, ErrPublishNotConfigured)

	_, err = NewPublishService(config.PublishConfig{URL: "http://127.0.0.1:1"}).Publish(context.Background(), model.GeneratedDraft{Title: "x"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}
