// Package template provides publish webhook body template rendering.
//
// 지원하는 변수 형식:
//
//	{{draft.title}}, {{draft.status}}, {{draft.message}},
//	{{draft.next_update}}, {{draft.published_at}}
//
// 값은 JSON 문자열 내부에 들어갈 수 있도록 escape 된다.
package template

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/kube-rca/incident-comms/internal/model"
)

// DraftData - 템플릿 렌더링에 사용할 초안 데이터
type DraftData struct {
	Title       string
	Status      string
	Message     string
	NextUpdate  string
	PublishedAt time.Time
}

// DraftDataFromModel - GeneratedDraft에서 DraftData 생성
func DraftDataFromModel(draft model.GeneratedDraft, publishedAt time.Time) DraftData {
	return DraftData{
		Title:       draft.Title,
		Status:      draft.Status,
		Message:     draft.Message,
		NextUpdate:  draft.NextUpdate,
		PublishedAt: publishedAt,
	}
}

// RenderBody - webhook body 템플릿의 변수를 실제 값으로 치환
//
// nil로 전달되면 모든 변수는 빈 문자열로 치환됩니다.
func RenderBody(body string, draft *DraftData) string {
	if draft == nil {
		return strings.NewReplacer(
			"{{draft.title}}", "",
			"{{draft.status}}", "",
			"{{draft.message}}", "",
			"{{draft.next_update}}", "",
			"{{draft.published_at}}", "",
		).Replace(body)
	}

	publishedAt := ""
	if !draft.PublishedAt.IsZero() {
		publishedAt = draft.PublishedAt.UTC().Format(time.RFC3339)
	}
	return strings.NewReplacer(
		"{{draft.title}}", escape(draft.Title),
		"{{draft.status}}", escape(draft.Status),
		"{{draft.message}}", escape(draft.Message),
		"{{draft.next_update}}", escape(draft.NextUpdate),
		"{{draft.published_at}}", publishedAt,
	).Replace(body)
}

// JSON 문자열 리터럴의 따옴표를 제외한 내용
func escape(value string) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded[1 : len(encoded)-1])
}
