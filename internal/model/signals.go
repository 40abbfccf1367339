// 파이프라인 입력 (IncidentSignals) 정의
//
// 요청 JSON 예시:
//
//	{
//	  "phase": "investigating",
//	  "incident_context": "slack thread ...",
//	  "cloudwatch_logs": {"logs": [...]},
//	  "any_other_source": {...}
//	}
//
// phase를 제외한 모든 키는 데이터 소스로 취급한다 (고정 스키마 없음).
// 문자열 값은 text 소스, 그 외 JSON 값은 structured 소스가 된다.

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SourceKind string

const (
	SourceText       SourceKind = "text"
	SourceStructured SourceKind = "structured"
)

// SourcePayload - 이름이 붙은 단일 데이터 소스 (text 또는 structured 중 하나)
type SourcePayload struct {
	Name  string
	Kind  SourceKind
	Text  string
	Value json.RawMessage
}

// TextSource - 자유 텍스트 소스 생성 (slack thread, 엔지니어 메모 등)
func TextSource(name, text string) SourcePayload {
	return SourcePayload{Name: name, Kind: SourceText, Text: text}
}

// StructuredSource - 구조화 소스 생성 (logs, metrics, paging metadata 등)
func StructuredSource(name string, value any) (SourcePayload, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return SourcePayload{}, fmt.Errorf("failed to marshal source %s: %w", name, err)
	}
	return SourcePayload{Name: name, Kind: SourceStructured, Value: raw}, nil
}

// Label - 필드 이름을 사람이 읽을 수 있는 소스 이름으로 변환
// 예: "cloudwatch_logs" -> "Cloudwatch Logs"
func (p SourcePayload) Label() string {
	return SourceLabel(p.Name)
}

// SourceLabel - 밑줄을 공백으로 바꾸고 단어별 title case 적용
func SourceLabel(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// IncidentSignals - 단계 태그 + 순서가 유지되는 소스 목록
type IncidentSignals struct {
	Phase   string
	Sources []SourcePayload
}

// Source - 이름으로 소스 조회
func (s IncidentSignals) Source(name string) (SourcePayload, bool) {
	for _, src := range s.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return SourcePayload{}, false
}

// Labels - 입력에 존재하는 소스 이름 목록 (입력 순서)
func (s IncidentSignals) Labels() []string {
	labels := make([]string, 0, len(s.Sources))
	for _, src := range s.Sources {
		labels = append(labels, src.Label())
	}
	return labels
}

// Set - 소스 추가 (같은 이름이면 교체)
func (s *IncidentSignals) Set(payload SourcePayload) {
	for i := range s.Sources {
		if s.Sources[i].Name == payload.Name {
			s.Sources[i] = payload
			return
		}
	}
	s.Sources = append(s.Sources, payload)
}

// UnmarshalJSON - 키 순서를 유지하면서 임의의 소스 필드를 수집
func (s *IncidentSignals) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("incident signals must be a JSON object")
	}

	var out IncidentSignals
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode field %s: %w", key, err)
		}
		trimmed := bytes.TrimSpace(raw)
		if bytes.Equal(trimmed, []byte("null")) {
			continue
		}

		if key == "phase" {
			if err := json.Unmarshal(trimmed, &out.Phase); err != nil {
				return fmt.Errorf("phase must be a string: %w", err)
			}
			continue
		}

		if trimmed[0] == '"' {
			var text string
			if err := json.Unmarshal(trimmed, &text); err != nil {
				return fmt.Errorf("failed to decode field %s: %w", key, err)
			}
			out.Set(TextSource(key, text))
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return fmt.Errorf("failed to decode field %s: %w", key, err)
		}
		out.Set(SourcePayload{Name: key, Kind: SourceStructured, Value: compact.Bytes()})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// MarshalJSON - phase를 먼저, 이후 소스를 입력 순서대로 직렬화
func (s IncidentSignals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	phase, err := json.Marshal(s.Phase)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"phase":`)
	buf.Write(phase)

	for _, src := range s.Sources {
		key, err := json.Marshal(src.Name)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')

		switch src.Kind {
		case SourceStructured:
			if len(src.Value) == 0 {
				buf.WriteString("null")
			} else {
				buf.Write(src.Value)
			}
		default:
			text, err := json.Marshal(src.Text)
			if err != nil {
				return nil, err
			}
			buf.Write(text)
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
