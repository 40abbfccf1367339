package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kube-rca/incident-comms/internal/model"
)

// loadSignals - 디렉터리의 모든 파일을 소스로 변환 (파일명 순)
// .json 파일은 structured, 나머지는 text 소스
func loadSignals(dir, phase string) (model.IncidentSignals, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return model.IncidentSignals{}, fmt.Errorf("read incident dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	signals := model.IncidentSignals{Phase: phase}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return model.IncidentSignals{}, fmt.Errorf("read %s: %w", name, err)
		}
		ext := filepath.Ext(name)
		source := sourceName(name)
		if strings.EqualFold(ext, ".json") {
			var value any
			if err := json.Unmarshal(data, &value); err != nil {
				return model.IncidentSignals{}, fmt.Errorf("decode %s: %w", name, err)
			}
			payload, err := model.StructuredSource(source, value)
			if err != nil {
				return model.IncidentSignals{}, err
			}
			signals.Set(payload)
			continue
		}
		signals.Set(model.TextSource(source, string(data)))
	}
	return signals, nil
}

// "cloudwatch-logs.json" -> "cloudwatch_logs"
func sourceName(file string) string {
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(stem))
}
