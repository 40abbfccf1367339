package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed phases.yaml
var phasesYAML []byte

// PhaseGuide - 단계별 정의 및 추출/생성 지침
type PhaseGuide struct {
	Definition string `yaml:"definition"`
	Extraction string `yaml:"extraction"`
	Generation string `yaml:"generation"`
	Example    string `yaml:"example"`
}

var loadPhases = sync.OnceValues(func() (map[string]PhaseGuide, error) {
	var guides map[string]PhaseGuide
	if err := yaml.Unmarshal(phasesYAML, &guides); err != nil {
		return nil, fmt.Errorf("parse phase table: %w", err)
	}
	return guides, nil
})

// GuideFor - 단계 지침 조회. 알 수 없는 단계는 ok=false (추가 지침 없음)
func GuideFor(phase string) (PhaseGuide, bool, error) {
	guides, err := loadPhases()
	if err != nil {
		return PhaseGuide{}, false, err
	}
	guide, ok := guides[strings.ToLower(strings.TrimSpace(phase))]
	return guide, ok, nil
}
