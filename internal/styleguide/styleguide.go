// 스타일 가이드 예시 문서 로더
//
// Generator와 Judge가 호출 시점마다 읽는다.
// STYLE_GUIDE_DIR이 설정되어 있으면 해당 디렉터리의 파일을 우선 사용하고,
// 파일이 없으면 바이너리에 포함된 기본 문서를 사용한다.

package styleguide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	PositiveFile = "status_page_examples.md"
	NegativeFile = "negative_examples.md"
)

//go:embed data/*.md
var embedded embed.FS

// Documents - 긍정/부정 예시 문서
type Documents struct {
	Positive string
	Negative string
}

// Loader - 예시 문서 로더 (dir가 비어있으면 내장 문서만 사용)
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load - 두 문서를 모두 읽어서 반환
func (l *Loader) Load() (Documents, error) {
	positive, err := l.read(PositiveFile)
	if err != nil {
		return Documents{}, err
	}
	negative, err := l.read(NegativeFile)
	if err != nil {
		return Documents{}, err
	}
	return Documents{Positive: positive, Negative: negative}, nil
}

func (l *Loader) read(name string) (string, error) {
	if l != nil && l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read style guide %s: %w", name, err)
		}
	}
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded style guide %s: %w", name, err)
	}
	return string(data), nil
}
