// Package version 실행 중인 빌드의 식별 정보(Version Identity)를 제공합니다.
//
// 버전, 빌드 번호, 릴리즈 날짜, 릴리즈 노트 안내 여부는 빌드 시점에 링커 플래그로 주입되며,
// 주입되지 않은 값은 컴파일된 기본값을 사용합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/whatsnew/internal/pkg/version.appVersion=1.2.0 \
//	                   -X github.com/darkkaiser/whatsnew/internal/pkg/version.buildNumber=4 \
//	                   -X github.com/darkkaiser/whatsnew/internal/pkg/version.releaseDate=2022-08-01"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// 링커 플래그 미주입 시 사용되는 빌드 식별 정보의 기본값입니다.
const (
	DefaultVersion     = "1.1.0"
	DefaultBuildNumber = 3
	DefaultReleaseDate = "2022-07-01"
	DefaultNeedPrompt  = true
)

const unknown = "unknown"

// releaseDateLayout 릴리즈 날짜 형식 (YYYY-MM-DD)
const releaseDateLayout = "2006-01-02"

// 다음 변수들은 -ldflags "-X ..."로 주입되는 컨테이너입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	buildNumber   = ""
	releaseDate   = ""
	needPrompt    = ""
	gitCommitHash = ""
)

var globalIdentity atomic.Value

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 선언합니다.
var readBuildInfo = debug.ReadBuildInfo

func init() {
	globalIdentity.Store(enrich(fromLinkerFlags(appVersion, buildNumber, releaseDate, needPrompt, gitCommitHash)))
}

// Identity 실행 중인 빌드를 설명하는 불변 값입니다.
type Identity struct {
	Version     string // 릴리즈 태그로도 사용되는 버전 문자열 (예: 1.1.0)
	BuildNumber int    // 버전 내 빌드 순번
	ReleaseDate string // 릴리즈 날짜 (YYYY-MM-DD)
	NeedPrompt  bool   // 이 버전의 릴리즈 노트를 사용자에게 안내할지 여부

	Repository Repository // URL 생성에 사용되는 저장소 정보

	Commit    string
	GoVersion string
	OS        string
	Arch      string
}

// Get 현재 빌드의 Identity를 반환합니다.
func Get() Identity {
	return globalIdentity.Load().(Identity)
}

// WithRepository 저장소 정보만 교체한 Identity 사본을 반환합니다.
func (i Identity) WithRepository(repo Repository) Identity {
	i.Repository = repo
	return i
}

// RepoURL 저장소 홈 URL을 반환합니다.
func (i Identity) RepoURL() string {
	return i.Repository.HomeURL()
}

// ReadmeURL 저장소 README URL을 반환합니다.
func (i Identity) ReadmeURL() string {
	return i.Repository.HomeURL() + "/#readme"
}

// IssuesURL 이슈 트래커 URL을 반환합니다.
func (i Identity) IssuesURL() string {
	return i.Repository.HomeURL() + "/issues"
}

// WikiURL 저장소 위키 URL을 반환합니다.
func (i Identity) WikiURL() string {
	return i.Repository.HomeURL() + "/wiki"
}

// ReleaseURL 현재 버전의 릴리즈 웹 페이지 URL을 반환합니다.
func (i Identity) ReleaseURL() string {
	return i.Repository.HomeURL() + "/releases/tag/" + i.Version
}

// ReleaseAPIURL 현재 버전의 릴리즈 정보를 조회하는 API URL을 반환합니다.
//
//	https://api.github.com/repos/tisfeng/Raycast-Easydict/releases/tags/1.1.0
func (i Identity) ReleaseAPIURL() string {
	return i.Repository.ReleaseAPIURL(i.Version)
}

// ToMap 구조적 로깅용 맵을 반환합니다.
func (i Identity) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"build_number": i.BuildNumber,
		"release_date": i.ReleaseDate,
		"need_prompt":  i.NeedPrompt,
		"commit":       i.Commit,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
	}
}

// String 빌드 정보를 한 줄로 요약합니다.
func (i Identity) String() string {
	details := []string{fmt.Sprintf("build: %d", i.BuildNumber)}
	if i.ReleaseDate != "" {
		details = append(details, "date: "+i.ReleaseDate)
	}
	if i.Commit != "" && i.Commit != unknown {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, "commit: "+commit)
	}
	if i.GoVersion != "" {
		details = append(details, "go_version: "+i.GoVersion)
	}

	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(details, ", "))
}

// fromLinkerFlags 링커 플래그로 주입된 문자열을 Identity로 변환합니다.
// 비어 있거나 해석할 수 없는 값은 기본값으로 대체합니다. 릴리즈 날짜는 YYYY-MM-DD 형식만 허용합니다.
func fromLinkerFlags(ver, build, date, prompt, commit string) Identity {
	id := Identity{
		Version:     strings.TrimSpace(ver),
		BuildNumber: DefaultBuildNumber,
		ReleaseDate: strings.TrimSpace(date),
		NeedPrompt:  DefaultNeedPrompt,
		Repository:  DefaultRepository(),
		Commit:      strings.TrimSpace(commit),
	}

	if id.Version == "" {
		id.Version = DefaultVersion
	}
	if _, err := time.Parse(releaseDateLayout, id.ReleaseDate); err != nil {
		id.ReleaseDate = DefaultReleaseDate
	}
	if n, err := strconv.Atoi(strings.TrimSpace(build)); err == nil && n >= 0 {
		id.BuildNumber = n
	}
	if b, err := strconv.ParseBool(strings.TrimSpace(prompt)); err == nil {
		id.NeedPrompt = b
	}

	return id
}

// enrich 런타임 환경 정보와 VCS 메타데이터로 빈 필드를 채웁니다.
func enrich(id Identity) Identity {
	if id.GoVersion == "" {
		id.GoVersion = runtime.Version()
	}
	if id.OS == "" {
		id.OS = runtime.GOOS
	}
	if id.Arch == "" {
		id.Arch = runtime.GOARCH
	}

	if info, ok := readBuildInfo(); ok && id.Commit == "" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				id.Commit = setting.Value
			}
		}
	}

	if id.Commit == "" {
		id.Commit = unknown
	}

	return id
}
