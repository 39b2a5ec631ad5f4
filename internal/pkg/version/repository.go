package version

import (
	"fmt"
	"strings"
)

// 릴리즈 노트를 호스팅하는 저장소의 기본값입니다.
const (
	DefaultWebHost = "https://github.com"
	DefaultAPIHost = "https://api.github.com"
	DefaultOwner   = "tisfeng"
	DefaultRepo    = "Raycast-Easydict"
)

// Repository 릴리즈를 호스팅하는 저장소의 위치입니다.
type Repository struct {
	WebHost string
	APIHost string
	Owner   string
	Name    string
}

// DefaultRepository 기본 저장소 정보를 반환합니다.
func DefaultRepository() Repository {
	return Repository{
		WebHost: DefaultWebHost,
		APIHost: DefaultAPIHost,
		Owner:   DefaultOwner,
		Name:    DefaultRepo,
	}
}

// HomeURL 저장소 홈 URL을 반환합니다. (예: https://github.com/tisfeng/Raycast-Easydict)
func (r Repository) HomeURL() string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(r.WebHost, "/"), r.Owner, r.Name)
}

// ReleaseAPIURL 지정된 태그의 릴리즈 API URL을 반환합니다.
func (r Repository) ReleaseAPIURL(tag string) string {
	return fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s", strings.TrimRight(r.APIHost, "/"), r.Owner, r.Name, tag)
}
