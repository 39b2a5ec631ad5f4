package fetcher

import (
	"net/http"
)

// defaultUserAgent User-Agent가 지정되지 않았을 때 사용하는 값입니다.
// GitHub API는 User-Agent가 없는 요청을 거부합니다.
const defaultUserAgent = "whatsnew"

// UserAgentFetcher User-Agent 헤더가 없는 요청에 고정된 User-Agent를 주입하는 미들웨어입니다.
type UserAgentFetcher struct {
	delegate Fetcher

	userAgent string
}

var _ Fetcher = (*UserAgentFetcher)(nil)

// NewUserAgentFetcher userAgent가 비어 있으면 기본값을 사용합니다.
func NewUserAgentFetcher(delegate Fetcher, userAgent string) *UserAgentFetcher {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &UserAgentFetcher{
		delegate:  delegate,
		userAgent: userAgent,
	}
}

func (f *UserAgentFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return f.delegate.Do(req)
	}

	// 원본 요청은 호출자 소유이므로 복제본에 헤더를 설정합니다.
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", f.userAgent)

	return f.delegate.Do(clonedReq)
}
