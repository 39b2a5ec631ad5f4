package fetcher

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitFetcher 요청 사이에 최소 간격을 두는 미들웨어입니다.
// 인증 없이 호출하는 GitHub API의 시간당 요청 한도를 보호합니다.
type RateLimitFetcher struct {
	delegate Fetcher

	limiter *rate.Limiter
}

var _ Fetcher = (*RateLimitFetcher)(nil)

// NewRateLimitFetcher interval마다 한 번의 요청을 허용합니다. interval이 0 이하이면 delegate를 그대로 반환합니다.
func NewRateLimitFetcher(delegate Fetcher, interval time.Duration) Fetcher {
	if interval <= 0 {
		return delegate
	}

	return &RateLimitFetcher{
		delegate: delegate,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Do 요청 허용 시점까지 대기한 뒤 요청을 전달합니다. 대기 중 Context가 취소되면 에러를 반환합니다.
func (f *RateLimitFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := f.limiter.Wait(req.Context()); err != nil {
		return nil, NewErrRateLimitWait(err)
	}

	return f.delegate.Do(req)
}
