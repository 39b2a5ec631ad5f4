package fetcher

import (
	"time"
)

// Config Fetcher 체인을 구성하기 위한 설정입니다.
type Config struct {
	// Timeout 요청 전체에 대한 제한 시간입니다. 0 이하이면 기본값(10초)을 사용합니다.
	Timeout time.Duration

	// MaxBytes 응답 본문의 최대 크기입니다. 0 이하이면 기본값(2MB), NoLimit이면 제한하지 않습니다.
	MaxBytes int64

	// UserAgent 요청에 주입할 User-Agent입니다. 비어 있으면 기본값을 사용합니다.
	UserAgent string

	// RateLimitInterval 요청 사이의 최소 간격입니다. 0 이하이면 제한하지 않습니다.
	RateLimitInterval time.Duration

	// ProxyURL 프록시 서버 주소입니다.
	ProxyURL string

	// MaxRedirects 따라갈 리다이렉트의 최대 횟수입니다. 0 이하이면 기본값(5회)을 사용합니다.
	MaxRedirects int

	// DisableLogging 요청/응답 로깅을 끕니다.
	DisableLogging bool
}

// New 설정에 따라 Fetcher 체인을 생성합니다.
//
// 체인은 바깥쪽부터 다음 순서로 구성됩니다.
//
//  1. LoggingFetcher: 빈도 제한 대기를 포함한 요청 전체를 기록
//  2. RateLimitFetcher: 요청 사이의 최소 간격 유지
//  3. UserAgentFetcher: User-Agent 주입
//  4. StatusCodeFetcher: 200 OK 외의 응답을 HTTPStatusError로 변환
//  5. MaxBytesFetcher: 응답 본문 크기 제한
//  6. HTTPFetcher: 실제 네트워크 I/O
func New(cfg Config, opts ...Option) Fetcher {
	httpOpts := []Option{WithTimeout(cfg.Timeout)}
	if cfg.ProxyURL != "" {
		httpOpts = append(httpOpts, WithProxy(cfg.ProxyURL))
	}
	if cfg.MaxRedirects > 0 {
		httpOpts = append(httpOpts, WithMaxRedirects(cfg.MaxRedirects))
	}
	httpOpts = append(httpOpts, opts...)

	var f Fetcher = NewHTTPFetcher(httpOpts...)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f)
	f = NewUserAgentFetcher(f, cfg.UserAgent)
	f = NewRateLimitFetcher(f, cfg.RateLimitInterval)

	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}

	return f
}
