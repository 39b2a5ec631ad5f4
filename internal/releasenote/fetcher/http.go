package fetcher

import (
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
)

const (
	// defaultTimeout 요청 전송부터 응답 본문 수신까지의 기본 제한 시간입니다.
	defaultTimeout = 10 * time.Second

	// defaultMaxRedirects 허용하는 리다이렉트의 기본 최대 횟수입니다.
	defaultMaxRedirects = 5
)

// HTTPFetcher 실제 네트워크 요청을 수행하는 체인의 최하단 Fetcher입니다.
type HTTPFetcher struct {
	client *http.Client

	timeout      time.Duration
	proxyURL     string
	maxRedirects int
	transport    http.RoundTripper

	initErr error
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Option HTTPFetcher의 동작을 설정하는 함수입니다.
type Option func(*HTTPFetcher)

// WithTimeout 요청 전체에 대한 제한 시간을 설정합니다. 0 이하이면 기본값을 사용합니다.
func WithTimeout(timeout time.Duration) Option {
	return func(f *HTTPFetcher) {
		if timeout > 0 {
			f.timeout = timeout
		}
	}
}

// WithProxy 프록시 서버 주소를 설정합니다. 빈 문자열이면 환경 변수(HTTP_PROXY 등)를 따릅니다.
func WithProxy(proxyURL string) Option {
	return func(f *HTTPFetcher) {
		f.proxyURL = proxyURL
	}
}

// WithMaxRedirects 허용할 최대 리다이렉트 횟수를 설정합니다. 음수이면 기본값을 사용합니다.
func WithMaxRedirects(max int) Option {
	return func(f *HTTPFetcher) {
		if max >= 0 {
			f.maxRedirects = max
		}
	}
}

// WithTransport 요청에 사용할 RoundTripper를 지정합니다. 지정하면 프록시 설정은 무시됩니다.
func WithTransport(transport http.RoundTripper) Option {
	return func(f *HTTPFetcher) {
		f.transport = transport
	}
}

// NewHTTPFetcher 옵션을 적용한 HTTPFetcher를 생성합니다.
// 프록시 주소가 잘못된 경우 생성은 성공하지만 모든 요청이 에러를 반환합니다.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		timeout:      defaultTimeout,
		maxRedirects: defaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if f.proxyURL != "" {
			u, err := url.Parse(f.proxyURL)
			if err != nil {
				f.initErr = NewErrInvalidProxyURL(err, f.proxyURL)
			} else {
				t.Proxy = http.ProxyURL(u)
			}
		}
		transport = t
	}

	maxRedirects := f.maxRedirects
	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return NewErrTooManyRedirects(maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Do HTTP 요청을 수행합니다. 네트워크 장애는 Unavailable 타입의 에러로 반환됩니다.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if f.initErr != nil {
		return nil, f.initErr
	}

	resp, err := f.client.Do(req)
	if err != nil {
		// 리다이렉트 제한 초과는 네트워크 장애가 아니다.
		if apperrors.Is(err, apperrors.ExecutionFailed) {
			return nil, err
		}
		return nil, NewErrRequestFailed(err, redactURL(req.URL))
	}

	return resp, nil
}
