// Package fetcher 릴리즈 API에서 버전별 릴리즈 노트를 가져오는 HTTP 클라이언트를 제공합니다.
//
// HTTP 요청은 Fetcher 데코레이터 체인을 통해 수행되며, 각 데코레이터는 로깅, 호출 빈도 제한,
// User-Agent 주입, 상태 코드 검증, 응답 크기 제한 중 하나를 담당합니다. 재시도는 하지 않습니다.
package fetcher

import (
	"context"
	"net/http"
)

// component 릴리즈 노트 Fetcher 로깅용 컴포넌트 이름
const component = "releasenote.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get 지정된 URL로 GET 요청을 전송합니다. header의 값은 요청 헤더에 그대로 설정됩니다.
func Get(ctx context.Context, f Fetcher, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewErrInvalidRequest(err, url)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		return nil, err
	}

	return resp, nil
}
