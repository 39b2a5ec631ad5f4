package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	githubMediaType  = "application/vnd.github+json"
	githubAPIVersion = "2022-11-28"

	// maxJSONSnippetBytes 해석 실패 에러 메시지에 포함하는 응답 본문의 최대 길이입니다.
	maxJSONSnippetBytes = 128
)

// ReleaseInfo 릴리즈 API 응답에서 추출한 릴리즈 정보입니다.
type ReleaseInfo struct {
	TagName     string
	Name        string
	Body        string // 릴리즈 노트 본문 (Markdown)
	HTMLURL     string
	PublishedAt time.Time
}

// ReleaseFetcher 릴리즈 API를 호출하여 릴리즈 정보를 가져옵니다.
type ReleaseFetcher struct {
	fetcher Fetcher

	token string
}

// NewReleaseFetcher token이 비어 있지 않으면 모든 요청에 Bearer 인증 헤더를 추가합니다.
func NewReleaseFetcher(f Fetcher, token string) *ReleaseFetcher {
	return &ReleaseFetcher{
		fetcher: f,
		token:   token,
	}
}

// Fetch 릴리즈 API URL로 한 번의 GET 요청을 보내 릴리즈 정보를 가져옵니다.
// 실패하면 항상 *FetchError를 반환합니다.
//
// body가 null이거나 없는 릴리즈는 Body가 빈 문자열인 ReleaseInfo로 반환됩니다.
func (r *ReleaseFetcher) Fetch(ctx context.Context, rawURL string) (*ReleaseInfo, error) {
	safeURL := redactRawURL(rawURL)

	header := http.Header{}
	header.Set("Accept", githubMediaType)
	header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if r.token != "" {
		header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := Get(ctx, r.fetcher, rawURL, header)
	if err != nil {
		return nil, &FetchError{URL: safeURL, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		// 크기 제한 초과는 재시도해도 달라지지 않으므로 원래 타입을 유지한다.
		if !apperrors.Is(err, apperrors.ExecutionFailed) {
			err = NewErrReadBodyFailed(err)
		}
		return nil, &FetchError{URL: safeURL, Cause: err}
	}

	if !gjson.ValidBytes(data) {
		snippet := data
		if len(snippet) > maxJSONSnippetBytes {
			snippet = snippet[:maxJSONSnippetBytes]
		}
		return nil, &FetchError{URL: safeURL, Cause: NewErrInvalidJSON(string(snippet))}
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, &FetchError{URL: safeURL, Cause: ErrInvalidReleasePayload}
	}

	info := &ReleaseInfo{
		TagName: result.Get("tag_name").String(),
		Name:    result.Get("name").String(),
		Body:    result.Get("body").String(),
		HTMLURL: result.Get("html_url").String(),
	}
	if published := result.Get("published_at").String(); published != "" {
		if t, err := time.Parse(time.RFC3339, published); err == nil {
			info.PublishedAt = t
		}
	}

	return info, nil
}
