package releasenote

import (
	"context"
	"strings"

	"github.com/darkkaiser/whatsnew/internal/releasenote/record"
	applog "github.com/darkkaiser/whatsnew/pkg/log"
)

// Source 반환된 릴리즈 노트의 출처입니다.
type Source int

const (
	// SourceNone 원격 조회에 실패했고 캐시도 비어 있습니다.
	SourceNone Source = iota

	// SourceRemote 원격 API에서 방금 가져온 본문입니다.
	SourceRemote

	// SourceCache 원격 조회에 실패하여 마지막으로 저장된 본문을 반환했습니다.
	SourceCache
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceCache:
		return "cache"
	default:
		return "none"
	}
}

// Result 릴리즈 노트 조회 결과입니다.
//
// Err는 조회가 완전히 성공하지 못한 원인을 담습니다. Markdown이 있더라도 Err가 설정될 수 있습니다.
// (예: 원격 조회는 성공했지만 저장에 실패한 경우)
type Result struct {
	Markdown string
	Source   Source
	Err      error
}

// Found 반환할 릴리즈 노트가 있는지 확인합니다.
func (r Result) Found() bool {
	return r.Markdown != ""
}

// FetchReleaseMarkdown 현재 버전의 릴리즈 노트를 가져옵니다.
//
// 원격 조회에 성공하면 본문을 레코드에 반영하여 저장하고(안내 상태는 유지) 새 본문을 반환합니다.
// 원격 조회에 실패하거나 본문이 비어 있으면 저장소에 쓰지 않고 마지막으로 저장된 본문을 반환합니다.
// 이 메서드는 에러를 반환하지 않으며, 실패 원인은 Result.Err에 담깁니다.
func (m *Manager) FetchReleaseMarkdown(ctx context.Context) Result {
	fallback, loadErr := m.CurrentStoredRecord(ctx)
	if loadErr != nil {
		m.logger().WithField("error", loadErr).Warn("저장된 버전 레코드를 읽지 못해 빌드 정보로 대체합니다")
		fallback = newRecord(m.identity)
	}

	url := m.identity.ReleaseAPIURL()

	info, err := m.source.Fetch(ctx, url)
	if err != nil {
		m.logger().WithFields(applog.Fields{
			"url":   url,
			"error": err,
		}).Warn("릴리즈 노트 조회 실패: 저장된 릴리즈 노트로 대체합니다")

		return cachedResult(fallback, err)
	}

	if info == nil || strings.TrimSpace(info.Body) == "" {
		m.logger().WithField("url", url).Warn("릴리즈 노트 본문이 비어 있어 저장된 릴리즈 노트로 대체합니다")

		return cachedResult(fallback, ErrEmptyReleaseBody)
	}

	result := Result{Markdown: info.Body, Source: SourceRemote}

	// 저장된 레코드를 읽지 못한 상태에서 쓰면 안내 상태를 덮어쓸 수 있으므로 저장하지 않습니다.
	if loadErr != nil {
		result.Err = loadErr
		return result
	}

	fallback.ReleaseMarkdown = info.Body
	if err := m.StoreRecord(ctx, fallback); err != nil {
		m.logger().WithField("error", err).Warn("조회한 릴리즈 노트를 저장하지 못했습니다")
		result.Err = err
		return result
	}

	m.logger().WithField("bytes", len(info.Body)).Debug("릴리즈 노트를 갱신했습니다")

	return result
}

func cachedResult(rec record.Record, cause error) Result {
	if rec.ReleaseMarkdown == "" {
		return Result{Source: SourceNone, Err: cause}
	}

	return Result{Markdown: rec.ReleaseMarkdown, Source: SourceCache, Err: cause}
}
