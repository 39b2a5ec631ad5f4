package releasenote_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote"
	"github.com/darkkaiser/whatsnew/internal/releasenote/fetcher"
	"github.com/darkkaiser/whatsnew/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFetchReleaseMarkdown_OnlineThenOffline 실제 HTTP 체인과 파일 저장소로 온라인 조회 후 오프라인 대체를 확인합니다.
func TestFetchReleaseMarkdown_OnlineThenOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/tisfeng/Raycast-Easydict/releases/tags/1.1.0" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"tag_name": "1.1.0", "body": "## New features\n- 오프라인 캐시"}`)
	}))

	id := testIdentity(testVersion).WithRepository(version.Repository{
		WebHost: server.URL,
		APIHost: server.URL,
		Owner:   version.DefaultOwner,
		Name:    version.DefaultRepo,
	})

	dir := t.TempDir()
	newManager := func() *releasenote.Manager {
		s, err := store.NewFileStore(dir)
		require.NoError(t, err)

		f := fetcher.New(fetcher.Config{Timeout: 2 * time.Second, DisableLogging: true},
			fetcher.WithTransport(&http.Transport{DisableKeepAlives: true}))

		return releasenote.New(id, s, fetcher.NewReleaseFetcher(f, ""))
	}

	ctx := context.Background()

	online := newManager().FetchReleaseMarkdown(ctx)
	require.NoError(t, online.Err)
	assert.Equal(t, releasenote.SourceRemote, online.Source)
	assert.Equal(t, "## New features\n- 오프라인 캐시", online.Markdown)

	server.Close()

	// 재시작한 것처럼 새 Manager로 조회합니다.
	offline := newManager().FetchReleaseMarkdown(ctx)
	assert.Equal(t, releasenote.SourceCache, offline.Source)
	assert.Equal(t, online.Markdown, offline.Markdown)

	var fetchErr *fetcher.FetchError
	assert.ErrorAs(t, offline.Err, &fetchErr)
}
