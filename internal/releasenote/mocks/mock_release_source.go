// Package mocks releasenote 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/whatsnew/internal/releasenote/fetcher"
	"github.com/stretchr/testify/mock"
)

// MockReleaseSource 릴리즈 조회 인터페이스의 Mock 구현체입니다.
type MockReleaseSource struct {
	mock.Mock
}

func NewMockReleaseSource() *MockReleaseSource {
	return &MockReleaseSource{}
}

func (m *MockReleaseSource) Fetch(ctx context.Context, url string) (*fetcher.ReleaseInfo, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fetcher.ReleaseInfo), args.Error(1)
}

// OnFetchBody 지정된 본문을 가진 릴리즈를 반환하도록 설정합니다.
func (m *MockReleaseSource) OnFetchBody(url, body string) *mock.Call {
	return m.On("Fetch", mock.Anything, url).Return(&fetcher.ReleaseInfo{Body: body}, nil)
}

// OnFetchError 지정된 에러를 반환하도록 설정합니다.
func (m *MockReleaseSource) OnFetchError(url string, err error) *mock.Call {
	return m.On("Fetch", mock.Anything, url).Return(nil, err)
}
