// Package mocks store 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/whatsnew/internal/store"
	"github.com/stretchr/testify/mock"
)

var _ store.Store = (*MockStore)(nil)

// MockStore Store 인터페이스의 Mock 구현체입니다.
type MockStore struct {
	mock.Mock
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
