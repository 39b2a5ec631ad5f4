package log

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCloser struct {
	mock.Mock
}

func (m *mockCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestCloser_Close(t *testing.T) {
	t.Run("모든 리소스를 닫고 hook을 비활성화", func(t *testing.T) {
		m1 := new(mockCloser)
		m2 := new(mockCloser)
		m1.On("Close").Return(nil).Once()
		m2.On("Close").Return(nil).Once()
		h := &hook{}

		c := &closer{closers: []io.Closer{m1, nil, m2}, hook: h}

		require.NoError(t, c.Close())
		assert.True(t, h.closed)
		m1.AssertExpectations(t)
		m2.AssertExpectations(t)
	})

	t.Run("일부 실패해도 나머지를 닫음", func(t *testing.T) {
		errFail := errors.New("close failed")
		m1 := new(mockCloser)
		m2 := new(mockCloser)
		m1.On("Close").Return(errFail).Once()
		m2.On("Close").Return(nil).Once()

		c := &closer{closers: []io.Closer{m1, m2}}

		err := c.Close()
		require.Error(t, err)
		assert.ErrorIs(t, err, errFail)
		m2.AssertExpectations(t)
	})

	t.Run("중복 호출은 무시", func(t *testing.T) {
		m1 := new(mockCloser)
		m1.On("Close").Return(nil).Once()

		c := &closer{closers: []io.Closer{m1}}

		require.NoError(t, c.Close())
		require.NoError(t, c.Close())
		m1.AssertExpectations(t)
	})
}
