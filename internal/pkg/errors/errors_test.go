package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		errType  ErrorType
		message  string
		expected string
	}{
		{"System", System, "저장소 쓰기 실패", "[System] 저장소 쓰기 실패"},
		{"ParsingFailed", ParsingFailed, "손상된 캐시", "[ParsingFailed] 손상된 캐시"},
		{"Unavailable", Unavailable, "네트워크 단절", "[Unavailable] 네트워크 단절"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.Equal(t, tt.expected, err.Error())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "지원하지 않는 저장소 백엔드: '%s'", "etcd")
	assert.Equal(t, "[InvalidInput] 지원하지 않는 저장소 백엔드: 'etcd'", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("원인 에러 보존", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, System, "기록 저장 실패")
		assert.Equal(t, "[System] 기록 저장 실패: standard error", err.Error())
		assert.ErrorIs(t, err, errStd)
	})

	t.Run("nil 원인은 nil 반환", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, System, "무시됨"))
		assert.Nil(t, Wrapf(nil, System, "무시됨 %d", 1))
	})

	t.Run("Wrapf 포맷 적용", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errStd, Unavailable, "릴리즈 API(%s) 호출 실패", "https://api.github.com")
		assert.Contains(t, err.Error(), "릴리즈 API(https://api.github.com) 호출 실패")
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	inner := New(ParsingFailed, "본문 해석 실패")
	outer := Wrap(inner, Unavailable, "릴리즈 조회 실패")
	wrappedStd := fmt.Errorf("호출자 컨텍스트: %w", outer)

	assert.True(t, Is(outer, Unavailable))
	assert.True(t, Is(outer, ParsingFailed))
	assert.True(t, Is(wrappedStd, ParsingFailed))
	assert.False(t, Is(outer, System))
	assert.False(t, Is(errStd, Unknown))
	assert.False(t, Is(nil, Unknown))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errStd, System, "1단계"), Internal, "2단계")
	assert.Equal(t, errStd, RootCause(err))
	assert.Nil(t, RootCause(nil))
	assert.Equal(t, errStd, RootCause(errStd))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, System, UnderlyingType(Wrap(errStd, System, "저장 실패")))
	assert.Equal(t, ParsingFailed, UnderlyingType(Wrap(New(ParsingFailed, "a"), Unavailable, "b")))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, System, "기록 저장 실패")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[System] 기록 저장 실패")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "standard error")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}

func TestCaptureStack_PointsToCaller(t *testing.T) {
	t.Parallel()

	err := New(Internal, "스택 확인")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestCaptureStack_PointsToCaller")
}
