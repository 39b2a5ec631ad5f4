package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFilename(t *testing.T) {
	t.Run("가독성 있는 이름과 해시", func(t *testing.T) {
		name := generateFilename("EasydictVersionInfoKey-1.1.0")

		assert.Regexp(t, `^wn-[a-z0-9-]+-[0-9a-f]{16}\.json$`, name)
		assert.True(t, strings.HasPrefix(name, "wn-easydict-version-info-key"))
	})

	t.Run("결정적 생성", func(t *testing.T) {
		assert.Equal(t, generateFilename("key-1.0.0"), generateFilename("key-1.0.0"))
	})

	t.Run("정제 후 같아지는 키도 구분", func(t *testing.T) {
		assert.NotEqual(t, generateFilename("Key-1.1.0"), generateFilename("key-1.1.0"))
		assert.NotEqual(t, generateFilename("a/b"), generateFilename("a-b"))
	})

	t.Run("경로 문자 제거", func(t *testing.T) {
		name := generateFilename("../../etc/passwd")

		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, "..")
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"EasydictVersionInfoKey", "easydict-version-info-key"},
		{"a:b|c", "a-b-c"},
		{"tab\there", "tab-here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeName(tt.input)
			for _, forbidden := range []string{"/", "\\", ":", "|", "\t"} {
				assert.NotContains(t, got, forbidden)
			}
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTruncateByBytes(t *testing.T) {
	assert.Equal(t, "abc", truncateByBytes("abc", 10))
	assert.Equal(t, "ab", truncateByBytes("abcdef", 2))

	// "한"은 UTF-8로 3바이트이므로 4바이트 제한에서는 한 글자만 남습니다.
	assert.Equal(t, "한", truncateByBytes("한글", 4))
	assert.Equal(t, "", truncateByBytes("한글", 2))
}
