package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"정상", Options{Name: "whatsnew", Dir: tempDir}, ""},
		{"이름 누락", Options{}, "Name"},
		{"디렉토리 자리에 파일", Options{Name: "whatsnew", Dir: filePath}, "이미 파일로 존재"},
		{"음수 MaxAge", Options{Name: "whatsnew", MaxAge: -1}, "MaxAge"},
		{"음수 MaxSizeMB", Options{Name: "whatsnew", MaxSizeMB: -1}, "MaxSizeMB"},
		{"음수 MaxBackups", Options{Name: "whatsnew", MaxBackups: -1}, "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("whatsnew")
	dev := NewDevelopmentOptions("whatsnew")

	assert.NoError(t, prod.Validate())
	assert.NoError(t, dev.Validate())

	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
}
