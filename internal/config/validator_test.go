package config

import (
	"testing"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_JSONTagName 검증 실패 시 구조체 필드명 대신 'json' 태그 이름이 보고되는지 확인합니다.
func TestValidate_JSONTagName(t *testing.T) {
	type TestStruct struct {
		RequiredField string `json:"required_field" validate:"required"`
		OmitField     string `json:"omit_field,omitempty" validate:"required"`
		NoTagField    string `validate:"required"`
	}

	err := validate.Struct(TestStruct{})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	var fields []string
	for _, fieldError := range validationErrors {
		fields = append(fields, fieldError.Field())
	}
	assert.ElementsMatch(t, []string{"required_field", "omit_field", "NoTagField"}, fields)
}

func TestCheckStruct(t *testing.T) {
	type sample struct {
		Mode  string `json:"mode" validate:"oneof=a b"`
		Count int    `json:"count" validate:"min=1"`
	}

	tests := []struct {
		name        string
		input       sample
		wantErr     bool
		errContains []string
	}{
		{
			name:  "Valid",
			input: sample{Mode: "a", Count: 1},
		},
		{
			name:        "OneOf Violation",
			input:       sample{Mode: "c", Count: 1},
			wantErr:     true,
			errContains: []string{"mode", "'c'", "a b"},
		},
		{
			name:        "Min Violation",
			input:       sample{Mode: "b", Count: 0},
			wantErr:     true,
			errContains: []string{"count", "min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStruct(newValidator(), tt.input, "샘플")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			for _, s := range tt.errContains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestCheckStruct_NonStructInput(t *testing.T) {
	err := checkStruct(newValidator(), "not a struct", "샘플")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}
