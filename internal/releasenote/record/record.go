// Package record 버전별 릴리즈 정보 레코드와 저장 키를 정의합니다.
//
// 레코드는 버전마다 하나씩 저장되며, 저장 형식은 다음과 같은 JSON 객체입니다.
//
//	{
//	  "version": "1.1.0",
//	  "buildNumber": 3,
//	  "versionDate": "2022-07-01",
//	  "isNeedPrompt": true,
//	  "hasPrompt": false,
//	  "releaseMarkdown": "## New features ..."
//	}
package record

import (
	"encoding/json"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// DefaultNamespace 저장 키의 기본 접두어입니다.
const DefaultNamespace = "EasydictVersionInfoKey"

// Record 특정 버전의 릴리즈 정보와 안내 상태를 담는 레코드입니다.
type Record struct {
	// Version 레코드를 식별하는 버전 문자열입니다. 생성 후 변경되지 않습니다.
	Version string `json:"version" validate:"required"`

	BuildNumber int    `json:"buildNumber" validate:"gte=0"`
	ReleaseDate string `json:"versionDate"`

	// NeedPrompt 이 버전의 릴리즈 노트를 사용자에게 안내해야 하는지 여부입니다.
	NeedPrompt bool `json:"isNeedPrompt"`

	// HasPrompt 사용자에게 이미 안내했는지 여부입니다. false에서 true로 단 한 번만 바뀝니다.
	HasPrompt bool `json:"hasPrompt"`

	// ReleaseMarkdown 마지막으로 조회에 성공한 릴리즈 노트 본문입니다.
	ReleaseMarkdown string `json:"releaseMarkdown"`
}

// VersionKey 버전별 레코드의 저장 키를 생성합니다.
//
//	VersionKey("EasydictVersionInfoKey", "1.1.0") // "EasydictVersionInfoKey-1.1.0"
func VersionKey(namespace, version string) string {
	return namespace + "-" + version
}

// NeedsPrompt 아직 안내하지 않았고 안내가 필요한 레코드인지 확인합니다.
func (r Record) NeedsPrompt() bool {
	return r.NeedPrompt && !r.HasPrompt
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate 레코드의 필드 값이 유효한지 검사합니다.
func (r Record) Validate() error {
	if err := recordValidator().Struct(r); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "레코드 값이 유효하지 않습니다 (version: %q)", r.Version)
	}
	return nil
}

// Encode 레코드를 저장용 JSON 문자열로 변환합니다.
func Encode(r Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	data, err := json.Marshal(r)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.Internal, "레코드를 JSON으로 변환하는 중 오류가 발생했습니다")
	}

	return string(data), nil
}

// Decode 저장된 JSON 문자열을 레코드로 변환합니다.
// 해석할 수 없거나 검증에 실패한 값은 ParsingFailed 타입의 에러를 반환합니다.
func Decode(value string) (Record, error) {
	var r Record

	dec := json.NewDecoder(strings.NewReader(value))
	if err := dec.Decode(&r); err != nil {
		return Record{}, apperrors.Wrap(err, apperrors.ParsingFailed, "저장된 레코드를 해석할 수 없습니다")
	}

	if err := recordValidator().Struct(r); err != nil {
		return Record{}, apperrors.Wrapf(err, apperrors.ParsingFailed, "저장된 레코드의 값이 유효하지 않습니다 (version: %q)", r.Version)
	}

	return r, nil
}
