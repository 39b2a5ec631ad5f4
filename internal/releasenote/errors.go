package releasenote

import (
	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
)

// ErrEmptyReleaseBody 릴리즈 조회는 성공했지만 릴리즈 노트 본문이 비어 있을 때 Result.Err에 담기는 에러입니다.
var ErrEmptyReleaseBody = apperrors.New(apperrors.NotFound, "릴리즈 노트 본문이 비어 있습니다")

// NewErrVersionMismatch 현재 실행 중인 버전이 아닌 레코드를 저장하려 할 때 반환하는 에러를 생성합니다.
func NewErrVersionMismatch(recordVersion, currentVersion string) error {
	return apperrors.Newf(apperrors.InvalidInput, "현재 버전(%s)이 아닌 레코드(%s)는 저장할 수 없습니다", currentVersion, recordVersion)
}

// NewErrLoadFailed 저장소에서 레코드를 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrLoadFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "버전 레코드 조회 실패 (key: %s)", key)
}

// NewErrSaveFailed 저장소에 레코드를 쓰는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrSaveFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "버전 레코드 저장 실패 (key: %s)", key)
}
