package store

import (
	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 파일 경로 생성 시 경로 이탈 시도가 감지되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrStoreClosed 이미 닫힌 저장소를 사용하려 할 때 반환하는 에러입니다.
	ErrStoreClosed = apperrors.New(apperrors.System, "저장소가 이미 닫혔습니다")

	// ErrEmptyKey 빈 키로 저장소에 접근하려 할 때 반환하는 에러입니다.
	ErrEmptyKey = apperrors.New(apperrors.InvalidInput, "저장소 키가 비어 있습니다")
)

// NewErrUnknownBackend 지원하지 않는 저장소 종류가 지정되었을 때 반환하는 에러를 생성합니다.
func NewErrUnknownBackend(backend Backend) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 저장소 종류입니다 (backend: %q)", backend)
}

// NewErrOpenFailed 저장소를 여는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrOpenFailed(err error, backend Backend) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 초기화 실패 (backend: %s)", backend)
}

// NewErrPathResolutionFailed 파일 경로 해석에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

// NewErrDirectoryAccessFailed 저장 디렉토리 생성 또는 접근에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir)
}

// NewErrReadFailed 값을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrReadFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 조회 실패 (key: %s)", key)
}

// NewErrWriteFailed 값을 쓰는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrWriteFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 쓰기 실패 (key: %s)", key)
}

// NewErrRemoveFailed 값을 삭제하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrRemoveFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "저장소 삭제 실패 (key: %s)", key)
}
