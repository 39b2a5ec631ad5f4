package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (잘못된 상태 전이, 버그 등)
	Internal

	// System 저장소, 파일, 데이터베이스 등 인프라 계층의 장애
	System

	// InvalidInput 설정값 또는 호출 인자 검증 실패
	InvalidInput

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 외부 API 호출 등 작업 수행 실패
	ExecutionFailed

	// ParsingFailed JSON 디코딩 등 데이터 해석 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 네트워크 단절, 서버 과부하 등 일시적인 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
