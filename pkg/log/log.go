// Package log logrus 기반의 구조화 로깅 헬퍼를 제공합니다.
//
// 모든 패키지는 자신의 컴포넌트 이름으로 로그 Entry를 만들어 사용합니다.
//
//	const component = "releasenote.manager"
//
//	applog.WithComponentAndFields(component, applog.Fields{
//	    "version": "1.1.0",
//	}).Info("릴리즈 노트 조회 완료")
package log

import (
	"github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// SetDebugMode Debug 모드면 Trace 레벨, 아니면 Info 레벨로 전역 로그 레벨을 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// MaskSensitiveData 토큰 등 민감한 문자열을 앞뒤 일부만 남기고 마스킹합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	if len(data) <= 3 {
		return "***"
	}

	if len(data) <= 12 {
		return data[:4] + "***"
	}

	return data[:4] + "***" + data[len(data)-4:]
}
