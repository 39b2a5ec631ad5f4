package log

const callerPathPrefix = "github.com/darkkaiser/whatsnew"

// NewProductionOptions 운영 환경용 로그 설정을 반환합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  20,
		MaxBackups: 5,

		EnableCriticalLog: true,
		EnableConsoleLog:  false,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}

// NewDevelopmentOptions 개발 환경용 로그 설정을 반환합니다.
// 파일 분리 없이 모든 로그를 터미널(Stderr)에도 출력합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  10,
		MaxBackups: 2,

		EnableCriticalLog: false,
		EnableConsoleLog:  true,

		ReportCaller:     true,
		CallerPathPrefix: callerPathPrefix,
	}
}
