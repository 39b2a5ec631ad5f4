package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/whatsnew/internal/pkg/errors"
	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote/record"
	"github.com/darkkaiser/whatsnew/internal/store"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "whatsnew"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 사용하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정 파일 값을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: WHATSNEW_RELEASE__TOKEN -> release.token
	EnvPrefix = "WHATSNEW_"

	// ------------------------------------------------------------------------------------------------
	// 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultLogDir 로그 파일이 저장될 기본 디렉토리
	DefaultLogDir = "logs"

	// DefaultLogMaxAge 로그 파일 보관 기간 기본값 (일)
	DefaultLogMaxAge = 30

	// DefaultStorageDir file 백엔드의 기본 데이터 디렉토리
	DefaultStorageDir = "data"

	// DefaultReleaseTimeout 릴리즈 API 요청 제한 시간 기본값
	DefaultReleaseTimeout = 10 * time.Second

	// DefaultRateLimitInterval 릴리즈 API 요청 사이의 최소 간격 기본값
	DefaultRateLimitInterval = time.Second
)

// AppConfig 애플리케이션의 모든 설정을 담는 최상위 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	Log     LogConfig     `json:"log"`
	Release ReleaseConfig `json:"release"`
	Storage StorageConfig `json:"storage"`
}

// validate 설정 파일 로드 직후 각 설정 항목의 정합성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Log.validate(); err != nil {
		return err
	}

	if err := c.Release.validate(); err != nil {
		return err
	}

	if err := c.Storage.validate(); err != nil {
		return err
	}

	return nil
}

// newDefaultConfig 설정 파일에 값이 없을 때 적용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Log: LogConfig{
			Dir:    DefaultLogDir,
			MaxAge: DefaultLogMaxAge,
		},
		Release: ReleaseConfig{
			Namespace:         record.DefaultNamespace,
			WebHost:           version.DefaultWebHost,
			APIHost:           version.DefaultAPIHost,
			Owner:             version.DefaultOwner,
			Repo:              version.DefaultRepo,
			Timeout:           DefaultReleaseTimeout,
			RateLimitInterval: DefaultRateLimitInterval,
		},
		Storage: StorageConfig{
			Backend: string(store.BackendFile),
			Dir:     DefaultStorageDir,
		},
	}
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 AppConfig 객체를 생성합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 토큰, 비밀번호처럼 설정 파일에 두기 어려운 값을 주입하는 용도입니다.
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 파일에 있으면 에러
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 설정 키로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)로 바뀝니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
