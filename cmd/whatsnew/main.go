package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/whatsnew/internal/config"
	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote"
	"github.com/darkkaiser/whatsnew/internal/releasenote/fetcher"
	"github.com/darkkaiser/whatsnew/internal/store"
	applog "github.com/darkkaiser/whatsnew/pkg/log"
	"github.com/spf13/pflag"
)

const component = "main"

// options 명령행 인자로 지정된 실행 옵션입니다.
type options struct {
	configFile string

	show  bool
	reset bool
	info  bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	fs.StringVarP(&opts.configFile, "config", "c", config.DefaultFilename, "설정 파일 경로")
	fs.BoolVarP(&opts.show, "show", "s", false, "안내 상태와 관계없이 릴리즈 노트를 출력합니다")
	fs.BoolVar(&opts.reset, "reset", false, "현재 버전의 안내 상태를 초기화합니다")
	fs.BoolVarP(&opts.info, "info", "i", false, "빌드 정보와 저장소 링크를 출력합니다")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	n := 0
	for _, set := range []bool{opts.show, opts.reset, opts.info} {
		if set {
			n++
		}
	}
	if n > 1 {
		return options{}, fmt.Errorf("--show, --reset, --info 옵션은 함께 사용할 수 없습니다")
	}

	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(opts.configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	logOpts.Dir = appConfig.Log.Dir
	logOpts.MaxAge = appConfig.Log.MaxAge

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		os.Exit(1)
	}

	applog.SetDebugMode(appConfig.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err = run(ctx, appConfig, opts, os.Stdout)

	stop()
	appLogCloser.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// run 설정에 따라 저장소와 릴리즈 조회기를 구성하고 요청된 동작을 수행합니다.
func run(ctx context.Context, appConfig *config.AppConfig, opts options, w io.Writer) error {
	identity := version.Get().WithRepository(appConfig.Release.Repository())

	fields := applog.Fields(identity.ToMap())
	fields["backend"] = appConfig.Storage.Backend
	fields["api"] = identity.ReleaseAPIURL()
	fields["token"] = applog.MaskSensitiveData(appConfig.Release.Token)
	applog.WithComponentAndFields(component, fields).Debug("실행 시작")

	if opts.info {
		printInfo(w, identity)
		return nil
	}

	s, err := store.Open(ctx, appConfig.Storage.StoreConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	source := fetcher.NewReleaseFetcher(fetcher.New(appConfig.Release.FetcherConfig(appConfig.Debug)), appConfig.Release.Token)
	m := releasenote.New(identity, s, source, releasenote.WithNamespace(appConfig.Release.Namespace))

	return execute(ctx, m, opts, w)
}

func execute(ctx context.Context, m *releasenote.Manager, opts options, w io.Writer) error {
	switch {
	case opts.reset:
		m.ResetPrompt(ctx)
		fmt.Fprintf(w, "v%s 안내 상태를 초기화했습니다.\n", m.Identity().Version)
		return nil

	case opts.show:
		printReleaseNotes(ctx, m, w)
		return nil
	}

	need, err := m.NeedsPrompt(ctx)
	if err != nil {
		return err
	}
	if !need {
		return nil
	}

	// 본문을 보여주지 못했으면 다음 실행에서 다시 시도한다.
	if !printReleaseNotes(ctx, m, w) {
		return nil
	}

	_, err = m.MarkPrompted(ctx)

	return err
}

// printReleaseNotes 릴리즈 노트를 출력하고, 본문을 출력했는지 여부를 반환합니다.
func printReleaseNotes(ctx context.Context, m *releasenote.Manager, w io.Writer) bool {
	identity := m.Identity()

	res := m.FetchReleaseMarkdown(ctx)
	if res.Err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"source": res.Source.String(),
			"error":  res.Err,
		}).Warn("릴리즈 노트를 원격에서 갱신하지 못했습니다")
	}

	if !res.Found() {
		fmt.Fprintf(w, "v%s 릴리즈 노트를 가져오지 못했습니다. %s\n", identity.Version, identity.ReleaseURL())
		return false
	}

	fmt.Fprintf(w, "What's new in v%s (%s)\n\n%s\n", identity.Version, identity.ReleaseDate, res.Markdown)
	if res.Source == releasenote.SourceCache {
		fmt.Fprintln(w, "\n(오프라인: 마지막으로 저장된 릴리즈 노트입니다)")
	}

	return true
}

func printInfo(w io.Writer, identity version.Identity) {
	fmt.Fprintf(w, "%s %s\n", config.AppName, identity.String())
	fmt.Fprintf(w, "  platform:   %s/%s\n", identity.OS, identity.Arch)
	fmt.Fprintf(w, "  repository: %s\n", identity.RepoURL())
	fmt.Fprintf(w, "  readme:     %s\n", identity.ReadmeURL())
	fmt.Fprintf(w, "  issues:     %s\n", identity.IssuesURL())
	fmt.Fprintf(w, "  wiki:       %s\n", identity.WikiURL())
	fmt.Fprintf(w, "  release:    %s\n", identity.ReleaseURL())
}
