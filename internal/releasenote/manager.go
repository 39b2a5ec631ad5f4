// Package releasenote 실행 중인 버전의 레코드를 관리하고, 릴리즈 노트를 원격 API에서 가져오거나
// 로컬 캐시에서 대체하여 제공합니다.
//
// 레코드는 버전마다 하나씩 저장소에 보관되며, 처음 관찰된 버전은 빌드 정보로 초기 레코드가 만들어집니다.
// 릴리즈 노트 조회는 원격 API를 먼저 시도하고, 실패하면 마지막으로 저장된 본문을 반환합니다.
//
//	m := releasenote.New(version.Get(), s, fetcher.NewReleaseFetcher(fetcher.New(cfg), token))
//	if need, _ := m.NeedsPrompt(ctx); need {
//	    if res := m.FetchReleaseMarkdown(ctx); res.Found() {
//	        show(res.Markdown)
//	    }
//	    m.MarkPrompted(ctx)
//	}
package releasenote

import (
	"context"

	"github.com/darkkaiser/whatsnew/internal/pkg/version"
	"github.com/darkkaiser/whatsnew/internal/releasenote/fetcher"
	"github.com/darkkaiser/whatsnew/internal/releasenote/record"
	"github.com/darkkaiser/whatsnew/internal/store"
	applog "github.com/darkkaiser/whatsnew/pkg/log"
)

// component 릴리즈 노트 관리자 로깅용 컴포넌트 이름
const component = "releasenote"

// ReleaseSource 릴리즈 API URL로부터 릴리즈 정보를 가져오는 인터페이스입니다.
// 실패 시 *fetcher.FetchError를 반환합니다.
type ReleaseSource interface {
	Fetch(ctx context.Context, url string) (*fetcher.ReleaseInfo, error)
}

var _ ReleaseSource = (*fetcher.ReleaseFetcher)(nil)

// Manager 현재 버전의 레코드와 릴리즈 노트를 관리합니다.
//
// Manager는 레코드를 메모리에 보관하지 않으며, 모든 연산은 저장소를 기준으로 수행됩니다.
// 프로세스 간 동시 접근은 조정하지 않습니다.
type Manager struct {
	identity  version.Identity
	namespace string

	store  store.Store
	source ReleaseSource
}

// Option Manager의 동작을 설정하는 함수입니다.
type Option func(*Manager)

// WithNamespace 저장 키의 접두어를 지정합니다. 빈 문자열이면 기본값을 유지합니다.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// New 빌드 정보, 저장소, 릴리즈 조회 구현체로 Manager를 생성합니다.
func New(identity version.Identity, s store.Store, source ReleaseSource, opts ...Option) *Manager {
	m := &Manager{
		identity:  identity,
		namespace: record.DefaultNamespace,
		store:     s,
		source:    source,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// newRecord 빌드 정보로 버전별 초기 레코드를 생성합니다.
// 안내 여부(HasPrompt)는 false, 릴리즈 노트는 비어 있는 상태로 시작합니다.
func newRecord(identity version.Identity) record.Record {
	return record.Record{
		Version:     identity.Version,
		BuildNumber: identity.BuildNumber,
		ReleaseDate: identity.ReleaseDate,
		NeedPrompt:  identity.NeedPrompt,
	}
}

// Identity 현재 빌드 정보를 반환합니다.
func (m *Manager) Identity() version.Identity {
	return m.identity
}

// Key 현재 버전 레코드의 저장 키를 반환합니다.
func (m *Manager) Key() string {
	return record.VersionKey(m.namespace, m.identity.Version)
}

func (m *Manager) logger() *applog.Entry {
	return applog.WithComponentAndFields(component, applog.Fields{
		"key":     m.Key(),
		"version": m.identity.Version,
	})
}

// CurrentStoredRecord 현재 버전의 저장된 레코드를 반환합니다.
//
// 저장된 레코드가 없으면 빌드 정보로 초기 레코드를 만들어 저장한 뒤 반환합니다.
// 해석할 수 없거나 다른 버전의 값이 저장되어 있으면 없는 것으로 보고 초기 레코드로 덮어씁니다.
// 저장소 장애는 그대로 반환됩니다.
func (m *Manager) CurrentStoredRecord(ctx context.Context) (record.Record, error) {
	key := m.Key()

	value, found, err := m.store.Get(ctx, key)
	if err != nil {
		return record.Record{}, NewErrLoadFailed(err, key)
	}

	if found {
		rec, err := record.Decode(value)
		switch {
		case err != nil:
			m.logger().WithField("error", err).Warn("저장된 버전 레코드를 해석할 수 없어 초기 레코드로 대체합니다")
		case rec.Version != m.identity.Version:
			m.logger().WithField("stored_version", rec.Version).Warn("저장된 버전 레코드의 버전이 일치하지 않아 초기 레코드로 대체합니다")
		default:
			return rec, nil
		}
	}

	rec := newRecord(m.identity)
	if err := m.StoreRecord(ctx, rec); err != nil {
		return record.Record{}, err
	}

	m.logger().WithFields(applog.Fields{
		"build_number": rec.BuildNumber,
		"need_prompt":  rec.NeedPrompt,
	}).Info("새 버전의 초기 레코드를 저장했습니다")

	return rec, nil
}

// StoreRecord 레코드를 현재 버전의 키에 저장합니다. 기존 값은 무조건 덮어씁니다.
// 현재 버전이 아닌 레코드는 InvalidInput 에러로 거부합니다.
func (m *Manager) StoreRecord(ctx context.Context, rec record.Record) error {
	if rec.Version != m.identity.Version {
		return NewErrVersionMismatch(rec.Version, m.identity.Version)
	}

	value, err := record.Encode(rec)
	if err != nil {
		return err
	}

	key := m.Key()
	if err := m.store.Set(ctx, key, value); err != nil {
		return NewErrSaveFailed(err, key)
	}

	return nil
}

// RemoveCurrentRecord 현재 버전의 레코드를 삭제합니다.
// 실패는 로그로만 남기며 호출자에게 전달하지 않습니다.
func (m *Manager) RemoveCurrentRecord(ctx context.Context) {
	if err := m.store.Remove(ctx, m.Key()); err != nil {
		m.logger().WithField("error", err).Warn("버전 레코드 삭제 실패")
		return
	}

	m.logger().Debug("버전 레코드를 삭제했습니다")
}

// NeedsPrompt 현재 버전의 릴리즈 노트를 사용자에게 안내해야 하는지 확인합니다.
// 안내가 필요한 버전이면서 아직 안내하지 않은 경우에만 true입니다.
func (m *Manager) NeedsPrompt(ctx context.Context) (bool, error) {
	rec, err := m.CurrentStoredRecord(ctx)
	if err != nil {
		return false, err
	}

	return rec.NeedsPrompt(), nil
}

// MarkPrompted 현재 버전을 안내 완료 상태로 전환하고 갱신된 레코드를 반환합니다.
// 이미 안내 완료 상태이면 저장소에 쓰지 않습니다. 안내 완료 상태는 되돌아가지 않습니다.
func (m *Manager) MarkPrompted(ctx context.Context) (record.Record, error) {
	rec, err := m.CurrentStoredRecord(ctx)
	if err != nil {
		return record.Record{}, err
	}

	if rec.HasPrompt {
		return rec, nil
	}

	rec.HasPrompt = true
	if err := m.StoreRecord(ctx, rec); err != nil {
		return record.Record{}, err
	}

	m.logger().Info("릴리즈 노트 안내 완료 상태로 전환했습니다")

	return rec, nil
}

// ResetPrompt 현재 버전의 레코드를 삭제하여 다음 확인 시 다시 안내되도록 합니다.
func (m *Manager) ResetPrompt(ctx context.Context) {
	m.RemoveCurrentRecord(ctx)
}
