package store

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// maxNameBytes 파일명에 포함되는 가독성용 키 부분의 최대 바이트 길이입니다.
const maxNameBytes = 80

// filenameReplacer 파일 시스템에서 문제를 일으킬 수 있는 문자를 하이픈으로 치환합니다.
// 경로 구분자와 상위 디렉토리 표기, Windows 예약 문자가 대상입니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// generateFilename 저장 키로부터 파일명을 생성합니다.
//
// 사람이 읽을 수 있는 Kebab-Case 이름 뒤에 원본 키의 FNV-64 해시를 붙여,
// 정제 과정에서 서로 다른 키가 같은 이름이 되는 경우와 대소문자 비구분 파일 시스템에서의 충돌을 막습니다.
//
//	generateFilename("EasydictVersionInfoKey-1.1.0") // "wn-easydict-version-info-key-1-1-0-{16자리 해시}.json"
func generateFilename(key string) string {
	name := truncateByBytes(sanitizeName(key), maxNameBytes)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(key))

	return fmt.Sprintf("wn-%s-%016x.json", name, hasher.Sum64())
}

// sanitizeName 파일명으로 안전하게 사용할 수 있도록 문자열을 정제합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// 제어 문자(0x00-0x1F)와 DEL(0x7F)은 일부 파일 시스템이 허용하지 않습니다.
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes 문자열을 UTF-8 문자 경계를 지키면서 limit 바이트 이하로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	var n int
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > limit {
			break
		}
		n += size
	}

	return s[:n]
}
