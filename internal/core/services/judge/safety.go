package judge

import (
	"strings"

	"gitlab.com/fcv-judge.net/internal/domain"
)

// Advisory deny-list of substrings that have no business in a judged
// solution: process spawning, shelling out, reaching into the host
// filesystem. This is surface-level defense in depth only; real isolation
// happens inside the remote sandbox.
var commonDenyList = []string{
	"/etc/passwd",
	"/etc/shadow",
	"/proc/self",
}

var languageDenyList = map[domain.Language][]string{
	domain.LanguageC: {
		"system(",
		"popen(",
		"execve(",
		"fork(",
	},
	domain.LanguageCpp: {
		"system(",
		"popen(",
		"execve(",
		"fork(",
	},
	domain.LanguageJava: {
		"Runtime.getRuntime",
		"ProcessBuilder",
		"System.exit",
	},
	domain.LanguagePython: {
		"os.system",
		"subprocess",
		"__import__",
		"shutil.rmtree",
	},
	domain.LanguageJavaScript: {
		"child_process",
		"process.exit",
	},
	domain.LanguageGo: {
		"os/exec",
		"syscall.Exec",
	},
}

// scanCode checks submitted code against the deny-list for its language.
// Returns the first offending token when the scan fails.
func scanCode(code string, language domain.Language) (string, bool) {
	for _, token := range commonDenyList {
		if strings.Contains(code, token) {
			return token, true
		}
	}
	for _, token := range languageDenyList[language] {
		if strings.Contains(code, token) {
			return token, true
		}
	}
	return "", false
}
