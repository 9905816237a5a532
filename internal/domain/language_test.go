package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguageAcceptsSupportedSet(t *testing.T) {
	for _, lang := range SupportedLanguages() {
		parsed, ok := ParseLanguage(string(lang))
		assert.True(t, ok, "language %s", lang)
		assert.Equal(t, lang, parsed)
	}
}

func TestParseLanguageNormalizesInput(t *testing.T) {
	cases := map[string]Language{
		"Python":        LanguagePython,
		"  cpp  ":       LanguageCpp,
		"JAVASCRIPT":    LanguageJavaScript,
		"\tGo\n":        LanguageGo,
		" C ":           LanguageC,
	}
	for raw, want := range cases {
		parsed, ok := ParseLanguage(raw)
		assert.True(t, ok, "input %q", raw)
		assert.Equal(t, want, parsed, "input %q", raw)
	}
}

func TestParseLanguageRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "  ", "c++", "py", "rust", "golang", "java script"} {
		parsed, ok := ParseLanguage(raw)
		assert.False(t, ok, "input %q", raw)
		assert.Equal(t, Language(""), parsed)
	}
}
