package domain

import "strings"

// Language identifies a programming language a submission may be written in
type Language string

const (
	LanguageC          Language = "c"
	LanguageCpp        Language = "cpp"
	LanguageJava       Language = "java"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageGo         Language = "go"
)

var supportedLanguages = map[Language]bool{
	LanguageC:          true,
	LanguageCpp:        true,
	LanguageJava:       true,
	LanguagePython:     true,
	LanguageJavaScript: true,
	LanguageGo:         true,
}

// ParseLanguage validates a caller-supplied language identifier. Unknown
// values are rejected rather than silently substituted, so internal
// executor identifiers never leak into verdicts for a language the user
// did not pick.
func ParseLanguage(s string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	if !supportedLanguages[lang] {
		return "", false
	}
	return lang, true
}

// SupportedLanguages lists every language the pipeline accepts
func SupportedLanguages() []Language {
	return []Language{
		LanguageC,
		LanguageCpp,
		LanguageJava,
		LanguagePython,
		LanguageJavaScript,
		LanguageGo,
	}
}
