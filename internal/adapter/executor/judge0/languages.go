package judge0

import "gitlab.com/fcv-judge.net/internal/domain"

// languageIDs maps logical languages to the executor's numeric language
// identifiers. The pipeline validates languages before requests are built,
// so the fallback below is defense in depth, not an expected path.
var languageIDs = map[domain.Language]int{
	domain.LanguageC:          50,
	domain.LanguageCpp:        54,
	domain.LanguageJava:       62,
	domain.LanguageJavaScript: 63,
	domain.LanguagePython:     71,
	domain.LanguageGo:         60,
}

// defaultLanguageID is what an unmapped language degrades to rather than
// leaking an invalid identifier to the executor.
var defaultLanguageID = languageIDs[domain.LanguagePython]

// languageID resolves a logical language to the executor's identifier
func languageID(lang domain.Language) int {
	if id, ok := languageIDs[lang]; ok {
		return id
	}
	return defaultLanguageID
}
