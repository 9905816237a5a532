package domain

// Verdict represents the final submission-level judging outcome
type Verdict string

const (
	VerdictAccepted            Verdict = "ACCEPTED"
	VerdictWrongAnswer         Verdict = "WRONG_ANSWER"
	VerdictTimeLimitExceeded   Verdict = "TIME_LIMIT_EXCEEDED"
	VerdictMemoryLimitExceeded Verdict = "MEMORY_LIMIT_EXCEEDED"
	VerdictRuntimeError        Verdict = "RUNTIME_ERROR"
	VerdictCompilationError    Verdict = "COMPILATION_ERROR"
	VerdictInternalError       Verdict = "INTERNAL_ERROR"
)

// JudgeSummary is the reduction of a result set into one verdict plus
// aggregate figures. TimeMs and MemoryKB are worst-case observations
// across the result set, not sums.
type JudgeSummary struct {
	Verdict  Verdict
	Score    int
	TimeMs   int64
	MemoryKB int64
	// Message carries the compile diagnostic or a generic failure note,
	// empty for clean verdicts.
	Message string
}
