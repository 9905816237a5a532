package domain

// ExecutionStatus classifies the outcome of one executor run
type ExecutionStatus string

const (
	StatusAccepted            ExecutionStatus = "ACCEPTED"
	StatusWrongAnswer         ExecutionStatus = "WRONG_ANSWER"
	StatusTimeLimitExceeded   ExecutionStatus = "TIME_LIMIT_EXCEEDED"
	StatusMemoryLimitExceeded ExecutionStatus = "MEMORY_LIMIT_EXCEEDED"
	StatusRuntimeError        ExecutionStatus = "RUNTIME_ERROR"
	StatusCompilationError    ExecutionStatus = "COMPILATION_ERROR"
	StatusInternalError       ExecutionStatus = "INTERNAL_ERROR"
)

// Verdict maps a per-case status to its submission-level counterpart
func (s ExecutionStatus) Verdict() Verdict {
	switch s {
	case StatusAccepted:
		return VerdictAccepted
	case StatusWrongAnswer:
		return VerdictWrongAnswer
	case StatusTimeLimitExceeded:
		return VerdictTimeLimitExceeded
	case StatusMemoryLimitExceeded:
		return VerdictMemoryLimitExceeded
	case StatusRuntimeError:
		return VerdictRuntimeError
	case StatusCompilationError:
		return VerdictCompilationError
	default:
		return VerdictInternalError
	}
}

// ExecutionRequest is the value object handed to the execution client for
// one test case run. Built fresh per case, never persisted.
type ExecutionRequest struct {
	SourceCode    string
	Language      Language
	Stdin         string
	TimeLimitMs   int64
	MemoryLimitMB int64
}

// ExecutionOutcome is what the execution client always returns, even on
// transport failure. Memory is normalized to kilobytes, time to
// milliseconds.
type ExecutionOutcome struct {
	Status        ExecutionStatus
	Stdout        string
	Stderr        string
	CompileOutput string
	TimeMs        int64
	MemoryKB      int64
	ErrorMessage  string
}
