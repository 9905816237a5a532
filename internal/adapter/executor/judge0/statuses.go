package judge0

import "gitlab.com/fcv-judge.net/internal/domain"

// statusTable maps the executor's numeric status codes to the pipeline's
// closed status enumeration. Codes 7 through 12 are the executor's signal
// and exit-code flavored runtime failures; they all collapse to a single
// runtime error here. Codes missing from this table (including the
// executor's queueing states, which never appear on a synchronous call)
// degrade to an internal error instead of crashing the pipeline or
// passing as accepted.
var statusTable = map[int]domain.ExecutionStatus{
	3:  domain.StatusAccepted,
	4:  domain.StatusWrongAnswer,
	5:  domain.StatusTimeLimitExceeded,
	6:  domain.StatusCompilationError,
	7:  domain.StatusRuntimeError, // SIGSEGV
	8:  domain.StatusRuntimeError, // SIGXFSZ
	9:  domain.StatusRuntimeError, // SIGFPE
	10: domain.StatusRuntimeError, // SIGABRT
	11: domain.StatusRuntimeError, // non-zero exit
	12: domain.StatusRuntimeError, // other signal
	13: domain.StatusInternalError,
	14: domain.StatusRuntimeError, // exec format error
	15: domain.StatusMemoryLimitExceeded,
}

// mapStatus resolves an executor status code, degrading unknown codes to
// an internal error
func mapStatus(code int) domain.ExecutionStatus {
	if status, ok := statusTable[code]; ok {
		return status
	}
	return domain.StatusInternalError
}
