package errs

import "errors"

var (
	InternalError = errors.New("internal error")

	// Validation failures, rejected before any executor call
	QuestionNotFound    = errors.New("question not found or has no active test cases")
	UnsupportedLanguage = errors.New("unsupported language")
	EmptyCode           = errors.New("source code is required")
	UnsafeCode          = errors.New("source code contains disallowed operations")

	// SubmissionNotRecorded means judging finished but the result could
	// not be committed. Distinct from judging failures so callers never
	// mistake a lost write for a wrong answer.
	SubmissionNotRecorded = errors.New("submission judged but not recorded")

	SubmissionNotFound = errors.New("submission not found")
)
