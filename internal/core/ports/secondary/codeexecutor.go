package secondary

import (
	"context"

	"gitlab.com/fcv-judge.net/internal/domain"
)

type CodeExecutor interface {
	// Execute runs one request against the remote sandbox and always
	// returns a structured outcome. Transport failures, bad response
	// bodies and unknown executor statuses come back as outcomes with
	// StatusInternalError; this call never returns an error so a single
	// flaky test case cannot abort a whole submission.
	Execute(ctx context.Context, req *domain.ExecutionRequest) *domain.ExecutionOutcome
}
