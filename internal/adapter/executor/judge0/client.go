// Package judge0 adapts execution requests onto a Judge0-compatible
// sandbox service.
package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gitlab.com/fcv-judge.net/internal/config"
	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/ports/secondary"
	"gitlab.com/fcv-judge.net/internal/domain"
)

var _ secondary.CodeExecutor = (*ExecutionClient)(nil)

// wallClockMargin is added to the CPU limit to obtain the wall limit, so
// scheduling jitter in the sandbox does not kill slow-starting but correct
// programs.
const wallClockMargin = 2 * time.Second

const retryBackoff = 200 * time.Millisecond

// ExecutionClient implements the CodeExecutor port against a remote
// Judge0-compatible HTTP API. One shared *http.Client serves every
// invocation; the client itself holds no per-request state.
type ExecutionClient struct {
	cfg        *config.ExecutorConfig
	httpClient *http.Client
	logger     primary.Logger
}

// NewExecutionClient creates a new execution client
func NewExecutionClient(cfg *config.ExecutorConfig, logger primary.Logger) *ExecutionClient {
	return &ExecutionClient{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// submissionRequest is the executor's wire format. Source and stdin travel
// base64 encoded; the CPU limit is seconds, memory is kilobytes.
type submissionRequest struct {
	SourceCode    string  `json:"source_code"`
	LanguageID    int     `json:"language_id"`
	Stdin         string  `json:"stdin"`
	CPUTimeLimit  float64 `json:"cpu_time_limit"`
	WallTimeLimit float64 `json:"wall_time_limit"`
	MemoryLimit   int64   `json:"memory_limit"`
}

type submissionResponse struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Message       string `json:"message"`
	Time          string `json:"time"`
	Memory        int64  `json:"memory"`
	Status        struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

// Execute runs one request against the executor. Always returns an
// outcome: every failure mode degrades into StatusInternalError with a
// readable message.
func (c *ExecutionClient) Execute(ctx context.Context, req *domain.ExecutionRequest) *domain.ExecutionOutcome {
	body, err := c.encodeRequest(req)
	if err != nil {
		return internalOutcome(fmt.Sprintf("failed to encode execution request: %v", err))
	}

	resp, err := c.send(ctx, body)
	if err != nil {
		c.logger.Error("Executor call failed", "error", err)
		return internalOutcome("code execution service unavailable")
	}

	return c.decodeResponse(resp)
}

func (c *ExecutionClient) encodeRequest(req *domain.ExecutionRequest) ([]byte, error) {
	cpuLimit := float64(req.TimeLimitMs) / 1000
	wire := submissionRequest{
		SourceCode:    base64.StdEncoding.EncodeToString([]byte(req.SourceCode)),
		LanguageID:    languageID(req.Language),
		Stdin:         base64.StdEncoding.EncodeToString([]byte(req.Stdin)),
		CPUTimeLimit:  cpuLimit,
		WallTimeLimit: cpuLimit + wallClockMargin.Seconds(),
		MemoryLimit:   req.MemoryLimitMB * 1024,
	}
	return json.Marshal(wire)
}

// send posts the request with bounded retries on transport failures and
// executor-side 5xx responses. 4xx responses are not retried; the request
// will not get better.
func (c *ExecutionClient) send(ctx context.Context, body []byte) (*submissionResponse, error) {
	url := c.cfg.BaseURL + "/submissions?base64_encoded=true&wait=true"

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff << (attempt - 1)):
			}
			c.logger.Warn("Retrying executor call", "attempt", attempt)
		}

		resp, retryable, err := c.sendOnce(ctx, url, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *ExecutionClient) sendOnce(ctx context.Context, url string, body []byte) (*submissionResponse, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.AuthToken != "" {
		httpReq.Header.Set("X-Auth-Token", c.cfg.AuthToken)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, true, fmt.Errorf("executor request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 500 {
		io.Copy(io.Discard, httpResp.Body)
		return nil, true, fmt.Errorf("executor returned status %d", httpResp.StatusCode)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		io.Copy(io.Discard, httpResp.Body)
		return nil, false, fmt.Errorf("executor returned status %d", httpResp.StatusCode)
	}

	var resp submissionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, false, fmt.Errorf("failed to decode executor response: %w", err)
	}
	return &resp, false, nil
}

func (c *ExecutionClient) decodeResponse(resp *submissionResponse) *domain.ExecutionOutcome {
	outcome := &domain.ExecutionOutcome{
		Status:        mapStatus(resp.Status.ID),
		Stdout:        decodeField(resp.Stdout),
		Stderr:        decodeField(resp.Stderr),
		CompileOutput: decodeField(resp.CompileOutput),
		MemoryKB:      resp.Memory,
	}

	if resp.Time != "" {
		if seconds, err := strconv.ParseFloat(resp.Time, 64); err == nil {
			outcome.TimeMs = int64(seconds * 1000)
		}
	}

	if outcome.Status == domain.StatusInternalError {
		outcome.ErrorMessage = resp.Message
		if outcome.ErrorMessage == "" {
			outcome.ErrorMessage = fmt.Sprintf("executor reported status %d (%s)", resp.Status.ID, resp.Status.Description)
		}
	}
	return outcome
}

// decodeField decodes a base64 payload, falling back to the raw text when
// the executor hands back something undecodable. Decoding never hard-fails.
func decodeField(s string) string {
	if s == "" {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}

func internalOutcome(msg string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{
		Status:       domain.StatusInternalError,
		ErrorMessage: msg,
	}
}
