package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/fcv-judge.net/internal/core/ports/primary"
	"gitlab.com/fcv-judge.net/internal/core/services/judge"
	"gitlab.com/fcv-judge.net/internal/handlers"
	"gitlab.com/fcv-judge.net/internal/handlers/response"
	"gitlab.com/fcv-judge.net/internal/static/errs"
)

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	judgeService judge.IJudgeService
	logger       primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(judgeService judge.IJudgeService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		judgeService: judgeService,
		logger:       logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.SubmitCode).Methods("POST")
	router.HandleFunc("/api/submissions/run", h.RunCode).Methods("POST")
	router.HandleFunc("/api/submissions/{submissionId}", h.GetSubmission).Methods("GET")
	router.HandleFunc("/api/submissions/{submissionId}/status", h.GetJudgePhase).Methods("GET")
}

// SubmitCode handles submission requests
func (h *SubmissionHandler) SubmitCode(w http.ResponseWriter, r *http.Request) {
	var req SubmitCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	userID := handlers.UserID(r.Context())
	submission, results, err := h.judgeService.SubmitCode(r.Context(), userID, req.QuestionID, req.Code, req.Language)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteStatus(w, http.StatusCreated, newSubmissionResponse(submission, results))
}

// RunCode handles dry-run requests against custom input
func (h *SubmissionHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	var req RunCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request", StatusCode: http.StatusBadRequest})
		return
	}

	userID := handlers.UserID(r.Context())
	outcome, err := h.judgeService.RunCode(r.Context(), userID, req.QuestionID, req.Code, req.Language, req.CustomInput)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, newRunCodeResponse(outcome))
}

// GetSubmission handles submission retrieval requests
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.parseSubmissionID(w, r)
	if !ok {
		return
	}

	submission, results, err := h.judgeService.GetSubmission(r.Context(), submissionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	response.WriteSuccess(w, newSubmissionResponse(submission, results))
}

// GetJudgePhase handles live judging status requests
func (h *SubmissionHandler) GetJudgePhase(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := h.parseSubmissionID(w, r)
	if !ok {
		return
	}

	phase, err := h.judgeService.GetJudgePhase(r.Context(), submissionID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if phase == "" {
		response.WriteError(w, response.ErrorMessage{Message: "No judging status available", StatusCode: http.StatusNotFound})
		return
	}

	response.WriteSuccess(w, JudgePhaseResponse{SubmissionID: submissionID, Phase: string(phase)})
}

func (h *SubmissionHandler) parseSubmissionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	idStr := vars["submissionId"]
	submissionID, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", idStr)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid submission ID", StatusCode: http.StatusBadRequest})
		return uuid.Nil, false
	}
	return submissionID, true
}

// writeServiceError maps pipeline errors to HTTP responses. Messages stay
// generic; internal identifiers and wrapped causes never leak to callers.
func (h *SubmissionHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.QuestionNotFound), errors.Is(err, errs.SubmissionNotFound):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound})
	case errors.Is(err, errs.UnsupportedLanguage), errors.Is(err, errs.EmptyCode), errors.Is(err, errs.UnsafeCode):
		response.WriteError(w, response.ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest})
	case errors.Is(err, errs.SubmissionNotRecorded):
		h.logger.Error("Submission judged but not recorded", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: errs.SubmissionNotRecorded.Error(), StatusCode: http.StatusInternalServerError})
	default:
		h.logger.Error("Judge service failure", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Internal error", StatusCode: http.StatusInternalServerError})
	}
}
