// Package handler 提供API处理器
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kron12345/coreplanx/internal/metrics"
	"github.com/kron12345/coreplanx/pkg/errors"
	"github.com/kron12345/coreplanx/pkg/logger"
	"github.com/kron12345/coreplanx/pkg/model"
	"github.com/kron12345/coreplanx/pkg/planner"
)

// SolveHandler 求解API处理器
type SolveHandler struct {
	planner *planner.Planner
}

// NewSolveHandler 创建求解处理器
func NewSolveHandler(p *planner.Planner) *SolveHandler {
	return &SolveHandler{planner: p}
}

// Solve 处理 POST /solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendError(w, errors.New(errors.CodeMethodNotAllowed, "仅支持POST"))
		return
	}

	var req model.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, errors.Wrap(err, errors.CodeInvalidInput, "请求体解析失败").WithDetails(err.Error()))
		return
	}

	if req.RulesetID == "" {
		sendError(w, errors.InvalidInput("rulesetId", "不能为空"))
		return
	}

	mode := "candidates"
	if req.HasProblem() {
		mode = "problem"
	}

	log := logger.WithContext(r.Context())
	log.Info().
		Str("ruleset_id", req.RulesetID).
		Str("ruleset_version", req.RulesetVersion).
		Str("mode", mode).
		Int("candidates", len(req.Candidates)).
		Msg("接收求解请求")

	start := time.Now()
	resp := h.planner.Solve(r.Context(), &req)
	metrics.RecordSolve(mode, resp.Status, resp.Stats.TotalCandidates, time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("响应序列化失败")
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health 处理 GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Service: "coreplanx"})
}

// errorBody 错误响应体
type errorBody struct {
	Error   bool        `json:"error"`
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Details string      `json:"details,omitempty"`
}

// sendError 输出统一错误响应
func sendError(w http.ResponseWriter, err *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus)
	json.NewEncoder(w).Encode(errorBody{
		Error:   true,
		Code:    err.Code,
		Message: err.Message,
		Details: err.Details,
	})
}
