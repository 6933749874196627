// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/youban/youban/internal/metrics"
	"github.com/youban/youban/pkg/engine"
	"github.com/youban/youban/pkg/errors"
	"github.com/youban/youban/pkg/model"
	"github.com/youban/youban/pkg/optimizer"
)

// OptimizeHandler 优化请求处理器
type OptimizeHandler struct {
	engine      *engine.Engine
	validate    *validator.Validate
	defaultOpts engine.Options
}

// NewOptimizeHandler 创建优化处理器
// defaults 作为请求未指定选项时的兜底值
func NewOptimizeHandler(eng *engine.Engine, defaults engine.Options) *OptimizeHandler {
	return &OptimizeHandler{
		engine:      eng,
		validate:    validator.New(),
		defaultOpts: defaults,
	}
}

// OptimizeRequest 优化API请求
type OptimizeRequest struct {
	Staff       []*model.StaffMember   `json:"staff" validate:"dive"`
	Demand      []*model.DemandSlot    `json:"demand" validate:"dive"`
	Weights     *WeightsInput          `json:"weights,omitempty"`
	Constraints *ConstraintsInput      `json:"constraints,omitempty"`
	Options     *OptionsInput          `json:"options,omitempty"`
}

// WeightsInput 目标权重覆盖
type WeightsInput struct {
	Cost         float64 `json:"cost" validate:"gte=0,lte=1"`
	Coverage     float64 `json:"coverage" validate:"gte=0,lte=1"`
	Overtime     float64 `json:"overtime" validate:"gte=0,lte=1"`
	Satisfaction float64 `json:"satisfaction" validate:"gte=0,lte=1"`
}

// ConstraintsInput 约束覆盖
type ConstraintsInput struct {
	MinStaffPerShift     int                 `json:"min_staff_per_shift,omitempty" validate:"gte=0"`
	MaxStaffPerShift     int                 `json:"max_staff_per_shift,omitempty" validate:"gte=0"`
	MaxConsecutiveShifts int                 `json:"max_consecutive_shifts,omitempty" validate:"gte=0"`
	MinRestHours         float64             `json:"min_rest_hours,omitempty" validate:"gte=0"`
	MaxWeeklyHours       float64             `json:"max_weekly_hours,omitempty" validate:"gte=0"`
	SkillRequirements    map[string][]string `json:"skill_requirements,omitempty"`
	AvailabilityWindows  map[string][]string `json:"availability_windows,omitempty"`
}

// OptionsInput 运行选项
type OptionsInput struct {
	Timeout             int   `json:"timeout,omitempty" validate:"gte=0,lte=300"` // 秒
	Seed                int64 `json:"seed,omitempty"`
	AllowSampleFallback bool  `json:"allow_sample_fallback,omitempty"`
}

// OptimizeAPIResponse 优化API响应
type OptimizeAPIResponse struct {
	Success bool                      `json:"success"`
	Data    *model.OptimizationReport `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Code    string                    `json:"code,omitempty"`
}

// Optimize 执行排班优化
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}

	if err := h.validateRequest(&req); err != nil {
		respondError(w, err)
		return
	}

	opts := h.buildOptions(&req)

	start := time.Now()
	report, err := h.engine.Optimize(r.Context(), req.Staff, req.Demand, opts)
	if err != nil {
		metrics.RecordOptimizationRun(false, time.Since(start))
		respondError(w, errors.AsAppError(err))
		return
	}

	metrics.RecordOptimizationRun(true, report.Duration)
	metrics.SetBestFitness(report.Metrics.AlgorithmUsed, report.Metrics.FitnessScore)
	for name, run := range report.AlgorithmResults {
		metrics.RecordSolverIterations(name, run.Iterations)
	}

	respondJSON(w, http.StatusOK, OptimizeAPIResponse{
		Success: true,
		Data:    report,
	})
}

// validateRequest 校验请求字段
func (h *OptimizeHandler) validateRequest(req *OptimizeRequest) *errors.AppError {
	if err := h.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			ve := &errors.ValidationErrors{}
			for _, fe := range verrs {
				ve.Add(fe.Namespace(), fmt.Sprintf("字段不满足约束: %s", fe.Tag()))
			}
			return ve.ToAppError()
		}
		return errors.Wrap(err, errors.CodeValidationFail, "请求验证失败")
	}

	// 权重需要归一化到1
	if req.Weights != nil {
		sum := req.Weights.Cost + req.Weights.Coverage + req.Weights.Overtime + req.Weights.Satisfaction
		if sum < 0.999 || sum > 1.001 {
			return errors.InvalidInput("weights", "权重之和必须等于1")
		}
	}

	return nil
}

// buildOptions 将请求转换为引擎选项
func (h *OptimizeHandler) buildOptions(req *OptimizeRequest) *engine.Options {
	opts := &engine.Options{
		Seed:                h.defaultOpts.Seed,
		Timeout:             h.defaultOpts.Timeout,
		AllowSampleFallback: h.defaultOpts.AllowSampleFallback,
	}

	if req.Weights != nil {
		opts.Weights = &optimizer.Weights{
			Cost:         req.Weights.Cost,
			Coverage:     req.Weights.Coverage,
			Overtime:     req.Weights.Overtime,
			Satisfaction: req.Weights.Satisfaction,
		}
	}

	if req.Constraints != nil {
		opts.Constraints = &optimizer.Constraints{
			MinStaffPerShift:     req.Constraints.MinStaffPerShift,
			MaxStaffPerShift:     req.Constraints.MaxStaffPerShift,
			MaxConsecutiveShifts: req.Constraints.MaxConsecutiveShifts,
			MinRestHours:         req.Constraints.MinRestHours,
			MaxWeeklyHours:       req.Constraints.MaxWeeklyHours,
			SkillRequirements:    req.Constraints.SkillRequirements,
			AvailabilityWindows:  req.Constraints.AvailabilityWindows,
		}
	}

	if req.Options != nil {
		if req.Options.Seed != 0 {
			opts.Seed = req.Options.Seed
		}
		if req.Options.Timeout > 0 {
			opts.Timeout = time.Duration(req.Options.Timeout) * time.Second
		}
		opts.AllowSampleFallback = req.Options.AllowSampleFallback || h.defaultOpts.AllowSampleFallback
	}

	return opts
}

// respondJSON 返回JSON响应
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError 返回错误响应
func respondError(w http.ResponseWriter, err *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.HTTPStatus)
	json.NewEncoder(w).Encode(OptimizeAPIResponse{
		Success: false,
		Error:   err.Message,
		Code:    string(err.Code),
	})
}
