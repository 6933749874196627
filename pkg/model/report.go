package model

import (
	"time"

	"github.com/google/uuid"
)

// 算法名称
const (
	AlgorithmGenetic   = "genetic_algorithm"
	AlgorithmAnnealing = "simulated_annealing"
	AlgorithmGradient  = "gradient_descent"
	AlgorithmSwarm     = "particle_swarm"
	AlgorithmHybrid    = "hybrid"
)

// AlgorithmPriority 选择最优解时的平局优先顺序（排前者优先）
var AlgorithmPriority = []string{
	AlgorithmGenetic,
	AlgorithmAnnealing,
	AlgorithmGradient,
	AlgorithmSwarm,
	AlgorithmHybrid,
}

// AlgorithmRun 单个求解器的一次运行结果
type AlgorithmRun struct {
	Algorithm  string     `json:"algorithm"`
	Candidate  *Candidate `json:"candidate,omitempty"`
	Fitness    float64    `json:"fitness"`
	Iterations int        `json:"iterations"`

	// History 收敛历史，每代/每次迭代一个适应度值
	History []float64 `json:"history,omitempty"`

	// Metadata 求解器特定的元数据（如模拟退火的最终温度）
	Metadata map[string]float64 `json:"metadata,omitempty"`
}

// StaffUtilization 单个员工的利用率分析
type StaffUtilization struct {
	StaffID       string  `json:"staff_id"`
	Name          string  `json:"name,omitempty"`
	Hours         float64 `json:"hours"`
	Utilization   float64 `json:"utilization"` // hours / 40
	OvertimeHours float64 `json:"overtime_hours"`
	Cost          float64 `json:"cost"`
}

// SolutionAnalysis 最优解的派生分析
type SolutionAnalysis struct {
	TotalCost     float64 `json:"total_cost"`
	RegularCost   float64 `json:"regular_cost"`
	OvertimeCost  float64 `json:"overtime_cost"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	Utilization   []StaffUtilization `json:"staff_utilization"`
	CoverageRates map[string]float64 `json:"coverage_rates"` // time_slot id -> 覆盖率
}

// OptimizationMetrics 优化结果指标
type OptimizationMetrics struct {
	AlgorithmUsed string  `json:"algorithm_used"`
	FitnessScore  float64 `json:"fitness_score"`
	Efficiency    float64 `json:"efficiency"` // 0-100
	QualityTier   string  `json:"quality_tier"`
}

// OptimizationReport 一次优化运行的完整报告
// 返回后不可变，由调用方持有
type OptimizationReport struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`

	AlgorithmResults map[string]*AlgorithmRun `json:"algorithm_results"`
	BestSolution     *AlgorithmRun            `json:"best_solution"`
	Analysis         *SolutionAnalysis        `json:"solution_analysis"`
	Metrics          *OptimizationMetrics     `json:"optimization_metrics"`
	Recommendations  []string                 `json:"recommendations"`

	// HybridScoredOnSample 标记混合阶段的适应度是在代表性示例数据上计算的，
	// 与其余四个求解器（在真实数据上评估）不可直接比较
	HybridScoredOnSample bool `json:"hybrid_scored_on_sample"`

	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
