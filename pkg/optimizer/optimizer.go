// Package optimizer 提供排班优化的元启发式求解器
//
// 四个独立求解器（遗传算法、模拟退火、梯度式局部搜索、粒子群）
// 只依赖问题模型、适应度评估器和约束执行器，可并行运行；
// 混合组合器在四者结束后按适应度加权合成候选解
package optimizer

import (
	"context"

	"github.com/youban/youban/pkg/model"
)

// Config 求解器配置
type Config struct {
	// 遗传算法
	PopulationSize int     `json:"population_size"`
	MaxGenerations int     `json:"max_generations"`
	EliteRatio     float64 `json:"elite_ratio"`
	TournamentSize int     `json:"tournament_size"`
	CrossoverRate  float64 `json:"crossover_rate"`
	MutationRate   float64 `json:"mutation_rate"`

	// 模拟退火
	InitialTemp float64 `json:"initial_temp"`
	CoolingRate float64 `json:"cooling_rate"`
	MinTemp     float64 `json:"min_temp"`

	// 梯度局部搜索
	LearningRate float64 `json:"learning_rate"`
	Momentum     float64 `json:"momentum"`
	GradientEps  float64 `json:"gradient_eps"`

	// 粒子群
	SwarmSize int     `json:"swarm_size"`
	Inertia   float64 `json:"inertia"`
	Cognitive float64 `json:"cognitive"`
	Social    float64 `json:"social"`

	// 通用
	MaxIterations      int     `json:"max_iterations"`
	ConvergenceTol     float64 `json:"convergence_tol"`
	PlateauWindow      int     `json:"plateau_window"`
	HybridRefineRounds int     `json:"hybrid_refine_rounds"`
}

// DefaultConfig 默认求解器配置
func DefaultConfig() *Config {
	return &Config{
		PopulationSize: 50,
		MaxGenerations: 100,
		EliteRatio:     0.1,
		TournamentSize: 3,
		CrossoverRate:  0.8,
		MutationRate:   0.1,

		InitialTemp: 100.0,
		CoolingRate: 0.95,
		MinTemp:     0.1,

		LearningRate: 0.01,
		Momentum:     0.9,
		GradientEps:  1e-5,

		SwarmSize: 30,
		Inertia:   0.7,
		Cognitive: 1.5,
		Social:    1.5,

		MaxIterations:      1000,
		ConvergenceTol:     1e-6,
		PlateauWindow:      10,
		HybridRefineRounds: 10,
	}
}

// Weights 目标权重
type Weights struct {
	Cost         float64 `json:"cost"`
	Coverage     float64 `json:"coverage"`
	Overtime     float64 `json:"overtime"`
	Satisfaction float64 `json:"satisfaction"`
}

// DefaultWeights 默认目标权重
func DefaultWeights() Weights {
	return Weights{
		Cost:         0.4,
		Coverage:     0.3,
		Overtime:     0.2,
		Satisfaction: 0.1,
	}
}

// Constraints 约束覆盖配置（由调用方提供的可选覆盖项）
type Constraints struct {
	MinStaffPerShift     int     `json:"min_staff_per_shift,omitempty"`
	MaxStaffPerShift     int     `json:"max_staff_per_shift,omitempty"`
	MaxConsecutiveShifts int     `json:"max_consecutive_shifts,omitempty"`
	MinRestHours         float64 `json:"min_rest_hours,omitempty"`

	// MaxWeeklyHours 大于0时覆盖员工各自的周工时上限
	MaxWeeklyHours float64 `json:"max_weekly_hours,omitempty"`

	SkillRequirements   map[string][]string `json:"skill_requirements,omitempty"`
	AvailabilityWindows map[string][]string `json:"availability_windows,omitempty"`
}

// MaxHoursFor 返回员工i的有效周工时上限
func (c *Constraints) MaxHoursFor(staff *model.StaffMember) float64 {
	if c != nil && c.MaxWeeklyHours > 0 {
		return c.MaxWeeklyHours
	}
	return staff.MaxHoursPerWeek
}

// Solver 求解器接口
// Solve 在迭代边界检查 ctx，取消时返回当前最优结果而不报错
type Solver interface {
	Name() string
	Solve(ctx context.Context, problem *model.Problem) *model.AlgorithmRun
}

// emptyRun 退化输入（零维问题）的统一返回值
func emptyRun(algorithm string, staffCount, slotCount int) *model.AlgorithmRun {
	return &model.AlgorithmRun{
		Algorithm: algorithm,
		Candidate: model.NewCandidate(staffCount, slotCount),
		Fitness:   0,
	}
}

// plateaued 检查收敛历史是否进入平台期
// 窗口内首尾适应度之差小于容差时认为已收敛
func plateaued(history []float64, window int, tol float64) bool {
	if len(history) < window {
		return false
	}
	last := history[len(history)-1]
	ref := history[len(history)-window]
	diff := last - ref
	if diff < 0 {
		diff = -diff
	}
	return diff < tol
}
