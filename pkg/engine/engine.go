// Package engine 提供优化引擎的顶层入口
//
// 四个基础求解器以独立goroutine并行运行（只共享只读问题模型），
// 屏障汇合后交给混合组合器，最后由选择器和分析器组装完整报告
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/youban/youban/pkg/analysis"
	"github.com/youban/youban/pkg/errors"
	"github.com/youban/youban/pkg/logger"
	"github.com/youban/youban/pkg/model"
	"github.com/youban/youban/pkg/optimizer"
	"github.com/youban/youban/pkg/sample"
)

// Options 单次优化的可选项
type Options struct {
	// Weights 目标权重覆盖，nil 使用默认权重
	Weights *optimizer.Weights

	// Constraints 约束覆盖项
	Constraints *optimizer.Constraints

	// Seed 随机种子，0 表示取当前时间
	Seed int64

	// Timeout 超过后各求解器返回当前最优解
	Timeout time.Duration

	// AllowSampleFallback 输入为空时使用示例数据而非报错
	AllowSampleFallback bool
}

// Engine 优化引擎
type Engine struct {
	cfg *optimizer.Config
	log *logger.OptimizerLogger
}

// New 创建优化引擎
func New(cfg *optimizer.Config) *Engine {
	if cfg == nil {
		cfg = optimizer.DefaultConfig()
	}
	return &Engine{
		cfg: cfg,
		log: logger.NewOptimizerLogger(),
	}
}

// Optimize 运行完整的优化流程并返回报告
// 输入为空时默认返回 INVALID_INPUT 错误；
// AllowSampleFallback 开启时改用示例数据（显式的回退模式）
func (e *Engine) Optimize(ctx context.Context, staff []*model.StaffMember, demand []*model.DemandSlot, opts *Options) (*model.OptimizationReport, error) {
	if opts == nil {
		opts = &Options{}
	}

	if len(staff) == 0 || len(demand) == 0 {
		if !opts.AllowSampleFallback {
			if len(staff) == 0 {
				return nil, errors.InvalidInput("staff", "员工列表不能为空")
			}
			return nil, errors.InvalidInput("demand", "需求列表不能为空")
		}
		staff = sample.Staff()
		demand = sample.Demand()
	}

	start := time.Now()
	runID := uuid.New()
	problem := model.NewProblem(staff, demand)

	e.log.StartOptimization(runID.String(), problem.StaffCount(), problem.SlotCount())

	weights := optimizer.DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}

	evaluator := optimizer.NewEvaluator(weights)
	evaluator.Constraints = opts.Constraints
	enforcer := optimizer.NewEnforcer(opts.Constraints)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	// 每个求解器持有独立种子的RNG，并行运行互不干扰
	solvers := []optimizer.Solver{
		optimizer.NewGeneticSolver(e.cfg, evaluator, enforcer, rand.New(rand.NewSource(seed))),
		optimizer.NewAnnealingSolver(e.cfg, evaluator, enforcer, rand.New(rand.NewSource(seed+1))),
		optimizer.NewGradientSolver(e.cfg, evaluator, enforcer, rand.New(rand.NewSource(seed+2))),
		optimizer.NewSwarmSolver(e.cfg, evaluator, enforcer, rand.New(rand.NewSource(seed+3))),
	}

	baseRuns := e.runParallel(ctx, solvers, problem)

	// 混合阶段在示例数据集上评分（其适应度与基础求解器不可直接比较）
	combiner := optimizer.NewHybridCombiner(e.cfg, evaluator, enforcer, rand.New(rand.NewSource(seed+4)))
	hybrid := combiner.Combine(ctx, baseRuns, sample.Problem())

	results := make(map[string]*model.AlgorithmRun, len(baseRuns)+1)
	for _, r := range baseRuns {
		if r != nil {
			results[r.Algorithm] = r
		}
	}
	results[hybrid.Algorithm] = hybrid

	best := selectBest(results)
	if best == nil {
		return nil, errors.ErrNoFeasibleSolution
	}

	analyzer := analysis.NewAnalyzer()
	solAnalysis := analyzer.Analyze(best.Candidate, problem)

	report := &model.OptimizationReport{
		ID:                   runID,
		Success:              true,
		AlgorithmResults:     results,
		BestSolution:         best,
		Analysis:             solAnalysis,
		Metrics:              analyzer.Metrics(best),
		Recommendations:      analyzer.Recommendations(solAnalysis),
		HybridScoredOnSample: true,
		Duration:             time.Since(start),
		CreatedAt:            time.Now(),
	}

	e.log.OptimizationComplete(runID.String(), best.Algorithm, best.Fitness, report.Duration)

	return report, nil
}

// runParallel 并行运行基础求解器并在屏障处汇合
// 单个求解器的panic被隔离：记录日志并从结果中排除，不影响其余求解器
func (e *Engine) runParallel(ctx context.Context, solvers []optimizer.Solver, problem *model.Problem) []*model.AlgorithmRun {
	runs := make([]*model.AlgorithmRun, len(solvers))

	var wg sync.WaitGroup
	for i, s := range solvers {
		wg.Add(1)
		go func(idx int, solver optimizer.Solver) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					e.log.SolverFailed(solver.Name(), fmt.Sprintf("panic: %v", r))
					runs[idx] = nil
				}
			}()

			start := time.Now()
			run := solver.Solve(ctx, problem)
			runs[idx] = run
			e.log.SolverComplete(solver.Name(), run.Iterations, run.Fitness, time.Since(start))
		}(i, s)
	}
	wg.Wait()

	return runs
}

// selectBest 选出适应度最高的运行
// 平局按固定优先顺序决定（排前者优先）
func selectBest(results map[string]*model.AlgorithmRun) *model.AlgorithmRun {
	var best *model.AlgorithmRun
	for _, name := range model.AlgorithmPriority {
		run, ok := results[name]
		if !ok {
			continue
		}
		if best == nil || run.Fitness > best.Fitness {
			best = run
		}
	}
	return best
}
