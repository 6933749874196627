package optimizer

import (
	"context"
	"math/rand"

	"github.com/youban/youban/pkg/model"
)

// GradientSolver 梯度式局部搜索求解器
// 对适应度函数做前向有限差分求数值梯度，带动量上升
type GradientSolver struct {
	cfg       *Config
	evaluator *Evaluator
	enforcer  *Enforcer
	mutator   *Mutator
}

// NewGradientSolver 创建梯度求解器
func NewGradientSolver(cfg *Config, evaluator *Evaluator, enforcer *Enforcer, rng *rand.Rand) *GradientSolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &GradientSolver{
		cfg:       cfg,
		evaluator: evaluator,
		enforcer:  enforcer,
		mutator:   NewMutator(rng),
	}
}

// Name 算法名称
func (s *GradientSolver) Name() string { return model.AlgorithmGradient }

// Solve 运行梯度局部搜索
// 每次迭代: 数值梯度 -> velocity = momentum*velocity + lr*gradient -> 应用 -> 钳制
// 终止条件: 最大迭代数，或连续10次迭代改进小于容差
func (s *GradientSolver) Solve(ctx context.Context, p *model.Problem) *model.AlgorithmRun {
	dims := p.Dims()
	if dims == 0 {
		return emptyRun(s.Name(), p.StaffCount(), p.SlotCount())
	}

	current := s.enforcer.Enforce(s.mutator.Random(p), p)
	fitness := s.evaluator.Evaluate(current, p)

	velocity := make([]float64, dims)
	gradient := make([]float64, dims)

	var history []float64
	iteration := 0

	for iteration = 0; iteration < s.cfg.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return s.buildRun(current, fitness, iteration, history)
		default:
		}

		// 前向有限差分求各维度梯度
		for d := 0; d < dims; d++ {
			orig := current.Dim(d)
			current.SetDim(d, orig+s.cfg.GradientEps)
			perturbed := s.evaluator.Evaluate(current, p)
			current.SetDim(d, orig)
			gradient[d] = (perturbed - fitness) / s.cfg.GradientEps
		}

		// 动量更新并应用
		for d := 0; d < dims; d++ {
			velocity[d] = s.cfg.Momentum*velocity[d] + s.cfg.LearningRate*gradient[d]
			current.AddDim(d, velocity[d])
		}

		s.enforcer.Enforce(current, p)
		fitness = s.evaluator.Evaluate(current, p)
		history = append(history, fitness)

		if plateaued(history, s.cfg.PlateauWindow, s.cfg.ConvergenceTol) {
			iteration++
			break
		}
	}

	return s.buildRun(current, fitness, iteration, history)
}

// buildRun 组装运行结果
func (s *GradientSolver) buildRun(c *model.Candidate, fitness float64, iterations int, history []float64) *model.AlgorithmRun {
	return &model.AlgorithmRun{
		Algorithm:  s.Name(),
		Candidate:  c,
		Fitness:    fitness,
		Iterations: iterations,
		History:    history,
		Metadata: map[string]float64{
			"learning_rate": s.cfg.LearningRate,
			"momentum":      s.cfg.Momentum,
		},
	}
}
