package optimizer

import (
	"context"
	"math"
	"math/rand"

	"github.com/youban/youban/pkg/model"
)

// AnnealingSolver 模拟退火求解器
type AnnealingSolver struct {
	cfg       *Config
	evaluator *Evaluator
	enforcer  *Enforcer
	mutator   *Mutator
	rng       *rand.Rand
}

// NewAnnealingSolver 创建模拟退火求解器
func NewAnnealingSolver(cfg *Config, evaluator *Evaluator, enforcer *Enforcer, rng *rand.Rand) *AnnealingSolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &AnnealingSolver{
		cfg:       cfg,
		evaluator: evaluator,
		enforcer:  enforcer,
		mutator:   NewMutator(rng),
		rng:       rng,
	}
}

// Name 算法名称
func (s *AnnealingSolver) Name() string { return model.AlgorithmAnnealing }

// Solve 运行模拟退火
// 单轨迹搜索：更优邻域解无条件接受，更差解以 exp(Δ/T) 概率接受；
// 每次迭代降温 T *= cooling_rate，最优解与当前解分开跟踪
func (s *AnnealingSolver) Solve(ctx context.Context, p *model.Problem) *model.AlgorithmRun {
	if p.Dims() == 0 {
		run := emptyRun(s.Name(), p.StaffCount(), p.SlotCount())
		run.Metadata = map[string]float64{"final_temperature": s.cfg.InitialTemp}
		return run
	}

	current := s.enforcer.Enforce(s.mutator.Random(p), p)
	currentFit := s.evaluator.Evaluate(current, p)

	best := current.Clone()
	bestFit := currentFit

	temperature := s.cfg.InitialTemp
	iteration := 0
	var history []float64

	for temperature > s.cfg.MinTemp && iteration < s.cfg.MaxIterations {
		select {
		case <-ctx.Done():
			return s.buildRun(best, bestFit, iteration, history, temperature)
		default:
		}

		neighbor := s.mutator.Neighbor(current)
		s.enforcer.Enforce(neighbor, p)
		neighborFit := s.evaluator.Evaluate(neighbor, p)

		if neighborFit > currentFit || s.rng.Float64() < acceptanceProbability(neighborFit-currentFit, temperature) {
			current = neighbor
			currentFit = neighborFit
		}

		if currentFit > bestFit {
			best = current.Clone()
			bestFit = currentFit
		}

		// 历史记录当前解（而非最优解）的适应度
		history = append(history, currentFit)

		temperature *= s.cfg.CoolingRate
		iteration++
	}

	return s.buildRun(best, bestFit, iteration, history, temperature)
}

// acceptanceProbability 更差解的接受概率
// delta 为适应度差 (neighbor - current)，此处恒为负
func acceptanceProbability(delta, temperature float64) float64 {
	if delta >= 0 {
		return 1.0
	}
	if temperature <= 0 {
		return 0.0
	}
	return math.Exp(delta / temperature)
}

// buildRun 组装运行结果
func (s *AnnealingSolver) buildRun(best *model.Candidate, fitness float64, iterations int, history []float64, temperature float64) *model.AlgorithmRun {
	return &model.AlgorithmRun{
		Algorithm:  s.Name(),
		Candidate:  best,
		Fitness:    fitness,
		Iterations: iterations,
		History:    history,
		Metadata: map[string]float64{
			"final_temperature": temperature,
		},
	}
}
