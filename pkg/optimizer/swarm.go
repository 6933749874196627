package optimizer

import (
	"context"
	"math/rand"

	"github.com/youban/youban/pkg/model"
)

// particle 粒子（位置 + 速度 + 个体最优）
type particle struct {
	position *model.Candidate
	velocity []float64
	best     *model.Candidate
	bestFit  float64
}

// SwarmSolver 粒子群求解器
type SwarmSolver struct {
	cfg       *Config
	evaluator *Evaluator
	enforcer  *Enforcer
	mutator   *Mutator
	rng       *rand.Rand
}

// NewSwarmSolver 创建粒子群求解器
func NewSwarmSolver(cfg *Config, evaluator *Evaluator, enforcer *Enforcer, rng *rand.Rand) *SwarmSolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SwarmSolver{
		cfg:       cfg,
		evaluator: evaluator,
		enforcer:  enforcer,
		mutator:   NewMutator(rng),
		rng:       rng,
	}
}

// Name 算法名称
func (s *SwarmSolver) Name() string { return model.AlgorithmSwarm }

// Solve 运行粒子群优化
// v = w*v + c1*r1*(pbest-x) + c2*r2*(gbest-x); x = x+v
// 终止条件: 最大迭代数，或全局最优连续10次迭代改进小于容差
func (s *SwarmSolver) Solve(ctx context.Context, p *model.Problem) *model.AlgorithmRun {
	dims := p.Dims()
	if dims == 0 {
		return emptyRun(s.Name(), p.StaffCount(), p.SlotCount())
	}

	// 初始化粒子群，速度均匀分布于[-1,1]
	swarm := make([]*particle, s.cfg.SwarmSize)
	var gbest *model.Candidate
	gbestFit := -1.0

	for i := range swarm {
		pos := s.enforcer.Enforce(s.mutator.Random(p), p)
		vel := make([]float64, dims)
		for d := range vel {
			vel[d] = s.rng.Float64()*2 - 1
		}

		fit := s.evaluator.Evaluate(pos, p)
		swarm[i] = &particle{
			position: pos,
			velocity: vel,
			best:     pos.Clone(),
			bestFit:  fit,
		}

		if fit > gbestFit {
			gbest = pos.Clone()
			gbestFit = fit
		}
	}

	var history []float64
	iteration := 0

	for iteration = 0; iteration < s.cfg.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return s.buildRun(gbest, gbestFit, iteration, history)
		default:
		}

		for _, pt := range swarm {
			for d := 0; d < dims; d++ {
				r1 := s.rng.Float64()
				r2 := s.rng.Float64()
				pt.velocity[d] = s.cfg.Inertia*pt.velocity[d] +
					s.cfg.Cognitive*r1*(pt.best.Dim(d)-pt.position.Dim(d)) +
					s.cfg.Social*r2*(gbest.Dim(d)-pt.position.Dim(d))
				pt.position.AddDim(d, pt.velocity[d])
			}

			s.enforcer.Enforce(pt.position, p)
			fit := s.evaluator.Evaluate(pt.position, p)

			if fit > pt.bestFit {
				pt.best = pt.position.Clone()
				pt.bestFit = fit
			}
			if fit > gbestFit {
				gbest = pt.position.Clone()
				gbestFit = fit
			}
		}

		history = append(history, gbestFit)

		if plateaued(history, s.cfg.PlateauWindow, s.cfg.ConvergenceTol) {
			iteration++
			break
		}
	}

	return s.buildRun(gbest, gbestFit, iteration, history)
}

// buildRun 组装运行结果
func (s *SwarmSolver) buildRun(gbest *model.Candidate, fitness float64, iterations int, history []float64) *model.AlgorithmRun {
	return &model.AlgorithmRun{
		Algorithm:  s.Name(),
		Candidate:  gbest,
		Fitness:    fitness,
		Iterations: iterations,
		History:    history,
		Metadata: map[string]float64{
			"swarm_size": float64(s.cfg.SwarmSize),
		},
	}
}
