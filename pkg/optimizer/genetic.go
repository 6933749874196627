package optimizer

import (
	"context"
	"math/rand"
	"sort"

	"github.com/youban/youban/pkg/model"
)

// individual 种群个体
type individual struct {
	candidate *model.Candidate
	fitness   float64
}

// GeneticSolver 遗传算法求解器
type GeneticSolver struct {
	cfg       *Config
	evaluator *Evaluator
	enforcer  *Enforcer
	mutator   *Mutator
	rng       *rand.Rand
}

// NewGeneticSolver 创建遗传算法求解器
func NewGeneticSolver(cfg *Config, evaluator *Evaluator, enforcer *Enforcer, rng *rand.Rand) *GeneticSolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &GeneticSolver{
		cfg:       cfg,
		evaluator: evaluator,
		enforcer:  enforcer,
		mutator:   NewMutator(rng),
		rng:       rng,
	}
}

// Name 算法名称
func (s *GeneticSolver) Name() string { return model.AlgorithmGenetic }

// Solve 运行遗传算法
// 初始化种群 -> 评估 -> 精英保留 -> 锦标赛选择 -> 单点交叉 -> 单维变异 -> 补满种群
// 终止条件: 达到最大代数，或连续10代最优适应度改进小于容差
func (s *GeneticSolver) Solve(ctx context.Context, p *model.Problem) *model.AlgorithmRun {
	if p.Dims() == 0 {
		return emptyRun(s.Name(), p.StaffCount(), p.SlotCount())
	}

	// 初始化种群
	pop := make([]individual, s.cfg.PopulationSize)
	for i := range pop {
		c := s.enforcer.Enforce(s.mutator.Random(p), p)
		pop[i] = individual{candidate: c, fitness: s.evaluator.Evaluate(c, p)}
	}

	eliteCount := int(float64(s.cfg.PopulationSize) * s.cfg.EliteRatio)
	if eliteCount < 1 {
		eliteCount = 1
	}

	var history []float64
	generation := 0

	for generation = 1; generation <= s.cfg.MaxGenerations; generation++ {
		select {
		case <-ctx.Done():
			best := bestIndividual(pop)
			return s.buildRun(best, generation-1, history)
		default:
		}

		// 按适应度降序排序（稳定排序保证平局时先出现者优先）
		sort.SliceStable(pop, func(a, b int) bool {
			return pop[a].fitness > pop[b].fitness
		})

		// 精英直接进入下一代
		next := make([]individual, 0, s.cfg.PopulationSize)
		for i := 0; i < eliteCount && i < len(pop); i++ {
			next = append(next, individual{
				candidate: pop[i].candidate.Clone(),
				fitness:   pop[i].fitness,
			})
		}

		// 选择+交叉+变异补满种群
		for len(next) < s.cfg.PopulationSize {
			p1 := s.tournament(pop)
			p2 := s.tournament(pop)

			c1, c2 := s.crossover(p1.candidate, p2.candidate)

			for _, child := range []*model.Candidate{c1, c2} {
				if len(next) >= s.cfg.PopulationSize {
					break
				}
				if s.rng.Float64() < s.cfg.MutationRate {
					s.mutator.Mutate(child)
				}
				s.enforcer.Enforce(child, p)
				next = append(next, individual{
					candidate: child,
					fitness:   s.evaluator.Evaluate(child, p),
				})
			}
		}

		pop = next

		best := bestIndividual(pop)
		history = append(history, best.fitness)

		if plateaued(history, s.cfg.PlateauWindow, s.cfg.ConvergenceTol) {
			break
		}
	}
	if generation > s.cfg.MaxGenerations {
		generation = s.cfg.MaxGenerations
	}

	return s.buildRun(bestIndividual(pop), generation, history)
}

// tournament 锦标赛选择
func (s *GeneticSolver) tournament(pop []individual) individual {
	best := pop[s.rng.Intn(len(pop))]
	for i := 1; i < s.cfg.TournamentSize; i++ {
		challenger := pop[s.rng.Intn(len(pop))]
		if challenger.fitness > best.fitness {
			best = challenger
		}
	}
	return best
}

// crossover 单点交叉
// 以交叉概率在随机维度处切分，否则直接复制双亲
func (s *GeneticSolver) crossover(p1, p2 *model.Candidate) (*model.Candidate, *model.Candidate) {
	c1 := p1.Clone()
	c2 := p2.Clone()

	if s.rng.Float64() >= s.cfg.CrossoverRate {
		return c1, c2
	}

	point := s.rng.Intn(p1.Dims())
	for d := point; d < p1.Dims(); d++ {
		v1, v2 := c1.Dim(d), c2.Dim(d)
		c1.SetDim(d, v2)
		c2.SetDim(d, v1)
	}

	return c1, c2
}

// bestIndividual 返回种群中适应度最高的个体（平局取先出现者）
func bestIndividual(pop []individual) individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.fitness > best.fitness {
			best = ind
		}
	}
	return best
}

// buildRun 组装运行结果
func (s *GeneticSolver) buildRun(best individual, generations int, history []float64) *model.AlgorithmRun {
	return &model.AlgorithmRun{
		Algorithm:  s.Name(),
		Candidate:  best.candidate,
		Fitness:    best.fitness,
		Iterations: generations,
		History:    history,
		Metadata: map[string]float64{
			"population_size": float64(s.cfg.PopulationSize),
		},
	}
}
