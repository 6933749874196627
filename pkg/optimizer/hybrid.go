package optimizer

import (
	"context"
	"math/rand"

	"github.com/youban/youban/pkg/model"
)

// HybridCombiner 混合组合器
// 按适应度加权合成四个求解器的候选解，再做有限轮贪心局部搜索精化
//
// 精化阶段的适应度在调用方提供的代表性示例数据集上计算，
// 而非完整数据集；需要真实数据集评分的调用方应在组合后自行重评
type HybridCombiner struct {
	cfg       *Config
	evaluator *Evaluator
	enforcer  *Enforcer
	mutator   *Mutator
}

// NewHybridCombiner 创建混合组合器
func NewHybridCombiner(cfg *Config, evaluator *Evaluator, enforcer *Enforcer, rng *rand.Rand) *HybridCombiner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &HybridCombiner{
		cfg:       cfg,
		evaluator: evaluator,
		enforcer:  enforcer,
		mutator:   NewMutator(rng),
	}
}

// Combine 合成混合候选解
// weight[alg] = fitness[alg] / Σfitness；Σfitness 为 0 时每个求解器权重相等。
// 某一求解器候选解中缺失的维度不参与该维度的加权（按存在该维度的权重重新归一化），
// 无候选解的求解器整体排除
func (h *HybridCombiner) Combine(ctx context.Context, runs []*model.AlgorithmRun, scoring *model.Problem) *model.AlgorithmRun {
	included := make([]*model.AlgorithmRun, 0, len(runs))
	for _, r := range runs {
		if r != nil && !r.Candidate.IsEmpty() {
			included = append(included, r)
		}
	}

	if len(included) == 0 {
		return emptyRun(model.AlgorithmHybrid, scoring.StaffCount(), scoring.SlotCount())
	}

	// 适应度比例权重，总适应度为0时退化为均等权重
	totalFitness := 0.0
	for _, r := range included {
		totalFitness += r.Fitness
	}

	weights := make([]float64, len(included))
	for i, r := range included {
		if totalFitness == 0 {
			weights[i] = 1.0 / float64(len(included))
		} else {
			weights[i] = r.Fitness / totalFitness
		}
	}

	combined := h.blend(included, weights)

	// 贪心局部搜索精化：只保留改进的邻域解
	h.enforcer.Enforce(combined, scoring)
	fitness := h.evaluator.Evaluate(combined, scoring)

	var history []float64
	rounds := 0
	for rounds = 0; rounds < h.cfg.HybridRefineRounds; rounds++ {
		select {
		case <-ctx.Done():
			return h.buildRun(combined, fitness, rounds, history, included, weights)
		default:
		}

		neighbor := h.mutator.Neighbor(combined)
		h.enforcer.Enforce(neighbor, scoring)
		neighborFit := h.evaluator.Evaluate(neighbor, scoring)

		if neighborFit > fitness {
			combined = neighbor
			fitness = neighborFit
		}
		history = append(history, fitness)
	}

	return h.buildRun(combined, fitness, rounds, history, included, weights)
}

// blend 按权重逐维合成候选解
// 合成解的每组切片取各来源的最大长度；
// 某来源缺失的维度按存在该维度的权重之和重新归一化
func (h *HybridCombiner) blend(runs []*model.AlgorithmRun, weights []float64) *model.Candidate {
	maxStaff, maxSlots := 0, 0
	for _, r := range runs {
		if n := len(r.Candidate.Hours); n > maxStaff {
			maxStaff = n
		}
		if n := len(r.Candidate.Coverage); n > maxSlots {
			maxSlots = n
		}
	}

	combined := model.NewCandidate(maxStaff, maxSlots)
	dims := combined.Dims()
	s := maxStaff

	for d := 0; d < dims; d++ {
		sum := 0.0
		weightSum := 0.0
		for i, r := range runs {
			v, ok := dimAt(r.Candidate, d, s)
			if !ok {
				continue
			}
			sum += weights[i] * v
			weightSum += weights[i]
		}
		if weightSum > 0 {
			combined.SetDim(d, sum/weightSum)
		}
	}

	return combined
}

// dimAt 在合成解的维度空间中读取候选解的对应标量
// combinedStaff 为合成解的员工数，用于维度区段换算
func dimAt(c *model.Candidate, d, combinedStaff int) (float64, bool) {
	switch {
	case d < combinedStaff:
		if d < len(c.Hours) {
			return c.Hours[d], true
		}
	case d < 2*combinedStaff:
		if i := d - combinedStaff; i < len(c.Satisfaction) {
			return c.Satisfaction[i], true
		}
	default:
		if j := d - 2*combinedStaff; j < len(c.Coverage) {
			return c.Coverage[j], true
		}
	}
	return 0, false
}

// buildRun 组装运行结果，元数据记录各来源算法的混合权重
func (h *HybridCombiner) buildRun(c *model.Candidate, fitness float64, rounds int, history []float64, included []*model.AlgorithmRun, weights []float64) *model.AlgorithmRun {
	metadata := make(map[string]float64, len(included))
	for i, r := range included {
		metadata["weight_"+r.Algorithm] = weights[i]
	}

	return &model.AlgorithmRun{
		Algorithm:  model.AlgorithmHybrid,
		Candidate:  c,
		Fitness:    fitness,
		Iterations: rounds,
		History:    history,
		Metadata:   metadata,
	}
}
