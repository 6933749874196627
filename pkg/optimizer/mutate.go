package optimizer

import (
	"math/rand"

	"github.com/youban/youban/pkg/model"
)

// 单维变异扰动幅度
const (
	hoursMutationStep        = 5.0
	satisfactionMutationStep = 0.1
	coverageMutationStep     = 2.0
)

// Mutator 候选解生成与变异
// 随机数生成器由构造方注入，保证可复现和并行安全
type Mutator struct {
	rng *rand.Rand
}

// NewMutator 创建变异器
func NewMutator(rng *rand.Rand) *Mutator {
	return &Mutator{rng: rng}
}

// Random 生成随机初始候选解
func (m *Mutator) Random(p *model.Problem) *model.Candidate {
	c := model.NewCandidate(p.StaffCount(), p.SlotCount())
	for i, staff := range p.Staff {
		c.Hours[i] = m.rng.Float64() * staff.MaxHoursPerWeek
		c.Satisfaction[i] = m.rng.Float64()
	}
	for j, d := range p.Demand {
		c.Coverage[j] = m.rng.Float64() * float64(d.RequiredStaff) * 1.5
	}
	return c
}

// Mutate 变异候选解：每次调用只扰动恰好一个随机维度
// 工时 ±5h、满意度 ±0.1、覆盖 ±2
func (m *Mutator) Mutate(c *model.Candidate) {
	dims := c.Dims()
	if dims == 0 {
		return
	}

	d := m.rng.Intn(dims)
	s := len(c.Hours)

	var step float64
	switch {
	case d < s:
		step = hoursMutationStep
	case d < 2*s:
		step = satisfactionMutationStep
	default:
		step = coverageMutationStep
	}

	c.AddDim(d, (m.rng.Float64()*2-1)*step)
}

// Neighbor 生成邻域解（拷贝后单维变异）
func (m *Mutator) Neighbor(c *model.Candidate) *model.Candidate {
	neighbor := c.Clone()
	m.Mutate(neighbor)
	return neighbor
}
