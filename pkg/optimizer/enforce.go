package optimizer

import (
	"github.com/youban/youban/pkg/model"
)

// Enforcer 约束执行器
// 将候选解夹回软可行区域（钳制而非拒绝），幂等且从不报错
type Enforcer struct {
	Constraints *Constraints
}

// NewEnforcer 创建约束执行器
func NewEnforcer(constraints *Constraints) *Enforcer {
	return &Enforcer{Constraints: constraints}
}

// Enforce 就地钳制候选解并返回它
//   - hours[i]        -> [0, max_hours[i] * 1.5]
//   - satisfaction[i] -> [0, 1]
//   - coverage[j]     -> [0, required_staff[j] * 2]
func (en *Enforcer) Enforce(c *model.Candidate, p *model.Problem) *model.Candidate {
	if c == nil {
		return c
	}

	n := min(len(p.Staff), len(c.Hours))
	for i := 0; i < n; i++ {
		maxHours := en.Constraints.MaxHoursFor(p.Staff[i]) * 1.5
		c.Hours[i] = clamp(c.Hours[i], 0, maxHours)
	}

	for i := range c.Satisfaction {
		c.Satisfaction[i] = clamp(c.Satisfaction[i], 0, 1)
	}

	m := min(len(p.Demand), len(c.Coverage))
	for j := 0; j < m; j++ {
		maxCoverage := float64(p.Demand[j].RequiredStaff) * 2
		if en.Constraints != nil && en.Constraints.MaxStaffPerShift > 0 {
			cap := float64(en.Constraints.MaxStaffPerShift)
			if cap < maxCoverage {
				maxCoverage = cap
			}
		}
		c.Coverage[j] = clamp(c.Coverage[j], 0, maxCoverage)
	}

	return c
}

// clamp 将v钳制到[lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
