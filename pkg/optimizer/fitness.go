package optimizer

import (
	"math"

	"github.com/youban/youban/pkg/model"
)

// 评分常量
const (
	// BaselineCost 成本子得分的基准成本
	BaselineCost = 10000.0

	// RegularHoursLimit 每周常规工时上限，超出部分计为加班
	RegularHoursLimit = 40.0

	// OvertimePerHeadCap 人均最大可能加班工时（加班子得分的归一化分母）
	OvertimePerHeadCap = 20.0

	// 约束违反惩罚系数
	overHoursPenaltyRate     = 0.1
	underCoveragePenaltyRate = 0.2
)

// Evaluator 适应度评估器
// Evaluate 为纯函数：不修改候选解，不缓存结果
type Evaluator struct {
	Weights     Weights
	Constraints *Constraints
}

// NewEvaluator 创建适应度评估器
func NewEvaluator(weights Weights) *Evaluator {
	return &Evaluator{Weights: weights}
}

// Evaluate 计算候选解的适应度
// 四个子得分（归一化为越高越好）加权求和，减去约束违反惩罚，
// 结果下限为0；所有除法前做零分母检查，非有限结果按0处理
func (e *Evaluator) Evaluate(c *model.Candidate, p *model.Problem) float64 {
	if c == nil {
		return 0
	}

	score := e.Weights.Cost*e.costScore(c, p) +
		e.Weights.Coverage*e.coverageScore(c, p) +
		e.Weights.Overtime*e.overtimeScore(c, p) +
		e.Weights.Satisfaction*e.satisfactionScore(c, p)

	score -= e.penalty(c, p)

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	if score < 0 {
		return 0
	}
	return score
}

// costScore 成本子得分: max(0, baseline - total) / baseline
func (e *Evaluator) costScore(c *model.Candidate, p *model.Problem) float64 {
	total := e.TotalCost(c, p)
	if total >= BaselineCost {
		return 0
	}
	return (BaselineCost - total) / BaselineCost
}

// TotalCost 总人力成本（常规 + 加班×倍率）
func (e *Evaluator) TotalCost(c *model.Candidate, p *model.Problem) float64 {
	total := 0.0
	n := min(len(p.Staff), len(c.Hours))
	for i := 0; i < n; i++ {
		staff := p.Staff[i]
		regular := math.Min(c.Hours[i], RegularHoursLimit)
		overtime := math.Max(0, c.Hours[i]-RegularHoursLimit)
		total += regular * staff.HourlyRate
		total += overtime * staff.HourlyRate * staff.OvertimeMultiplier
	}
	return total
}

// coverageScore 覆盖子得分: 需求强度加权的覆盖比例
// required_staff 为 0 的时段视为完全覆盖
func (e *Evaluator) coverageScore(c *model.Candidate, p *model.Problem) float64 {
	totalIntensity := 0.0
	weighted := 0.0
	n := min(len(p.Demand), len(c.Coverage))
	for j := 0; j < n; j++ {
		d := p.Demand[j]
		totalIntensity += d.DemandIntensity

		ratio := 1.0
		if d.RequiredStaff > 0 {
			ratio = math.Min(1, c.Coverage[j]/float64(d.RequiredStaff))
		}
		weighted += ratio * d.DemandIntensity
	}
	if totalIntensity == 0 {
		return 0
	}
	return weighted / totalIntensity
}

// overtimeScore 加班子得分: 1 - 总加班 / 最大可能加班
func (e *Evaluator) overtimeScore(c *model.Candidate, p *model.Problem) float64 {
	n := min(len(p.Staff), len(c.Hours))
	maxPossible := OvertimePerHeadCap * float64(n)
	if maxPossible == 0 {
		return 0
	}

	totalOvertime := 0.0
	for i := 0; i < n; i++ {
		totalOvertime += math.Max(0, c.Hours[i]-RegularHoursLimit)
	}

	score := 1 - totalOvertime/maxPossible
	if score < 0 {
		return 0
	}
	return score
}

// satisfactionScore 满意度子得分: 权重加权平均
func (e *Evaluator) satisfactionScore(c *model.Candidate, p *model.Problem) float64 {
	totalWeight := 0.0
	weighted := 0.0
	n := min(len(p.Staff), len(c.Satisfaction))
	for i := 0; i < n; i++ {
		w := p.Staff[i].SatisfactionWeight
		totalWeight += w
		weighted += c.Satisfaction[i] * w
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

// penalty 软约束违反惩罚（超时 + 欠覆盖）
func (e *Evaluator) penalty(c *model.Candidate, p *model.Problem) float64 {
	total := 0.0

	n := min(len(p.Staff), len(c.Hours))
	for i := 0; i < n; i++ {
		maxHours := e.Constraints.MaxHoursFor(p.Staff[i])
		if over := c.Hours[i] - maxHours; over > 0 {
			total += over * overHoursPenaltyRate
		}
	}

	m := min(len(p.Demand), len(c.Coverage))
	for j := 0; j < m; j++ {
		required := float64(p.Demand[j].RequiredStaff)
		if e.Constraints != nil && e.Constraints.MinStaffPerShift > 0 {
			required = math.Max(required, float64(e.Constraints.MinStaffPerShift))
		}
		if under := required - c.Coverage[j]; under > 0 {
			total += under * underCoveragePenaltyRate
		}
	}

	return total
}
