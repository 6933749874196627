// Package analysis 提供优化结果的派生分析
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/youban/youban/pkg/model"
)

// 推荐阈值
const (
	overtimeRateThreshold    = 0.1  // 加班占总工时比例
	coverageRateThreshold    = 0.8  // 单时段最低覆盖率
	utilizationRateThreshold = 1.2  // 单员工最高利用率
	costCeiling              = 10000.0
	regularHoursLimit        = 40.0
)

// 质量等级阈值（基于0-100的效率分）
const (
	tierExcellentMin = 80.0
	tierGoodMin      = 60.0
	tierFairMin      = 40.0
)

// Analyzer 结果分析器
type Analyzer struct{}

// NewAnalyzer 创建结果分析器
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze 从最优候选解派生成本/利用率/覆盖率分析
func (a *Analyzer) Analyze(c *model.Candidate, p *model.Problem) *model.SolutionAnalysis {
	analysis := &model.SolutionAnalysis{
		CoverageRates: make(map[string]float64, p.SlotCount()),
	}
	if c == nil {
		return analysis
	}

	n := min(p.StaffCount(), len(c.Hours))
	for i := 0; i < n; i++ {
		staff := p.Staff[i]
		hours := c.Hours[i]
		regular := math.Min(hours, regularHoursLimit)
		overtime := math.Max(0, hours-regularHoursLimit)

		regularCost := regular * staff.HourlyRate
		overtimeCost := overtime * staff.HourlyRate * staff.OvertimeMultiplier

		analysis.TotalHours += hours
		analysis.OvertimeHours += overtime
		analysis.RegularCost += regularCost
		analysis.OvertimeCost += overtimeCost

		analysis.Utilization = append(analysis.Utilization, model.StaffUtilization{
			StaffID:       staff.ID,
			Name:          staff.Name,
			Hours:         hours,
			Utilization:   hours / regularHoursLimit,
			OvertimeHours: overtime,
			Cost:          regularCost + overtimeCost,
		})
	}
	analysis.TotalCost = analysis.RegularCost + analysis.OvertimeCost

	m := min(p.SlotCount(), len(c.Coverage))
	for j := 0; j < m; j++ {
		d := p.Demand[j]
		rate := 1.0
		if d.RequiredStaff > 0 {
			rate = c.Coverage[j] / float64(d.RequiredStaff)
		}
		analysis.CoverageRates[d.TimeSlot] = rate
	}

	return analysis
}

// Metrics 从最优运行派生优化指标
func (a *Analyzer) Metrics(best *model.AlgorithmRun) *model.OptimizationMetrics {
	efficiency := best.Fitness * 100
	if efficiency > 100 {
		efficiency = 100
	}
	if efficiency < 0 {
		efficiency = 0
	}

	return &model.OptimizationMetrics{
		AlgorithmUsed: best.Algorithm,
		FitnessScore:  best.Fitness,
		Efficiency:    efficiency,
		QualityTier:   qualityTier(efficiency),
	}
}

// qualityTier 效率分对应的质量等级
func qualityTier(efficiency float64) string {
	switch {
	case efficiency >= tierExcellentMin:
		return "优秀"
	case efficiency >= tierGoodMin:
		return "良好"
	case efficiency >= tierFairMin:
		return "一般"
	default:
		return "待改进"
	}
}

// Recommendations 基于阈值生成文字建议
func (a *Analyzer) Recommendations(analysis *model.SolutionAnalysis) []string {
	var recs []string

	if analysis.TotalHours > 0 && analysis.OvertimeHours/analysis.TotalHours > overtimeRateThreshold {
		recs = append(recs, fmt.Sprintf(
			"加班工时占比 %.1f%% 超过 %.0f%%，建议增加人手或重新分配班次",
			analysis.OvertimeHours/analysis.TotalHours*100, overtimeRateThreshold*100))
	}

	slots := make([]string, 0, len(analysis.CoverageRates))
	for slot := range analysis.CoverageRates {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		if rate := analysis.CoverageRates[slot]; rate < coverageRateThreshold {
			recs = append(recs, fmt.Sprintf(
				"时段 %s 覆盖率 %.0f%% 低于 %.0f%%，存在人手缺口",
				slot, rate*100, coverageRateThreshold*100))
		}
	}

	for _, u := range analysis.Utilization {
		if u.Utilization > utilizationRateThreshold {
			recs = append(recs, fmt.Sprintf(
				"员工 %s 利用率 %.0f%% 超过 %.0f%%，存在疲劳风险",
				u.StaffID, u.Utilization*100, utilizationRateThreshold*100))
		}
	}

	if analysis.TotalCost > costCeiling {
		recs = append(recs, fmt.Sprintf(
			"总人力成本 %.0f 超过预算上限 %.0f，建议检查加班与高时薪员工的排布",
			analysis.TotalCost, costCeiling))
	}

	if len(recs) == 0 {
		recs = append(recs, "排班结果健康，各项指标均在阈值范围内")
	}

	return recs
}
