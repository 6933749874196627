package model

// Priority 需求优先级
type Priority string

const (
	PriorityLow    Priority = "low"    // 低
	PriorityMedium Priority = "medium" // 中
	PriorityHigh   Priority = "high"   // 高
)

// DemandSlot 时段需求（优化输入，创建后不可变）
type DemandSlot struct {
	TimeSlot            string   `json:"time_slot" validate:"required"`
	RequiredStaff       int      `json:"required_staff" validate:"gte=0"`
	RequiredSkills      []string `json:"required_skills,omitempty"`
	Priority            Priority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DemandIntensity     float64  `json:"demand_intensity" validate:"gte=0"`
	CoverageRequirement float64  `json:"coverage_requirement" validate:"gte=0,lte=1"`
	CostMultiplier      float64  `json:"cost_multiplier" validate:"gte=0"`
}

// RequiresSkill 检查时段是否要求某技能
func (d *DemandSlot) RequiresSkill(skill string) bool {
	for _, s := range d.RequiredSkills {
		if s == skill {
			return true
		}
	}
	return false
}
