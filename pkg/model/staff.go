// Package model 定义优化引擎的核心数据模型
package model

// ExperienceLevel 经验等级
type ExperienceLevel string

const (
	ExperienceJunior       ExperienceLevel = "junior"       // 初级
	ExperienceIntermediate ExperienceLevel = "intermediate" // 中级
	ExperienceSenior       ExperienceLevel = "senior"       // 高级
	ExperienceExpert       ExperienceLevel = "expert"       // 专家
)

// StaffMember 员工（优化输入，创建后不可变）
type StaffMember struct {
	ID              string   `json:"id" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Skills          []string `json:"skills,omitempty"`
	HourlyRate      float64  `json:"hourly_rate" validate:"gte=0"`
	MaxHoursPerWeek float64  `json:"max_hours_per_week" validate:"gte=0"`

	// 可用性: time_slot id -> 是否可用
	Availability map[string]bool `json:"availability,omitempty"`

	PreferredShifts    []string        `json:"preferred_shifts,omitempty"`
	Experience         ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=junior intermediate senior expert"`
	OvertimeMultiplier float64         `json:"overtime_multiplier" validate:"gte=0"`
	SatisfactionWeight float64         `json:"satisfaction_weight" validate:"gte=0"`
}

// HasSkill 检查员工是否具备某技能
func (s *StaffMember) HasSkill(skill string) bool {
	for _, sk := range s.Skills {
		if sk == skill {
			return true
		}
	}
	return false
}

// IsAvailable 检查员工在某时段是否可用
// 未声明可用性视为可用
func (s *StaffMember) IsAvailable(slotID string) bool {
	if len(s.Availability) == 0 {
		return true
	}
	return s.Availability[slotID]
}

// PrefersShift 检查员工是否偏好某班次
func (s *StaffMember) PrefersShift(slotID string) bool {
	for _, p := range s.PreferredShifts {
		if p == slotID {
			return true
		}
	}
	return false
}
