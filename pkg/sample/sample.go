// Package sample 提供代表性示例数据集
//
// 用途：混合阶段的评分数据、显式开启的示例数据回退模式，以及端到端测试
package sample

import (
	"github.com/youban/youban/pkg/model"
)

// Staff 返回示例员工列表
func Staff() []*model.StaffMember {
	return []*model.StaffMember{
		{
			ID:              "staff_001",
			Name:            "张伟",
			Skills:          []string{"front_desk", "cashier"},
			HourlyRate:      1800,
			MaxHoursPerWeek: 40,
			Availability: map[string]bool{
				"monday_morning":    true,
				"tuesday_afternoon": true,
				"wednesday_evening": false,
			},
			PreferredShifts:    []string{"monday_morning"},
			Experience:         model.ExperienceSenior,
			OvertimeMultiplier: 1.5,
			SatisfactionWeight: 1.0,
		},
		{
			ID:              "staff_002",
			Name:            "李娜",
			Skills:          []string{"front_desk", "service"},
			HourlyRate:      2000,
			MaxHoursPerWeek: 35,
			Availability: map[string]bool{
				"monday_morning":    true,
				"tuesday_afternoon": true,
				"wednesday_evening": true,
			},
			PreferredShifts:    []string{"tuesday_afternoon"},
			Experience:         model.ExperienceExpert,
			OvertimeMultiplier: 1.5,
			SatisfactionWeight: 1.2,
		},
		{
			ID:              "staff_003",
			Name:            "王强",
			Skills:          []string{"service", "cleaning"},
			HourlyRate:      1500,
			MaxHoursPerWeek: 45,
			Availability: map[string]bool{
				"monday_morning":    false,
				"tuesday_afternoon": true,
				"wednesday_evening": true,
			},
			PreferredShifts:    []string{"wednesday_evening"},
			Experience:         model.ExperienceIntermediate,
			OvertimeMultiplier: 1.3,
			SatisfactionWeight: 0.8,
		},
	}
}

// Demand 返回示例需求列表
func Demand() []*model.DemandSlot {
	return []*model.DemandSlot{
		{
			TimeSlot:            "monday_morning",
			RequiredStaff:       2,
			RequiredSkills:      []string{"front_desk"},
			Priority:            model.PriorityHigh,
			DemandIntensity:     1.5,
			CoverageRequirement: 0.9,
			CostMultiplier:      1.0,
		},
		{
			TimeSlot:            "tuesday_afternoon",
			RequiredStaff:       3,
			RequiredSkills:      []string{"service"},
			Priority:            model.PriorityMedium,
			DemandIntensity:     1.0,
			CoverageRequirement: 0.8,
			CostMultiplier:      1.0,
		},
		{
			TimeSlot:            "wednesday_evening",
			RequiredStaff:       1,
			RequiredSkills:      []string{"cleaning"},
			Priority:            model.PriorityLow,
			DemandIntensity:     0.5,
			CoverageRequirement: 0.7,
			CostMultiplier:      1.2,
		},
	}
}

// Problem 返回索引化的示例问题
func Problem() *model.Problem {
	return model.NewProblem(Staff(), Demand())
}
