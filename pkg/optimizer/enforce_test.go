package optimizer

import (
	"testing"

	"github.com/youban/youban/pkg/model"
)

func TestEnforcer_ClampsToBounds(t *testing.T) {
	en := NewEnforcer(nil)
	p := testProblem()

	c := model.NewCandidate(2, 2)
	c.Hours[0] = 100 // 上限 40*1.5=60
	c.Hours[1] = -5
	c.Satisfaction[0] = 1.5
	c.Satisfaction[1] = -0.3
	c.Coverage[0] = 10 // 上限 2*2=4
	c.Coverage[1] = -1

	en.Enforce(c, p)

	if c.Hours[0] != 60 {
		t.Errorf("Hours[0] should clamp to 60, got %f", c.Hours[0])
	}
	if c.Hours[1] != 0 {
		t.Errorf("Hours[1] should clamp to 0, got %f", c.Hours[1])
	}
	if c.Satisfaction[0] != 1 || c.Satisfaction[1] != 0 {
		t.Errorf("Satisfaction should clamp to [0,1], got %v", c.Satisfaction)
	}
	if c.Coverage[0] != 4 {
		t.Errorf("Coverage[0] should clamp to 4, got %f", c.Coverage[0])
	}
	if c.Coverage[1] != 0 {
		t.Errorf("Coverage[1] should clamp to 0, got %f", c.Coverage[1])
	}
}

func TestEnforcer_Idempotent(t *testing.T) {
	en := NewEnforcer(nil)
	p := testProblem()

	c := model.NewCandidate(2, 2)
	c.Hours[0] = 100
	c.Satisfaction[0] = 2
	c.Coverage[0] = 10

	en.Enforce(c, p)
	once := c.Clone()
	en.Enforce(c, p)

	for i := range once.Hours {
		if c.Hours[i] != once.Hours[i] {
			t.Errorf("Second enforce changed Hours[%d]", i)
		}
	}
	for j := range once.Coverage {
		if c.Coverage[j] != once.Coverage[j] {
			t.Errorf("Second enforce changed Coverage[%d]", j)
		}
	}
}

func TestEnforcer_MaxStaffPerShiftCapsCoverage(t *testing.T) {
	en := NewEnforcer(&Constraints{MaxStaffPerShift: 3})
	p := testProblem()

	c := model.NewCandidate(2, 2)
	c.Coverage[0] = 10 // required_staff=2 的默认上限是4，约束收紧到3

	en.Enforce(c, p)

	if c.Coverage[0] != 3 {
		t.Errorf("Coverage should cap at MaxStaffPerShift 3, got %f", c.Coverage[0])
	}
}

func TestEnforcer_MaxWeeklyHoursOverride(t *testing.T) {
	en := NewEnforcer(&Constraints{MaxWeeklyHours: 20})
	p := testProblem()

	c := model.NewCandidate(2, 2)
	c.Hours[0] = 100

	en.Enforce(c, p)

	// 覆盖项 20*1.5=30 取代员工自身的 40*1.5
	if c.Hours[0] != 30 {
		t.Errorf("Hours should clamp to override 30, got %f", c.Hours[0])
	}
}

func TestEnforcer_NilCandidate(t *testing.T) {
	en := NewEnforcer(nil)
	if got := en.Enforce(nil, testProblem()); got != nil {
		t.Error("Enforcing nil candidate should return nil")
	}
}
