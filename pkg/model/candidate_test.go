package model

import "testing"

func testProblem() *Problem {
	staff := []*StaffMember{
		{ID: "s1", Name: "员工1", HourlyRate: 100, MaxHoursPerWeek: 40, OvertimeMultiplier: 1.5, SatisfactionWeight: 1.0},
		{ID: "s2", Name: "员工2", HourlyRate: 120, MaxHoursPerWeek: 35, OvertimeMultiplier: 1.5, SatisfactionWeight: 1.0},
	}
	demand := []*DemandSlot{
		{TimeSlot: "mon_am", RequiredStaff: 2, DemandIntensity: 1.0},
		{TimeSlot: "tue_pm", RequiredStaff: 1, DemandIntensity: 0.5},
		{TimeSlot: "wed_ev", RequiredStaff: 3, DemandIntensity: 1.5},
	}
	return NewProblem(staff, demand)
}

func TestProblem_Indexing(t *testing.T) {
	p := testProblem()

	if p.StaffCount() != 2 {
		t.Errorf("Expected 2 staff, got %d", p.StaffCount())
	}
	if p.SlotCount() != 3 {
		t.Errorf("Expected 3 slots, got %d", p.SlotCount())
	}
	// 2*2 + 3 = 7 个标量维度
	if p.Dims() != 7 {
		t.Errorf("Expected 7 dims, got %d", p.Dims())
	}

	i, ok := p.StaffIndex("s2")
	if !ok || i != 1 {
		t.Errorf("Expected staff index 1 for s2, got %d (ok=%v)", i, ok)
	}
	j, ok := p.SlotIndex("wed_ev")
	if !ok || j != 2 {
		t.Errorf("Expected slot index 2 for wed_ev, got %d (ok=%v)", j, ok)
	}

	if _, ok := p.StaffIndex("missing"); ok {
		t.Error("Unknown staff ID should not resolve")
	}
}

func TestCandidate_DimMapping(t *testing.T) {
	c := NewCandidate(2, 3)

	// [0,2) 工时, [2,4) 满意度, [4,7) 覆盖
	c.SetDim(0, 40)
	c.SetDim(1, 35)
	c.SetDim(2, 0.8)
	c.SetDim(3, 0.6)
	c.SetDim(4, 2)
	c.SetDim(6, 3)

	if c.Hours[0] != 40 || c.Hours[1] != 35 {
		t.Errorf("Hours mapping wrong: %v", c.Hours)
	}
	if c.Satisfaction[0] != 0.8 || c.Satisfaction[1] != 0.6 {
		t.Errorf("Satisfaction mapping wrong: %v", c.Satisfaction)
	}
	if c.Coverage[0] != 2 || c.Coverage[2] != 3 {
		t.Errorf("Coverage mapping wrong: %v", c.Coverage)
	}

	for d := 0; d < c.Dims(); d++ {
		v := c.Dim(d)
		c.AddDim(d, 1)
		if c.Dim(d) != v+1 {
			t.Errorf("AddDim at %d: expected %f, got %f", d, v+1, c.Dim(d))
		}
	}
}

func TestCandidate_Clone(t *testing.T) {
	c := NewCandidate(2, 1)
	c.Hours[0] = 40
	c.Satisfaction[1] = 0.5
	c.Coverage[0] = 2

	clone := c.Clone()
	clone.Hours[0] = 10
	clone.Satisfaction[1] = 0.1
	clone.Coverage[0] = 9

	if c.Hours[0] != 40 || c.Satisfaction[1] != 0.5 || c.Coverage[0] != 2 {
		t.Error("Clone should not share backing arrays with original")
	}
}

func TestCandidate_IsEmpty(t *testing.T) {
	var nilCandidate *Candidate
	if !nilCandidate.IsEmpty() {
		t.Error("Nil candidate should be empty")
	}
	if !NewCandidate(0, 0).IsEmpty() {
		t.Error("Zero-dim candidate should be empty")
	}
	if NewCandidate(1, 0).IsEmpty() {
		t.Error("Candidate with dims should not be empty")
	}
}
