package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/youban/youban/pkg/model"
)

func testProblem() *model.Problem {
	staff := []*model.StaffMember{
		{ID: "s1", Name: "员工1", HourlyRate: 100, MaxHoursPerWeek: 40, OvertimeMultiplier: 1.5, SatisfactionWeight: 1.0},
		{ID: "s2", Name: "员工2", HourlyRate: 120, MaxHoursPerWeek: 35, OvertimeMultiplier: 1.5, SatisfactionWeight: 1.0},
	}
	demand := []*model.DemandSlot{
		{TimeSlot: "mon_am", RequiredStaff: 2, DemandIntensity: 1.0},
		{TimeSlot: "tue_pm", RequiredStaff: 4, DemandIntensity: 1.0},
	}
	return model.NewProblem(staff, demand)
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer()
	p := testProblem()

	c := model.NewCandidate(2, 2)
	c.Hours[0] = 45 // 5小时加班
	c.Hours[1] = 30
	c.Coverage[0] = 2
	c.Coverage[1] = 2

	analysis := a.Analyze(c, p)

	wantRegular := 40*100.0 + 30*120.0
	wantOvertime := 5 * 100.0 * 1.5
	if math.Abs(analysis.RegularCost-wantRegular) > 1e-9 {
		t.Errorf("Expected regular cost %f, got %f", wantRegular, analysis.RegularCost)
	}
	if math.Abs(analysis.OvertimeCost-wantOvertime) > 1e-9 {
		t.Errorf("Expected overtime cost %f, got %f", wantOvertime, analysis.OvertimeCost)
	}
	if math.Abs(analysis.TotalCost-(wantRegular+wantOvertime)) > 1e-9 {
		t.Errorf("Total cost should equal regular+overtime, got %f", analysis.TotalCost)
	}
	if analysis.OvertimeHours != 5 {
		t.Errorf("Expected 5 overtime hours, got %f", analysis.OvertimeHours)
	}

	if len(analysis.Utilization) != 2 {
		t.Fatalf("Expected 2 utilization entries, got %d", len(analysis.Utilization))
	}
	if math.Abs(analysis.Utilization[0].Utilization-45.0/40.0) > 1e-9 {
		t.Errorf("Expected utilization 1.125, got %f", analysis.Utilization[0].Utilization)
	}

	if math.Abs(analysis.CoverageRates["mon_am"]-1.0) > 1e-9 {
		t.Errorf("Expected full coverage for mon_am, got %f", analysis.CoverageRates["mon_am"])
	}
	if math.Abs(analysis.CoverageRates["tue_pm"]-0.5) > 1e-9 {
		t.Errorf("Expected 50%% coverage for tue_pm, got %f", analysis.CoverageRates["tue_pm"])
	}
}

func TestAnalyzer_NilCandidate(t *testing.T) {
	a := NewAnalyzer()
	analysis := a.Analyze(nil, testProblem())

	if analysis == nil {
		t.Fatal("Analysis should not be nil")
	}
	if analysis.TotalCost != 0 || len(analysis.Utilization) != 0 {
		t.Error("Nil candidate should yield empty analysis")
	}
}

func TestAnalyzer_Metrics(t *testing.T) {
	a := NewAnalyzer()

	cases := []struct {
		fitness float64
		tier    string
	}{
		{0.95, "优秀"},
		{0.7, "良好"},
		{0.5, "一般"},
		{0.2, "待改进"},
		{1.5, "优秀"}, // 效率封顶100
	}

	for _, tc := range cases {
		m := a.Metrics(&model.AlgorithmRun{Algorithm: model.AlgorithmGenetic, Fitness: tc.fitness})
		if m.QualityTier != tc.tier {
			t.Errorf("Fitness %f: expected tier %s, got %s", tc.fitness, tc.tier, m.QualityTier)
		}
		if m.Efficiency > 100 || m.Efficiency < 0 {
			t.Errorf("Efficiency must be in [0,100], got %f", m.Efficiency)
		}
	}
}

func TestAnalyzer_Recommendations(t *testing.T) {
	a := NewAnalyzer()

	analysis := &model.SolutionAnalysis{
		TotalHours:    100,
		OvertimeHours: 20, // 20% > 10% 阈值
		TotalCost:     12000,
		CoverageRates: map[string]float64{
			"mon_am": 0.5,
			"tue_pm": 1.0,
		},
		Utilization: []model.StaffUtilization{
			{StaffID: "s1", Utilization: 1.5},
			{StaffID: "s2", Utilization: 0.8},
		},
	}

	recs := a.Recommendations(analysis)

	if len(recs) != 4 {
		t.Fatalf("Expected 4 recommendations, got %d: %v", len(recs), recs)
	}

	joined := strings.Join(recs, "\n")
	for _, want := range []string{"加班", "mon_am", "s1", "成本"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected recommendation mentioning %q", want)
		}
	}
	if strings.Contains(joined, "tue_pm") {
		t.Error("Fully covered slot should not be flagged")
	}
}

func TestAnalyzer_HealthyRecommendation(t *testing.T) {
	a := NewAnalyzer()

	analysis := &model.SolutionAnalysis{
		TotalHours:    80,
		OvertimeHours: 0,
		TotalCost:     8000,
		CoverageRates: map[string]float64{"mon_am": 1.0},
		Utilization: []model.StaffUtilization{
			{StaffID: "s1", Utilization: 1.0},
		},
	}

	recs := a.Recommendations(analysis)
	if len(recs) != 1 {
		t.Fatalf("Healthy schedule should get exactly one recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "健康") {
		t.Errorf("Expected healthy fallback message, got %q", recs[0])
	}
}
