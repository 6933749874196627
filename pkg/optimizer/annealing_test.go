package optimizer

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/youban/youban/pkg/model"
)

func newTestAnnealing(seed int64) *AnnealingSolver {
	cfg := testConfig()
	e := NewEvaluator(DefaultWeights())
	return NewAnnealingSolver(cfg, e, NewEnforcer(nil), rand.New(rand.NewSource(seed)))
}

func TestAnnealingSolver_Solve(t *testing.T) {
	s := newTestAnnealing(42)
	run := s.Solve(context.Background(), testProblem())

	if run.Algorithm != model.AlgorithmAnnealing {
		t.Errorf("Expected algorithm %s, got %s", model.AlgorithmAnnealing, run.Algorithm)
	}
	if run.Candidate == nil || run.Candidate.IsEmpty() {
		t.Fatal("Expected non-empty candidate")
	}
	if run.Iterations == 0 {
		t.Error("Expected at least one iteration")
	}
}

func TestAnnealingSolver_FinalTemperature(t *testing.T) {
	s := newTestAnnealing(42)
	run := s.Solve(context.Background(), testProblem())

	finalTemp, ok := run.Metadata["final_temperature"]
	if !ok {
		t.Fatal("Expected final_temperature metadata")
	}
	// 终止时温度已降到阈值之下（或达到迭代上限）
	if finalTemp >= s.cfg.InitialTemp {
		t.Errorf("Final temperature %f should be below initial %f", finalTemp, s.cfg.InitialTemp)
	}
}

func TestAnnealingSolver_BestDominatesHistory(t *testing.T) {
	s := newTestAnnealing(7)
	run := s.Solve(context.Background(), testProblem())

	// 历史记录的是当前解，最优解不会低于任何当前解
	for i, h := range run.History {
		if run.Fitness < h-1e-9 {
			t.Fatalf("Best fitness %f below history[%d]=%f", run.Fitness, i, h)
		}
	}
}

func TestAnnealingSolver_Deterministic(t *testing.T) {
	run1 := newTestAnnealing(99).Solve(context.Background(), testProblem())
	run2 := newTestAnnealing(99).Solve(context.Background(), testProblem())

	if run1.Fitness != run2.Fitness {
		t.Errorf("Same seed should yield same fitness: %f vs %f", run1.Fitness, run2.Fitness)
	}
}

func TestAnnealingSolver_EmptyProblem(t *testing.T) {
	s := newTestAnnealing(1)
	run := s.Solve(context.Background(), model.NewProblem(nil, nil))

	if run.Fitness != 0 {
		t.Errorf("Empty problem should score 0, got %f", run.Fitness)
	}
	if _, ok := run.Metadata["final_temperature"]; !ok {
		t.Error("Empty run should still carry final_temperature metadata")
	}
}

func TestAcceptanceProbability(t *testing.T) {
	if got := acceptanceProbability(0, 100); got != 1.0 {
		t.Errorf("Non-negative delta should accept with probability 1, got %f", got)
	}
	if got := acceptanceProbability(-1, 0); got != 0.0 {
		t.Errorf("Zero temperature should reject, got %f", got)
	}

	want := math.Exp(-2.0 / 50.0)
	if got := acceptanceProbability(-2, 50); math.Abs(got-want) > 1e-12 {
		t.Errorf("Expected exp(delta/T)=%f, got %f", want, got)
	}

	// 温度越高接受概率越大
	if acceptanceProbability(-5, 100) <= acceptanceProbability(-5, 10) {
		t.Error("Higher temperature should accept worse moves more readily")
	}
}
